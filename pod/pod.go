//go:generate go run go.uber.org/mock/mockgen -source=pod.go -destination=podmock/mock_pod.go -package=podmock

package pod

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// ChatType is the stream type of a chat.
type ChatType string

const (
	// ChatTypeIM is a 1:1 conversation.
	ChatTypeIM ChatType = "IM"
	// ChatTypeMIM is a multi-party conversation with fixed membership.
	ChatTypeMIM ChatType = "MIM"
	// ChatTypeRoom is a room. Rooms are streams but never chats.
	ChatTypeRoom ChatType = "ROOM"
)

// Avatar is one avatar image variant.
type Avatar struct {
	Size string
	URL  string
}

// User is a snapshot of a pod user at the time of the call.
type User struct {
	ID           int64
	Username     string
	EmailAddress string
	FirstName    string
	LastName     string
	DisplayName  string
	Title        string
	Company      string
	Location     string
	Department   string
	AccountType  string
	Avatars      []Avatar
}

// Chat is a snapshot of an IM or MIM stream.
type Chat struct {
	StreamID  string
	Type      ChatType
	Active    bool
	CrossPod  bool
	MemberIDs []int64
}

// UserAttributes is a partial user update. Nil fields are left unchanged.
type UserAttributes struct {
	FirstName    *string
	LastName     *string
	DisplayName  *string
	Title        *string
	EmailAddress *string
	Username     *string
	Company      *string
	Location     *string
	Department   *string
}

// UserDirectory looks up and updates users.
//
// Lookups fail with an ErrorCodeNotFound *Error when no such user exists.
type UserDirectory interface {
	LookupByID(ctx context.Context, id int64) (*User, error)
	LookupByEmail(ctx context.Context, email string) (*User, error)
	LookupByUsername(ctx context.Context, username string) (*User, error)
	CurrentIdentity(ctx context.Context) (*User, error)
	UpdateUser(ctx context.Context, id int64, attrs UserAttributes) (*User, error)
}

// StreamDirectory looks up and creates chats.
type StreamDirectory interface {
	// LookupChat returns the stream with the given id. The returned Chat may
	// carry ChatTypeRoom when the id names a room.
	LookupChat(ctx context.Context, streamID string) (*Chat, error)
	ListChats(ctx context.Context) ([]Chat, error)
	StartChat(ctx context.Context, userIDs []int64) (*Chat, error)
}

// PresenceService reads and writes presence categories as raw strings.
type PresenceService interface {
	OwnPresence(ctx context.Context) (string, error)
	GetPresence(ctx context.Context, userID int64) (string, error)
	SetPresence(ctx context.Context, category string) error
}

// Connection is an authenticated session handle.
//
// A Connection is read-only after construction; helpers only dereference it to
// reach its sub-clients.
type Connection struct {
	users    UserDirectory
	streams  StreamDirectory
	presence PresenceService
	log      zerolog.Logger
}

// ConnectionOption customizes a Connection.
type ConnectionOption func(*Connection)

// WithConnectionLogger sets the logger helpers use for this connection.
func WithConnectionLogger(log zerolog.Logger) ConnectionOption {
	return func(c *Connection) {
		c.log = log
	}
}

// NewConnection assembles a Connection from collaborator implementations.
func NewConnection(users UserDirectory, streams StreamDirectory, presence PresenceService, opts ...ConnectionOption) (*Connection, error) {
	if users == nil || streams == nil || presence == nil {
		return nil, errors.New("pod: users, streams and presence clients are required")
	}
	c := &Connection{
		users:    users,
		streams:  streams,
		presence: presence,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Connect builds a REST Client from cfg and wraps it in a Connection.
func Connect(cfg Config, opts ...ClientOption) (*Connection, error) {
	client, err := NewClientFromConfig(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewConnection(client, client, client, WithConnectionLogger(client.log))
}

// Users returns the user directory.
func (c *Connection) Users() UserDirectory { return c.users }

// Streams returns the stream directory.
func (c *Connection) Streams() StreamDirectory { return c.streams }

// Presence returns the presence service.
func (c *Connection) Presence() PresenceService { return c.presence }

// Logger returns a copy of the connection logger.
func (c *Connection) Logger() *zerolog.Logger {
	log := c.log
	return &log
}
