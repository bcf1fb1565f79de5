package chat

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/spachava753/podkit/pod"
	"github.com/spachava753/podkit/resolve"
	"github.com/spachava753/podkit/user"
)

// Record keys produced by ToRecord.
const (
	KeyStreamID  = "stream_id"
	KeyChatType  = "chat_type"
	KeyActive    = "active"
	KeyCrossPod  = "cross_pod"
	KeyMemberIDs = "member_ids"
)

var resolver = resolve.New(resolve.Strategies[pod.Chat]{
	Kind:      "chat",
	RecordKey: KeyStreamID,
	ByKey:     lookupChat,
})

func lookupChat(ctx context.Context, conn *pod.Connection, streamID string) (*pod.Chat, error) {
	sid := NormalizeStreamID(streamID)
	if sid == "" {
		return nil, pod.InvalidArgument("chat: stream id must not be blank")
	}
	c, err := conn.Streams().LookupChat(ctx, sid)
	if err != nil || c == nil {
		return nil, err
	}
	if !isChat(*c) {
		conn.Logger().Debug().
			Str("stream_id", sid).
			Str("chat_type", string(c.Type)).
			Msg("stream is not a chat")
		return nil, nil
	}
	return c, nil
}

func isChat(c pod.Chat) bool {
	return c.Type == pod.ChatTypeIM || c.Type == pod.ChatTypeMIM
}

// NormalizeStreamID converts a stream id to URL-safe base64 without padding,
// the form the REST API expects in paths.
func NormalizeStreamID(sid string) string {
	sid = strings.TrimSpace(sid)
	sid = strings.NewReplacer("+", "-", "/", "_").Replace(sid)
	return strings.TrimRight(sid, "=")
}

// Resolve returns the chat named by id, or nil when no such chat exists.
//
// Strings (resolve.Key) are stream ids. Streams that exist but are not IM or
// MIM conversations, such as rooms, resolve to nil. Chats have no current
// identity or numeric id; those variants are invalid-argument errors.
func Resolve(ctx context.Context, conn *pod.Connection, id resolve.Identifier) (*pod.Chat, error) {
	return resolver.Resolve(ctx, conn, id)
}

// ToRecord flattens c into a plain record. It returns nil for a nil chat.
func ToRecord(c *pod.Chat) resolve.Record {
	if c == nil {
		return nil
	}
	return resolve.Record{
		KeyStreamID:  c.StreamID,
		KeyChatType:  string(c.Type),
		KeyActive:    c.Active,
		KeyCrossPod:  c.CrossPod,
		KeyMemberIDs: append([]int64{}, c.MemberIDs...),
	}
}

// ResolveToRecord resolves id and flattens the result with ToRecord.
func ResolveToRecord(ctx context.Context, conn *pod.Connection, id resolve.Identifier) (resolve.Record, error) {
	c, err := Resolve(ctx, conn, id)
	if err != nil {
		return nil, err
	}
	return ToRecord(c), nil
}

// List returns the active IM and MIM chats of the session user.
func List(ctx context.Context, conn *pod.Connection) ([]pod.Chat, error) {
	if conn == nil {
		return nil, pod.InvalidArgument("chat: connection is required")
	}
	chats, err := conn.Streams().ListChats(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(chats, func(c pod.Chat, _ int) bool {
		return c.Active && isChat(c)
	}), nil
}

// Start creates, or reopens, the chat between the session user and users.
//
// Every participant is resolved with user.Resolve. An empty list, a nil or
// Current participant, or a participant that cannot be resolved is an
// invalid-argument error, and no chat is created.
func Start(ctx context.Context, conn *pod.Connection, users ...resolve.Identifier) (*pod.Chat, error) {
	if conn == nil {
		return nil, pod.InvalidArgument("chat: connection is required")
	}
	if len(users) == 0 {
		return nil, pod.InvalidArgument("chat: at least one participant is required")
	}

	ids := make([]int64, 0, len(users))
	for _, id := range users {
		if resolve.IsCurrent(id) {
			return nil, pod.InvalidArgument("chat: participants must be other users, not the session user")
		}
		u, err := user.Resolve(ctx, conn, id)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, pod.InvalidArgument("chat: participant %s not found", resolve.Describe(id))
		}
		ids = append(ids, u.ID)
	}

	c, err := conn.Streams().StartChat(ctx, lo.Uniq(ids))
	if err != nil || c == nil {
		return nil, err
	}
	conn.Logger().Debug().
		Str("stream_id", c.StreamID).
		Ints64("member_ids", ids).
		Msg("chat started")
	return c, nil
}
