package pod

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/oauth2"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "podkit"
	maxResponseSize  = 4 << 20
	streamsPageSize  = 100

	headerSessionToken    = "sessionToken"
	headerKeyManagerToken = "keyManagerToken"
	headerTraceID         = "X-Trace-Id"
)

// errEmptyBody marks a 2xx response without a payload where one was expected.
var errEmptyBody = errors.New("pod: empty response body")

// Client is a REST client for the pod API. It implements UserDirectory,
// StreamDirectory and PresenceService.
//
// Client is safe for concurrent use. It never retries and never caches.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     oauth2.TokenSource
	kmToken    string
	userAgent  string
	log        zerolog.Logger
}

var (
	_ UserDirectory   = (*Client)(nil)
	_ StreamDirectory = (*Client)(nil)
	_ PresenceService = (*Client)(nil)
)

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTokenSource supplies session tokens. Tokens are reused until they expire.
func WithTokenSource(ts oauth2.TokenSource) ClientOption {
	return func(c *Client) {
		if ts != nil {
			c.tokens = oauth2.ReuseTokenSource(nil, ts)
		}
	}
}

// WithSessionToken uses a fixed session token.
func WithSessionToken(token string) ClientOption {
	return func(c *Client) {
		if strings.TrimSpace(token) != "" {
			c.tokens = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		}
	}
}

// WithKeyManagerToken sets the key manager token sent with every request.
func WithKeyManagerToken(token string) ClientOption {
	return func(c *Client) {
		c.kmToken = strings.TrimSpace(token)
	}
}

// WithLogger sets the request logger.
func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a Client for the pod at baseURL.
//
// A session token must be supplied with WithSessionToken or WithTokenSource.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("pod: invalid base URL %q", baseURL)
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  defaultUserAgent,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tokens == nil {
		return nil, errors.New("pod: a session token or token source is required")
	}
	return c, nil
}

// NewClientFromConfig creates a Client from cfg. opts are applied after the
// settings derived from cfg.
func NewClientFromConfig(cfg Config, opts ...ClientOption) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base := []ClientOption{
		WithSessionToken(cfg.SessionToken),
		WithKeyManagerToken(cfg.KeyManagerToken),
		WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	return NewClient(cfg.URL, append(base, opts...)...)
}

type avatarV2 struct {
	Size string `json:"size"`
	URL  string `json:"url"`
}

type userV2 struct {
	ID           int64      `json:"id"`
	EmailAddress string     `json:"emailAddress"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	DisplayName  string     `json:"displayName"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Username     string     `json:"username"`
	Location     string     `json:"location"`
	Department   string     `json:"department"`
	AccountType  string     `json:"accountType"`
	Avatars      []avatarV2 `json:"avatars"`
}

type userAttributesV2 struct {
	EmailAddress string `json:"emailAddress"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	UserName     string `json:"userName"`
	DisplayName  string `json:"displayName"`
	CompanyName  string `json:"companyName"`
	Department   string `json:"department"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	AccountType  string `json:"accountType"`
}

type userDetailV2 struct {
	UserAttributes userAttributesV2 `json:"userAttributes"`
	UserSystemInfo struct {
		ID int64 `json:"id"`
	} `json:"userSystemInfo"`
}

type updateUserBody struct {
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	DisplayName  *string `json:"displayName,omitempty"`
	Title        *string `json:"title,omitempty"`
	EmailAddress *string `json:"emailAddress,omitempty"`
	UserName     *string `json:"userName,omitempty"`
	CompanyName  *string `json:"companyName,omitempty"`
	Location     *string `json:"location,omitempty"`
	Department   *string `json:"department,omitempty"`
}

type streamTypeV1 struct {
	Type string `json:"type"`
}

type streamAttributesV2 struct {
	ID               string       `json:"id"`
	CrossPod         bool         `json:"crossPod"`
	Active           bool         `json:"active"`
	StreamType       streamTypeV1 `json:"streamType"`
	StreamAttributes *struct {
		Members []int64 `json:"members"`
	} `json:"streamAttributes"`
}

type streamFilterV1 struct {
	StreamTypes            []streamTypeV1 `json:"streamTypes"`
	IncludeInactiveStreams bool           `json:"includeInactiveStreams"`
}

type streamIDV1 struct {
	ID string `json:"id"`
}

type presenceV2 struct {
	Category string `json:"category"`
	UserID   int64  `json:"userId,omitempty"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LookupByID fetches a user by numeric id.
func (c *Client) LookupByID(ctx context.Context, id int64) (*User, error) {
	q := url.Values{}
	q.Set("uid", strconv.FormatInt(id, 10))
	q.Set("local", "false")
	return c.getUser(ctx, "/pod/v2/user", q, fmt.Sprintf("user id %d", id))
}

// LookupByEmail fetches a user by email address.
func (c *Client) LookupByEmail(ctx context.Context, email string) (*User, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("local", "false")
	return c.getUser(ctx, "/pod/v2/user", q, fmt.Sprintf("email %q", email))
}

// LookupByUsername fetches a user by username. Usernames are pod-local.
func (c *Client) LookupByUsername(ctx context.Context, username string) (*User, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("local", "true")
	return c.getUser(ctx, "/pod/v2/user", q, fmt.Sprintf("username %q", username))
}

// CurrentIdentity fetches the user that owns the session.
func (c *Client) CurrentIdentity(ctx context.Context) (*User, error) {
	return c.getUser(ctx, "/pod/v2/sessioninfo", nil, "session user")
}

// UpdateUser applies attrs to the user with the given id. The session must
// hold user administration entitlements.
func (c *Client) UpdateUser(ctx context.Context, id int64, attrs UserAttributes) (*User, error) {
	body := updateUserBody{
		FirstName:    attrs.FirstName,
		LastName:     attrs.LastName,
		DisplayName:  attrs.DisplayName,
		Title:        attrs.Title,
		EmailAddress: attrs.EmailAddress,
		UserName:     attrs.Username,
		CompanyName:  attrs.Company,
		Location:     attrs.Location,
		Department:   attrs.Department,
	}

	var detail userDetailV2
	path := fmt.Sprintf("/pod/v1/admin/user/%d/update", id)
	if err := c.do(ctx, http.MethodPost, path, nil, body, &detail); err != nil {
		if errors.Is(err, errEmptyBody) {
			return nil, NotFound("user id %d", id)
		}
		return nil, err
	}

	a := detail.UserAttributes
	userID := detail.UserSystemInfo.ID
	if userID == 0 {
		userID = id
	}
	return &User{
		ID:           userID,
		Username:     a.UserName,
		EmailAddress: a.EmailAddress,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		DisplayName:  a.DisplayName,
		Title:        a.Title,
		Company:      a.CompanyName,
		Location:     a.Location,
		Department:   a.Department,
		AccountType:  a.AccountType,
	}, nil
}

// LookupChat fetches stream info for streamID.
func (c *Client) LookupChat(ctx context.Context, streamID string) (*Chat, error) {
	var info streamAttributesV2
	path := "/pod/v2/streams/" + url.PathEscape(streamID) + "/info"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &info); err != nil {
		if errors.Is(err, errEmptyBody) {
			return nil, NotFound("stream %q", streamID)
		}
		return nil, err
	}
	chat := toChat(info)
	if chat.StreamID == "" {
		chat.StreamID = streamID
	}
	return &chat, nil
}

// ListChats lists active IM and MIM streams of the session user.
func (c *Client) ListChats(ctx context.Context) ([]Chat, error) {
	filter := streamFilterV1{
		StreamTypes: []streamTypeV1{{Type: string(ChatTypeIM)}, {Type: string(ChatTypeMIM)}},
	}

	chats := []Chat{}
	for skip := 0; ; skip += streamsPageSize {
		q := url.Values{}
		q.Set("skip", strconv.Itoa(skip))
		q.Set("limit", strconv.Itoa(streamsPageSize))

		var page []streamAttributesV2
		err := c.do(ctx, http.MethodPost, "/pod/v1/streams/list", q, filter, &page)
		if err != nil && !errors.Is(err, errEmptyBody) {
			return nil, err
		}
		chats = append(chats, lo.Map(page, func(s streamAttributesV2, _ int) Chat {
			return toChat(s)
		})...)
		if len(page) < streamsPageSize {
			return chats, nil
		}
	}
}

// StartChat creates, or reopens, the chat between the session user and
// userIDs.
func (c *Client) StartChat(ctx context.Context, userIDs []int64) (*Chat, error) {
	if len(userIDs) == 0 {
		return nil, InvalidArgument("at least one participant is required")
	}

	var created streamIDV1
	if err := c.do(ctx, http.MethodPost, "/pod/v1/im/create", nil, userIDs, &created); err != nil {
		return nil, err
	}
	if created.ID == "" {
		return nil, &Error{Code: ErrorCodeUnknown, Message: "chat created without a stream id"}
	}
	return c.LookupChat(ctx, created.ID)
}

// OwnPresence returns the presence category of the session user.
func (c *Client) OwnPresence(ctx context.Context) (string, error) {
	return c.getPresence(ctx, "/pod/v2/user/presence", "session user presence")
}

// GetPresence returns the presence category of userID.
func (c *Client) GetPresence(ctx context.Context, userID int64) (string, error) {
	path := fmt.Sprintf("/pod/v3/user/%d/presence", userID)
	return c.getPresence(ctx, path, fmt.Sprintf("presence of user id %d", userID))
}

// SetPresence sets the presence category of the session user.
func (c *Client) SetPresence(ctx context.Context, category string) error {
	var out presenceV2
	err := c.do(ctx, http.MethodPost, "/pod/v2/user/presence", nil, presenceV2{Category: category}, &out)
	if errors.Is(err, errEmptyBody) {
		return nil
	}
	return err
}

func (c *Client) getUser(ctx context.Context, path string, q url.Values, what string) (*User, error) {
	var u userV2
	if err := c.do(ctx, http.MethodGet, path, q, nil, &u); err != nil {
		if errors.Is(err, errEmptyBody) {
			return nil, NotFound("%s", what)
		}
		return nil, err
	}
	if u.ID == 0 {
		return nil, NotFound("%s", what)
	}
	user := toUser(u)
	return &user, nil
}

func (c *Client) getPresence(ctx context.Context, path string, what string) (string, error) {
	var p presenceV2
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &p); err != nil {
		if errors.Is(err, errEmptyBody) {
			return "", NotFound("%s", what)
		}
		return "", err
	}
	return p.Category, nil
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, reqBody any, respBody any) error {
	var body io.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("pod: encoding %s request: %w", path, err)
		}
		body = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("pod: creating request: %w", err)
	}

	token, err := c.tokens.Token()
	if err != nil {
		return fmt.Errorf("pod: session token: %w", err)
	}
	traceID := uuid.NewString()
	req.Header.Set(headerSessionToken, token.AccessToken)
	if c.kmToken != "" {
		req.Header.Set(headerKeyManagerToken, c.kmToken)
	}
	req.Header.Set(headerTraceID, traceID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).
			Str("method", method).
			Str("path", path).
			Str("trace_id", traceID).
			Msg("pod request failed")
		return fmt.Errorf("pod: %s %s failed: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return fmt.Errorf("pod: reading %s response: %w", path, err)
	}
	if len(raw) > maxResponseSize {
		return fmt.Errorf("pod: %s response exceeds %d bytes", path, maxResponseSize)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("trace_id", traceID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("pod request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp.StatusCode, raw)
	}
	if respBody == nil {
		return nil
	}
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return errEmptyBody
	}
	if err := json.Unmarshal(raw, respBody); err != nil {
		return fmt.Errorf("pod: decoding %s response: %w", path, err)
	}
	return nil
}

func apiError(status int, raw []byte) error {
	var body errorBody
	message := ""
	if json.Unmarshal(raw, &body) == nil {
		message = strings.TrimSpace(body.Message)
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{Code: errorCodeFromStatus(status), Message: message, Status: status}
}

func toUser(u userV2) User {
	user := User{
		ID:           u.ID,
		Username:     u.Username,
		EmailAddress: u.EmailAddress,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		DisplayName:  u.DisplayName,
		Title:        u.Title,
		Company:      u.Company,
		Location:     u.Location,
		Department:   u.Department,
		AccountType:  u.AccountType,
	}
	if len(u.Avatars) > 0 {
		user.Avatars = lo.Map(u.Avatars, func(a avatarV2, _ int) Avatar {
			return Avatar{Size: a.Size, URL: a.URL}
		})
	}
	return user
}

func toChat(s streamAttributesV2) Chat {
	chat := Chat{
		StreamID: s.ID,
		Type:     ChatType(strings.ToUpper(s.StreamType.Type)),
		Active:   s.Active,
		CrossPod: s.CrossPod,
	}
	if s.StreamAttributes != nil && len(s.StreamAttributes.Members) > 0 {
		chat.MemberIDs = append([]int64(nil), s.StreamAttributes.Members...)
	}
	return chat
}
