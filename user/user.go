package user

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/spachava753/podkit/pod"
	"github.com/spachava753/podkit/resolve"
)

// Record keys produced by ToRecord.
const (
	KeyUserID       = "user_id"
	KeyUsername     = "username"
	KeyEmailAddress = "email_address"
	KeyFirstName    = "first_name"
	KeyLastName     = "last_name"
	KeyDisplayName  = "display_name"
	KeyTitle        = "title"
	KeyCompany      = "company"
	KeyLocation     = "location"
	KeyDepartment   = "department"
	KeyAccountType  = "account_type"
	KeyAvatars      = "avatars"
)

var resolver = resolve.New(resolve.Strategies[pod.User]{
	Kind:      "user",
	RecordKey: KeyUserID,
	Current: func(ctx context.Context, conn *pod.Connection) (*pod.User, error) {
		return conn.Users().CurrentIdentity(ctx)
	},
	ByID: func(ctx context.Context, conn *pod.Connection, id int64) (*pod.User, error) {
		return conn.Users().LookupByID(ctx, id)
	},
	ByKey:   lookupByEmail,
	ByEmail: lookupByEmail,
	ByUsername: func(ctx context.Context, conn *pod.Connection, username string) (*pod.User, error) {
		return conn.Users().LookupByUsername(ctx, username)
	},
})

func lookupByEmail(ctx context.Context, conn *pod.Connection, email string) (*pod.User, error) {
	return conn.Users().LookupByEmail(ctx, email)
}

// Resolve returns the user named by id, or nil when no such user exists.
//
// A nil id or resolve.Current() selects the session user. Plain strings
// (resolve.Key) are looked up as email addresses; use ResolveByUsername for
// usernames.
func Resolve(ctx context.Context, conn *pod.Connection, id resolve.Identifier) (*pod.User, error) {
	return resolver.Resolve(ctx, conn, id)
}

// ResolveByEmail returns the user with the given email address, or nil.
func ResolveByEmail(ctx context.Context, conn *pod.Connection, email string) (*pod.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, pod.InvalidArgument("user: email must not be blank")
	}
	return resolver.Resolve(ctx, conn, resolve.Email(email))
}

// ResolveByUsername returns the user with the given pod-local username, or nil.
func ResolveByUsername(ctx context.Context, conn *pod.Connection, username string) (*pod.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, pod.InvalidArgument("user: username must not be blank")
	}
	return resolver.Resolve(ctx, conn, resolve.Username(username))
}

// ToRecord flattens u into a plain record. It returns nil for a nil user.
func ToRecord(u *pod.User) resolve.Record {
	if u == nil {
		return nil
	}
	return resolve.Record{
		KeyUserID:       u.ID,
		KeyUsername:     u.Username,
		KeyEmailAddress: u.EmailAddress,
		KeyFirstName:    u.FirstName,
		KeyLastName:     u.LastName,
		KeyDisplayName:  u.DisplayName,
		KeyTitle:        u.Title,
		KeyCompany:      u.Company,
		KeyLocation:     u.Location,
		KeyDepartment:   u.Department,
		KeyAccountType:  u.AccountType,
		KeyAvatars: lo.Map(u.Avatars, func(a pod.Avatar, _ int) map[string]any {
			return map[string]any{"size": a.Size, "url": a.URL}
		}),
	}
}

// ResolveToRecord resolves id and flattens the result with ToRecord.
func ResolveToRecord(ctx context.Context, conn *pod.Connection, id resolve.Identifier) (resolve.Record, error) {
	u, err := Resolve(ctx, conn, id)
	if err != nil {
		return nil, err
	}
	return ToRecord(u), nil
}

// SameRealm reports whether the user named by id belongs to the same company
// as the session user. known is false when either side cannot be resolved.
func SameRealm(ctx context.Context, conn *pod.Connection, id resolve.Identifier) (same bool, known bool, err error) {
	me, them, err := realmPair(ctx, conn, id)
	if err != nil || me == nil || them == nil {
		return false, false, err
	}
	return me.Company == them.Company, true, nil
}

// CrossRealm is the negation of SameRealm. known is false when either side
// cannot be resolved.
func CrossRealm(ctx context.Context, conn *pod.Connection, id resolve.Identifier) (cross bool, known bool, err error) {
	same, known, err := SameRealm(ctx, conn, id)
	if err != nil || !known {
		return false, false, err
	}
	return !same, true, nil
}

func realmPair(ctx context.Context, conn *pod.Connection, id resolve.Identifier) (*pod.User, *pod.User, error) {
	me, err := Resolve(ctx, conn, resolve.Current())
	if err != nil || me == nil {
		return nil, nil, err
	}
	if resolve.IsCurrent(id) {
		return me, me, nil
	}
	them, err := Resolve(ctx, conn, id)
	if err != nil {
		return nil, nil, err
	}
	return me, them, nil
}
