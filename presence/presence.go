package presence

import (
	"context"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/spachava753/podkit/pod"
	"github.com/spachava753/podkit/resolve"
	"github.com/spachava753/podkit/user"
)

// Category is a presence state.
type Category string

const (
	// Available means the user can be contacted.
	Available Category = "AVAILABLE"
	// Busy means the user prefers not to be contacted.
	Busy Category = "BUSY"
	// Away means the user is idle.
	Away Category = "AWAY"
	// OnThePhone means the user is on a call.
	OnThePhone Category = "ON_THE_PHONE"
	// BeRightBack means the user stepped away briefly.
	BeRightBack Category = "BE_RIGHT_BACK"
	// InAMeeting means the user is in a meeting.
	InAMeeting Category = "IN_A_MEETING"
	// OutOfOffice means the user is out of office.
	OutOfOffice Category = "OUT_OF_OFFICE"
	// OffWork means the user is outside working hours.
	OffWork Category = "OFF_WORK"
	// Offline means the user is not connected.
	Offline Category = "OFFLINE"
)

// Keep in sync with the pod's presence categories.
var categories = []Category{
	Available,
	Busy,
	Away,
	OnThePhone,
	BeRightBack,
	InAMeeting,
	OutOfOffice,
	OffWork,
	Offline,
}

const maxRecordDepth = 8

// Categories returns every category the pod accepts, in display order.
func Categories() []Category {
	return slices.Clone(categories)
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	return slices.Contains(categories, c)
}

// Parse reads a category name. It is case-insensitive and accepts '-' or ' '
// in place of '_', so "be right back" and "Be-Right-Back" both parse.
func Parse(s string) (Category, error) {
	norm := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToUpper(strings.TrimSpace(s)))
	c := Category(norm)
	if !c.Valid() {
		return "", pod.InvalidArgument("presence: unknown category %q (want one of %s)", s, strings.Join(names(), ", "))
	}
	return c, nil
}

func names() []string {
	return lo.Map(categories, func(c Category, _ int) string { return string(c) })
}

// Get returns the presence of the user named by id. ok is false when the user
// or their presence cannot be found.
//
// A nil id or resolve.Current() reads the session user's presence and a
// resolve.ID is queried directly. Other variants are resolved to a user first.
func Get(ctx context.Context, conn *pod.Connection, id resolve.Identifier) (c Category, ok bool, err error) {
	if conn == nil {
		return "", false, pod.InvalidArgument("presence: connection is required")
	}
	return get(ctx, conn, id, 0)
}

func get(ctx context.Context, conn *pod.Connection, id resolve.Identifier, depth int) (Category, bool, error) {
	if resolve.IsCurrent(id) {
		raw, err := conn.Presence().OwnPresence(ctx)
		return category(conn, raw, err)
	}
	if resolve.IsNull(id) {
		return "", false, nil
	}

	switch v := id.(type) {
	case resolve.ID:
		raw, err := conn.Presence().GetPresence(ctx, int64(v))
		return category(conn, raw, err)

	case resolve.Record:
		if depth >= maxRecordDepth {
			return "", false, pod.InvalidArgument("presence: record nesting exceeds %d levels", maxRecordDepth)
		}
		inner, err := v.Field(user.KeyUserID)
		if err != nil {
			return "", false, err
		}
		if resolve.IsCurrent(inner) {
			return "", false, nil
		}
		return get(ctx, conn, inner, depth+1)

	default:
		u, err := user.Resolve(ctx, conn, id)
		if err != nil || u == nil {
			return "", false, err
		}
		raw, err := conn.Presence().GetPresence(ctx, u.ID)
		return category(conn, raw, err)
	}
}

func category(conn *pod.Connection, raw string, err error) (Category, bool, error) {
	if err != nil {
		if pod.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	c, perr := Parse(raw)
	if perr != nil {
		conn.Logger().Debug().Str("category", raw).Msg("unrecognized presence category")
		return Category(raw), true, nil
	}
	return c, true, nil
}

// Set sets the presence of the session user. The pod only lets a session
// change its own presence. An unknown value is an invalid-argument error and
// nothing is sent.
func Set(ctx context.Context, conn *pod.Connection, value string) error {
	c, err := Parse(value)
	if err != nil {
		return err
	}
	if conn == nil {
		return pod.InvalidArgument("presence: connection is required")
	}
	return conn.Presence().SetPresence(ctx, string(c))
}
