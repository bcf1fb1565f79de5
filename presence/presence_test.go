package presence

import (
	"context"
	"errors"
	"testing"

	"github.com/nalgeon/be"
	"go.uber.org/mock/gomock"

	"github.com/spachava753/podkit/pod"
	"github.com/spachava753/podkit/pod/podmock"
	"github.com/spachava753/podkit/resolve"
)

func TestParse(t *testing.T) {
	tests := map[string]Category{
		"AVAILABLE":     Available,
		" busy ":        Busy,
		"be right back": BeRightBack,
		"Out-Of-Office": OutOfOffice,
		"in_a_meeting":  InAMeeting,
	}
	for in, want := range tests {
		got, err := Parse(in)
		be.Err(t, err, nil)
		be.Equal(t, got, want)
	}

	for _, in := range []string{"bogus", "", "AVAILABLE!"} {
		_, err := Parse(in)
		be.True(t, pod.IsInvalidArgument(err))
	}
}

func TestCategories(t *testing.T) {
	all := Categories()
	be.Equal(t, len(all), 9)
	be.Equal(t, all[0], Available)
	for _, c := range all {
		be.True(t, c.Valid())
	}

	all[0] = "MUTATED"
	be.Equal(t, Categories()[0], Available)
}

func TestSetValidatesBeforeRemoteCall(t *testing.T) {
	conn, m := podmock.NewConnection(gomock.NewController(t))
	m.Presence.EXPECT().SetPresence(gomock.Any(), "BUSY").Return(nil)

	be.Err(t, Set(context.Background(), conn, "busy"), nil)

	// No SetPresence expectation for "bogus": a remote call fails the test.
	err := Set(context.Background(), conn, "bogus")
	be.True(t, pod.IsInvalidArgument(err))
}

func TestSetPropagatesFault(t *testing.T) {
	conn, m := podmock.NewConnection(gomock.NewController(t))
	unauthorized := &pod.Error{Code: pod.ErrorCodeUnauthorized, Message: "session expired", Status: 401}
	m.Presence.EXPECT().SetPresence(gomock.Any(), "AWAY").Return(unauthorized)

	err := Set(context.Background(), conn, "away")
	be.True(t, errors.Is(err, unauthorized))
}

func TestGetDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("current", func(t *testing.T) {
		conn, m := podmock.NewConnection(gomock.NewController(t))
		m.Presence.EXPECT().OwnPresence(gomock.Any()).Return("AVAILABLE", nil).Times(2)

		c, ok, err := Get(ctx, conn, nil)
		be.Err(t, err, nil)
		be.True(t, ok)
		be.Equal(t, c, Available)

		c, _, err = Get(ctx, conn, resolve.Current())
		be.Err(t, err, nil)
		be.Equal(t, c, Available)
	})

	t.Run("id queries directly", func(t *testing.T) {
		conn, m := podmock.NewConnection(gomock.NewController(t))
		m.Presence.EXPECT().GetPresence(gomock.Any(), int64(7)).Return("BUSY", nil)

		c, ok, err := Get(ctx, conn, resolve.ID(7))
		be.Err(t, err, nil)
		be.True(t, ok)
		be.Equal(t, c, Busy)
	})

	t.Run("email resolves user first", func(t *testing.T) {
		conn, m := podmock.NewConnection(gomock.NewController(t))
		gomock.InOrder(
			m.Users.EXPECT().LookupByEmail(gomock.Any(), "ada@example.com").Return(&pod.User{ID: 11}, nil),
			m.Presence.EXPECT().GetPresence(gomock.Any(), int64(11)).Return("IN_A_MEETING", nil),
		)

		c, ok, err := Get(ctx, conn, resolve.Key("ada@example.com"))
		be.Err(t, err, nil)
		be.True(t, ok)
		be.Equal(t, c, InAMeeting)
	})

	t.Run("entity skips user lookup", func(t *testing.T) {
		conn, m := podmock.NewConnection(gomock.NewController(t))
		m.Presence.EXPECT().GetPresence(gomock.Any(), int64(12)).Return("AWAY", nil)

		c, ok, err := Get(ctx, conn, resolve.Entity{Value: &pod.User{ID: 12}})
		be.Err(t, err, nil)
		be.True(t, ok)
		be.Equal(t, c, Away)
	})

	t.Run("record", func(t *testing.T) {
		conn, m := podmock.NewConnection(gomock.NewController(t))
		m.Presence.EXPECT().GetPresence(gomock.Any(), int64(13)).Return("OFFLINE", nil)

		c, ok, err := Get(ctx, conn, resolve.Record{"user_id": float64(13)})
		be.Err(t, err, nil)
		be.True(t, ok)
		be.Equal(t, c, Offline)

		_, ok, err = Get(ctx, conn, resolve.Record{"user_id": nil})
		be.Err(t, err, nil)
		be.True(t, !ok)
	})

	t.Run("absent", func(t *testing.T) {
		conn, m := podmock.NewConnection(gomock.NewController(t))
		m.Users.EXPECT().LookupByUsername(gomock.Any(), "ghost").Return(nil, pod.NotFound("username %q", "ghost"))
		m.Presence.EXPECT().GetPresence(gomock.Any(), int64(404)).Return("", pod.NotFound("presence of user id 404"))

		_, ok, err := Get(ctx, conn, resolve.Username("ghost"))
		be.Err(t, err, nil)
		be.True(t, !ok)

		_, ok, err = Get(ctx, conn, resolve.ID(404))
		be.Err(t, err, nil)
		be.True(t, !ok)

		_, ok, err = Get(ctx, conn, resolve.Null())
		be.Err(t, err, nil)
		be.True(t, !ok)
	})

	t.Run("fault", func(t *testing.T) {
		conn, m := podmock.NewConnection(gomock.NewController(t))
		boom := errors.New("dial tcp: i/o timeout")
		m.Presence.EXPECT().GetPresence(gomock.Any(), int64(1)).Return("", boom)

		_, ok, err := Get(ctx, conn, resolve.ID(1))
		be.Err(t, err, boom)
		be.True(t, !ok)
	})
}
