package chat

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

func TestNormalizeStreamID(t *testing.T) {
	be.Equal(t, NormalizeStreamID("iWyZBIAVBY1Y6lO8mlYUZX///pfCMkaedA=="), "iWyZBIAVBY1Y6lO8mlYUZX___pfCMkaedA")
	be.Equal(t, NormalizeStreamID(" a+b/c "), "a-b_c")
	be.Equal(t, NormalizeStreamID("abc"), "abc")
}

func TestResolveByStreamID(t *testing.T) {
	conn, m := podmock.NewConnection(gomock.NewController(t))
	im := &pod.Chat{StreamID: "a-b_c", Type: pod.ChatTypeIM, Active: true, MemberIDs: []int64{1, 2}}
	m.Streams.EXPECT().LookupChat(gomock.Any(), "a-b_c").Return(im, nil).Times(2)

	got, err := Resolve(context.Background(), conn, resolve.Key("a+b/c=="))
	be.Err(t, err, nil)
	be.Equal(t, got, im)

	got, err = Resolve(context.Background(), conn, resolve.Record{KeyStreamID: "a-b_c"})
	be.Err(t, err, nil)
	be.Equal(t, got, im)
}

func TestResolveRoomIsAbsent(t *testing.T) {
	conn, m := podmock.NewConnection(gomock.NewController(t))
	m.Streams.EXPECT().LookupChat(gomock.Any(), "room1").Return(&pod.Chat{StreamID: "room1", Type: pod.ChatTypeRoom}, nil)

	got, err := Resolve(context.Background(), conn, resolve.Key("room1"))
	be.Err(t, err, nil)
	be.True(t, got == nil)
}

func TestResolveAbsentAndFaults(t *testing.T) {
	conn, m := podmock.NewConnection(gomock.NewController(t))
	unavailable := &pod.Error{Code: pod.ErrorCodeUnavailable, Message: "Bad Gateway", Status: 502}
	m.Streams.EXPECT().LookupChat(gomock.Any(), "gone").Return(nil, pod.NotFound("stream %q", "gone"))
	m.Streams.EXPECT().LookupChat(gomock.Any(), "flaky").Return(nil, unavailable)

	ctx := context.Background()
	got, err := Resolve(ctx, conn, resolve.Key("gone"))
	be.Err(t, err, nil)
	be.True(t, got == nil)

	_, err = Resolve(ctx, conn, resolve.Key("flaky"))
	be.True(t, errors.Is(err, unavailable))

	got, err = Resolve(ctx, conn, resolve.Null())
	be.Err(t, err, nil)
	be.True(t, got == nil)
}

func TestResolveUnsupportedVariants(t *testing.T) {
	conn, _ := podmock.NewConnection(gomock.NewController(t))
	for _, id := range []resolve.Identifier{nil, resolve.ID(3), resolve.Email("a@example.com"), resolve.Username("a")} {
		_, err := Resolve(context.Background(), conn, id)
		be.True(t, pod.IsInvalidArgument(err))
	}
}

func TestToRecord(t *testing.T) {
	c := &pod.Chat{StreamID: "s1", Type: pod.ChatTypeMIM, Active: true, CrossPod: true, MemberIDs: []int64{4, 5}}
	rec := ToRecord(c)
	be.Equal(t, rec[KeyStreamID], any("s1"))
	be.Equal(t, rec[KeyChatType], any("MIM"))
	be.Equal(t, rec[KeyCrossPod], any(true))
	be.Equal(t, rec[KeyMemberIDs], any([]int64{4, 5}))
	be.True(t, ToRecord(nil) == nil)
}

func TestList(t *testing.T) {
	conn, m := podmock.NewConnection(gomock.NewController(t))
	m.Streams.EXPECT().ListChats(gomock.Any()).Return([]pod.Chat{
		{StreamID: "a", Type: pod.ChatTypeIM, Active: true},
		{StreamID: "b", Type: pod.ChatTypeMIM, Active: false},
		{StreamID: "c", Type: pod.ChatTypeRoom, Active: true},
		{StreamID: "d", Type: pod.ChatTypeMIM, Active: true},
	}, nil)

	chats, err := List(context.Background(), conn)
	be.Err(t, err, nil)
	be.Equal(t, len(chats), 2)
	be.Equal(t, chats[0].StreamID, "a")
	be.Equal(t, chats[1].StreamID, "d")
}

func TestStart(t *testing.T) {
	conn, m := podmock.NewConnection(gomock.NewController(t))
	created := &pod.Chat{StreamID: "new", Type: pod.ChatTypeMIM, Active: true, MemberIDs: []int64{1, 2, 3}}
	m.Users.EXPECT().LookupByEmail(gomock.Any(), "b@example.com").Return(&pod.User{ID: 2}, nil)
	m.Users.EXPECT().LookupByID(gomock.Any(), int64(3)).Return(&pod.User{ID: 3}, nil)
	m.Streams.EXPECT().StartChat(gomock.Any(), []int64{2, 3}).Return(created, nil)

	got, err := Start(context.Background(), conn,
		resolve.Key("b@example.com"),
		resolve.ID(3),
		resolve.Entity{Value: &pod.User{ID: 2}},
	)
	be.Err(t, err, nil)
	be.Equal(t, got, created)
}

func TestStartRejectsMissingParticipants(t *testing.T) {
	conn, m := podmock.NewConnection(gomock.NewController(t))
	m.Users.EXPECT().LookupByID(gomock.Any(), int64(404)).Return(nil, pod.NotFound("user id 404"))

	_, err := Start(context.Background(), conn)
	be.True(t, pod.IsInvalidArgument(err))

	_, err = Start(context.Background(), conn, resolve.ID(404))
	be.True(t, pod.IsInvalidArgument(err))

	_, err = Start(context.Background(), conn, resolve.Null())
	be.True(t, pod.IsInvalidArgument(err))
}

func TestStartRejectsSessionUser(t *testing.T) {
	// No expectations: the session user is never looked up.
	conn, _ := podmock.NewConnection(gomock.NewController(t))

	_, err := Start(context.Background(), conn, resolve.Current(), resolve.ID(2))
	be.True(t, pod.IsInvalidArgument(err))

	_, err = Start(context.Background(), conn, nil)
	be.True(t, pod.IsInvalidArgument(err))
}
