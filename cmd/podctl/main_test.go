package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"

	"github.com/spachava753/podkit/pod"
	"github.com/spachava753/podkit/pod/podmock"
)

func runPodctl(t *testing.T, setup func(m *podmock.Mocks), args ...string) (string, error) {
	t.Helper()
	conn, m := podmock.NewConnection(gomock.NewController(t))
	if setup != nil {
		setup(m)
	}
	var out, errw bytes.Buffer
	a := &app{out: &out, errw: &errw, conn: conn}
	err := a.cli().RunContext(context.Background(), append([]string{"podctl"}, args...))
	return out.String(), err
}

func TestUserGetJSON(t *testing.T) {
	out, err := runPodctl(t, func(m *podmock.Mocks) {
		m.Users.EXPECT().LookupByEmail(gomock.Any(), "ada@example.com").
			Return(&pod.User{ID: 1, EmailAddress: "ada@example.com", Company: "Acme"}, nil)
	}, "-o", "json", "user", "get", "ada@example.com")
	be.Err(t, err, nil)

	var rec map[string]any
	be.Err(t, json.Unmarshal([]byte(out), &rec), nil)
	be.Equal(t, rec["user_id"], any(float64(1)))
	be.Equal(t, rec["company"], any("Acme"))
}

func TestUserGetNotFound(t *testing.T) {
	_, err := runPodctl(t, func(m *podmock.Mocks) {
		m.Users.EXPECT().LookupByID(gomock.Any(), int64(404)).Return(nil, pod.NotFound("user id 404"))
	}, "user", "get", "404")
	be.True(t, errors.Is(err, errNotFound))
}

func TestUserRealmTable(t *testing.T) {
	out, err := runPodctl(t, func(m *podmock.Mocks) {
		m.Users.EXPECT().CurrentIdentity(gomock.Any()).Return(&pod.User{ID: 1, Company: "Acme"}, nil)
		m.Users.EXPECT().LookupByUsername(gomock.Any(), "bob").Return(&pod.User{ID: 2, Company: "Globex"}, nil)
	}, "user", "realm", "username:bob")
	be.Err(t, err, nil)
	be.True(t, strings.Contains(out, "cross_realm"))
	be.True(t, strings.Contains(out, "true"))
}

func TestUserUpdateRejectsCompanyByDefault(t *testing.T) {
	_, err := runPodctl(t, nil, "user", "update", "--company", "Initech", "5")
	be.True(t, pod.IsInvalidArgument(err))
}

func TestUserUpdate(t *testing.T) {
	out, err := runPodctl(t, func(m *podmock.Mocks) {
		m.Users.EXPECT().LookupByID(gomock.Any(), int64(5)).Return(&pod.User{ID: 5}, nil)
		m.Users.EXPECT().UpdateUser(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, attrs pod.UserAttributes) (*pod.User, error) {
				return &pod.User{ID: 5, Title: *attrs.Title}, nil
			})
	}, "-o", "yaml", "user", "update", "--title", "CTO", "5")
	be.Err(t, err, nil)

	var rec map[string]any
	be.Err(t, yaml.Unmarshal([]byte(out), &rec), nil)
	be.Equal(t, rec["title"], any("CTO"))
}

func TestChatList(t *testing.T) {
	out, err := runPodctl(t, func(m *podmock.Mocks) {
		m.Streams.EXPECT().ListChats(gomock.Any()).Return([]pod.Chat{
			{StreamID: "s1", Type: pod.ChatTypeIM, Active: true, MemberIDs: []int64{1, 2}},
		}, nil)
	}, "chat", "list")
	be.Err(t, err, nil)
	be.True(t, strings.Contains(out, "s1"))
	be.True(t, strings.Contains(out, "1,2"))
}

func TestChatGetTreatsArgumentAsStreamID(t *testing.T) {
	out, err := runPodctl(t, func(m *podmock.Mocks) {
		m.Streams.EXPECT().LookupChat(gomock.Any(), "12345").
			Return(&pod.Chat{StreamID: "12345", Type: pod.ChatTypeMIM, Active: true}, nil)
	}, "-o", "json", "chat", "get", "12345")
	be.Err(t, err, nil)
	be.True(t, strings.Contains(out, `"chat_type": "MIM"`))
}

func TestPresenceSetRejectsBeforeConnecting(t *testing.T) {
	_, err := runPodctl(t, nil, "presence", "set", "bogus")
	be.True(t, pod.IsInvalidArgument(err))
}

func TestPresenceGetCurrent(t *testing.T) {
	out, err := runPodctl(t, func(m *podmock.Mocks) {
		m.Presence.EXPECT().OwnPresence(gomock.Any()).Return("AWAY", nil)
	}, "presence", "get")
	be.Err(t, err, nil)
	be.True(t, strings.Contains(out, "AWAY"))
}

func TestPresenceCategoriesYAML(t *testing.T) {
	out, err := runPodctl(t, nil, "--output", "yaml", "presence", "categories")
	be.Err(t, err, nil)

	var rows []map[string]string
	be.Err(t, yaml.Unmarshal([]byte(out), &rows), nil)
	be.Equal(t, len(rows), 9)
	be.Equal(t, rows[0]["category"], "AVAILABLE")
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := runPodctl(t, nil, "-o", "xml", "presence", "categories")
	be.Err(t, err, "unknown output format")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger("info", &buf)
	be.Err(t, err, nil)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	be.True(t, !strings.Contains(buf.String(), "hidden"))
	be.True(t, strings.Contains(buf.String(), "shown"))

	_, err = newLogger("loud", &buf)
	be.Err(t, err)
}
