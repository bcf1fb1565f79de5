package podmock

import (
	"go.uber.org/mock/gomock"

	"github.com/spachava753/podkit/pod"
)

// Mocks are the collaborators behind a Connection built by NewConnection.
type Mocks struct {
	Users    *MockUserDirectory
	Streams  *MockStreamDirectory
	Presence *MockPresenceService
}

// NewConnection returns a Connection backed by fresh mocks. A mock without
// expectations fails the test when it is called.
func NewConnection(ctrl *gomock.Controller, opts ...pod.ConnectionOption) (*pod.Connection, *Mocks) {
	m := &Mocks{
		Users:    NewMockUserDirectory(ctrl),
		Streams:  NewMockStreamDirectory(ctrl),
		Presence: NewMockPresenceService(ctrl),
	}
	conn, err := pod.NewConnection(m.Users, m.Streams, m.Presence, opts...)
	if err != nil {
		panic(err)
	}
	return conn, m
}
