package pod

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/nalgeon/be"
)

const liveTestFlagEnv = "PODKIT_LIVE_TEST"

func TestLiveSessionRoundTrip(t *testing.T) {
	if os.Getenv(liveTestFlagEnv) != "1" {
		t.Skipf("set %s=1 to run live pod integration tests", liveTestFlagEnv)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Skipf("POD_URL and POD_SESSION_TOKEN are required for live tests: %v", err)
	}
	client, err := NewClientFromConfig(cfg)
	be.Err(t, err, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	me, err := client.CurrentIdentity(ctx)
	be.Err(t, err, nil)
	be.True(t, me.ID != 0)

	byID, err := client.LookupByID(ctx, me.ID)
	be.Err(t, err, nil)
	be.Equal(t, byID.ID, me.ID)

	if me.EmailAddress != "" {
		byEmail, err := client.LookupByEmail(ctx, me.EmailAddress)
		be.Err(t, err, nil)
		be.Equal(t, byEmail.ID, me.ID)
	}

	_, err = client.LookupByEmail(ctx, "podkit-live-missing@example.invalid")
	be.True(t, IsNotFound(err))

	own, err := client.OwnPresence(ctx)
	be.Err(t, err, nil)
	be.True(t, own != "")

	// Restore the original presence after flipping it.
	be.Err(t, client.SetPresence(ctx, "BUSY"), nil)
	defer func() { _ = client.SetPresence(context.Background(), own) }()

	got, err := client.GetPresence(ctx, me.ID)
	be.Err(t, err, nil)
	be.Equal(t, got, "BUSY")

	_, err = client.ListChats(ctx)
	be.Err(t, err, nil)
}
