package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnline_Derivation(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	tests := []struct {
		name       string
		isOnline   bool
		lastActive int64
		want       bool
	}{
		{"fresh heartbeat", true, now.UnixMilli() - 1000, true},
		{"just inside threshold", true, now.UnixMilli() - 119_999, true},
		{"exactly at threshold", true, now.UnixMilli() - 120_000, false},
		{"stale heartbeat", true, now.UnixMilli() - 600_000, false},
		{"flag cleared overrides recency", false, now.UnixMilli() - 1000, false},
		{"never active", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Online(tt.isOnline, tt.lastActive, now))
		})
	}
}

func TestPresenceTracker_SetOnlineAndOffline(t *testing.T) {
	user := testUser(model.RoleUser)
	repo := newFakeUserRepo(user)
	hub := &fakeBroadcaster{}

	now := time.UnixMilli(1_700_000_000_000)
	tracker := NewPresenceTracker(repo, hub)
	tracker.now = fixedClock(now)

	ctx := context.Background()
	id := user.ID.String()

	require.NoError(t, tracker.SetOnline(ctx, id))
	assert.True(t, user.IsOnline)
	assert.Equal(t, now.UnixMilli(), user.LastActive)

	require.NoError(t, tracker.SetOffline(ctx, id))
	assert.False(t, user.IsOnline)
	// last_active survives logout; only the flag flips
	assert.Equal(t, now.UnixMilli(), user.LastActive)

	events := hub.all()
	require.Len(t, events, 2)
	assert.Equal(t, "users/"+id, events[0].Topic)
	assert.Equal(t, "users/"+id, events[1].Topic)
}

func TestPresenceTracker_HeartbeatIsMonotonic(t *testing.T) {
	user := testUser(model.RoleUser)
	repo := newFakeUserRepo(user)

	tracker := NewPresenceTracker(repo, nil)
	ctx := context.Background()
	id := user.ID.String()

	tracker.now = fixedClock(time.UnixMilli(2000))
	require.NoError(t, tracker.Heartbeat(ctx, id))
	assert.Equal(t, int64(2000), user.LastActive)

	// An out-of-order tick must not rewind the stamp
	tracker.now = fixedClock(time.UnixMilli(1000))
	require.NoError(t, tracker.Heartbeat(ctx, id))
	assert.Equal(t, int64(2000), user.LastActive)
}

func TestPresenceTracker_OnlineUsers(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	fresh := &model.User{ID: uuid.New(), Username: "fresh", Role: model.RoleUser,
		IsOnline: true, LastActive: now.UnixMilli() - 5_000}
	stale := &model.User{ID: uuid.New(), Username: "stale", Role: model.RoleUser,
		IsOnline: true, LastActive: now.UnixMilli() - 500_000}
	loggedOut := &model.User{ID: uuid.New(), Username: "out", Role: model.RoleUser,
		IsOnline: false, LastActive: now.UnixMilli() - 5_000}

	tracker := NewPresenceTracker(newFakeUserRepo(fresh, stale, loggedOut), nil)
	tracker.now = fixedClock(now)

	online, err := tracker.OnlineUsers(context.Background())
	require.NoError(t, err)
	assert.True(t, online[fresh.ID.String()])
	assert.False(t, online[stale.ID.String()])
	assert.False(t, online[loggedOut.ID.String()])
}

func TestPresenceTracker_StartSessionStopIsIdempotent(t *testing.T) {
	user := testUser(model.RoleUser)
	repo := newFakeUserRepo(user)
	hub := &fakeBroadcaster{}

	tracker := NewPresenceTracker(repo, hub)
	tracker.now = fixedClock(time.UnixMilli(1_700_000_000_000))

	stop := tracker.StartSession(user.ID.String())
	assert.True(t, user.IsOnline)

	stop()
	assert.False(t, user.IsOnline)
	offlineEvents := len(hub.all())

	// Second stop is a no-op
	stop()
	assert.Equal(t, offlineEvents, len(hub.all()))
}
