package service

import (
	"context"
	"log"
	"sync"
	"time"

	"backend/internal/repository"
	ws "backend/internal/websocket"
)

// Presence policy constants. The threshold is 4x the heartbeat interval so
// a single dropped heartbeat does not flip a user offline.
const (
	HeartbeatInterval = 30 * time.Second
	OnlineThreshold   = 120 * time.Second
)

// Online is the derived presence predicate: the stored flag must be set AND
// the last heartbeat must be recent. Every reader recomputes this; it is
// never stored.
func Online(isOnline bool, lastActive int64, now time.Time) bool {
	return isOnline && now.UnixMilli()-lastActive < OnlineThreshold.Milliseconds()
}

// PresenceTracker maintains per-user online state and heartbeats.
// A session (one websocket connection) marks the user online, refreshes
// last_active every HeartbeatInterval and marks offline on teardown.
type PresenceTracker struct {
	repo repository.UserRepository
	hub  Broadcaster
	now  func() time.Time
}

// NewPresenceTracker returns a new instance of PresenceTracker
func NewPresenceTracker(repo repository.UserRepository, hub Broadcaster) *PresenceTracker {
	return &PresenceTracker{repo: repo, hub: orNoop(hub), now: time.Now}
}

// SetOnline flags the user online and stamps last_active
func (t *PresenceTracker) SetOnline(ctx context.Context, userID string) error {
	millis := t.now().UnixMilli()
	if err := t.repo.SetOnline(ctx, userID, true, millis); err != nil {
		return err
	}
	t.hub.Publish("users/"+userID, ws.ActionUpdated, map[string]interface{}{
		"user_id":     userID,
		"is_online":   true,
		"last_active": millis,
	})
	return nil
}

// SetOffline flags the user offline. last_active is left as-is.
func (t *PresenceTracker) SetOffline(ctx context.Context, userID string) error {
	if err := t.repo.SetOnline(ctx, userID, false, 0); err != nil {
		return err
	}
	t.hub.Publish("users/"+userID, ws.ActionUpdated, map[string]interface{}{
		"user_id":   userID,
		"is_online": false,
	})
	return nil
}

// Heartbeat refreshes the liveness stamp. The repository guard keeps
// last_active monotonically non-decreasing.
func (t *PresenceTracker) Heartbeat(ctx context.Context, userID string) error {
	millis := t.now().UnixMilli()
	if err := t.repo.TouchLastActive(ctx, userID, millis); err != nil {
		return err
	}
	t.hub.Publish("users/"+userID, ws.ActionUpdated, map[string]interface{}{
		"user_id":     userID,
		"last_active": millis,
	})
	return nil
}

// StartSession marks the user online and runs the heartbeat until the
// returned stop function is called. Stop is safe to call more than once
// and always cancels the ticker before writing the offline flag.
func (t *PresenceTracker) StartSession(userID string) func() {
	if err := t.SetOnline(context.Background(), userID); err != nil {
		log.Printf("presence: failed to mark %s online: %v", userID, err)
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				// A failed write is not retried here; the next tick is the retry
				if err := t.Heartbeat(context.Background(), userID); err != nil {
					log.Printf("presence: heartbeat for %s failed: %v", userID, err)
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			if err := t.SetOffline(context.Background(), userID); err != nil {
				log.Printf("presence: failed to mark %s offline: %v", userID, err)
			}
		})
	}
}

// OnlineUsers derives the id -> online mapping across all users.
// The result can lag real state by up to one heartbeat interval.
func (t *PresenceTracker) OnlineUsers(ctx context.Context) (map[string]bool, error) {
	users, err := t.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := t.now()
	online := make(map[string]bool, len(users))
	for _, u := range users {
		online[u.ID.String()] = Online(u.IsOnline, u.LastActive, now)
	}
	return online, nil
}
