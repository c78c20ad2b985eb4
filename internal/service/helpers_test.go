package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
)

// --- shared fakes ---

type publishedEvent struct {
	Topic  string
	Action string
	Data   interface{}
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (f *fakeBroadcaster) Publish(topic, action string, data interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{Topic: topic, Action: action, Data: data})
}

func (f *fakeBroadcaster) all() []publishedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]publishedEvent, len(f.events))
	copy(out, f.events)
	return out
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		r.users[u.ID.String()] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepo) SetOnline(ctx context.Context, id string, online bool, activeMillis int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.New("record not found")
	}
	u.IsOnline = online
	if activeMillis > 0 {
		u.LastActive = activeMillis
	}
	return nil
}

// TouchLastActive keeps last_active monotonically non-decreasing, matching
// the SQL guard in the real repository.
func (r *fakeUserRepo) TouchLastActive(ctx context.Context, id string, activeMillis int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.New("record not found")
	}
	if u.LastActive < activeMillis {
		u.LastActive = activeMillis
	}
	return nil
}

func testUser(role string) *model.User {
	return &model.User{
		ID:       uuid.New(),
		Username: "tester",
		Role:     role,
	}
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
