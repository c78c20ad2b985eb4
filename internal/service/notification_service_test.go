package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	messages map[uuid.UUID]model.NotificationMessage
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{messages: make(map[uuid.UUID]model.NotificationMessage)}
}

func (r *fakeNotificationRepo) Save(ctx context.Context, msg *model.NotificationMessage) error {
	r.messages[msg.ID] = *msg
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID string) ([]model.NotificationMessage, error) {
	var out []model.NotificationMessage
	for _, m := range r.messages {
		if m.RecipientID.String() == recipientID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	for _, m := range r.messages {
		if m.RecipientID.String() == recipientID && !m.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	for id, m := range r.messages {
		if m.RecipientID.String() == recipientID {
			m.IsRead = true
			r.messages[id] = m
		}
	}
	return nil
}

func newNotificationService(repo *fakeNotificationRepo, hub *fakeBroadcaster, at time.Time) *notificationService {
	return &notificationService{repo: repo, hub: orNoop(hub), now: fixedClock(at)}
}

func TestNotificationSend_ThenInbox(t *testing.T) {
	repo := newFakeNotificationRepo()
	hub := &fakeBroadcaster{}
	svc := newNotificationService(repo, hub, time.UnixMilli(1_700_000_000_000))

	admin := testUser(model.RoleAdmin)
	recipient := uuid.New()

	msg, err := svc.Send(context.Background(), admin, SendNotificationRequest{
		RecipientID: recipient.String(),
		Content:     "انتبه لمخزون السكر",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, admin.ID, msg.SenderID)
	assert.Equal(t, admin.Username, msg.SenderName)
	assert.False(t, msg.IsRead)

	inbox, err := svc.Inbox(context.Background(), recipient.String())
	require.NoError(t, err)
	require.Len(t, inbox.Messages, 1)
	assert.Equal(t, "انتبه لمخزون السكر", inbox.Messages[0].Content)
	assert.Equal(t, int64(1), inbox.UnreadCount)

	events := hub.all()
	require.Len(t, events, 1)
	assert.Equal(t, "notifications/"+recipient.String(), events[0].Topic)
}

func TestNotificationSend_DistinctIDsInSameMillisecond(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := newNotificationService(repo, &fakeBroadcaster{}, time.UnixMilli(1_700_000_000_000))

	admin := testUser(model.RoleAdmin)
	recipient := uuid.New()

	// Two sends with the same timestamp must both survive
	first, err := svc.Send(context.Background(), admin, SendNotificationRequest{
		RecipientID: recipient.String(), Content: "first",
	})
	require.NoError(t, err)
	second, err := svc.Send(context.Background(), admin, SendNotificationRequest{
		RecipientID: recipient.String(), Content: "second",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	inbox, err := svc.Inbox(context.Background(), recipient.String())
	require.NoError(t, err)
	assert.Len(t, inbox.Messages, 2)
}

func TestNotificationSend_ExplicitIDOverwrites(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := newNotificationService(repo, &fakeBroadcaster{}, time.UnixMilli(1_700_000_000_000))

	admin := testUser(model.RoleAdmin)
	recipient := uuid.New()
	id := uuid.New().String()

	_, err := svc.Send(context.Background(), admin, SendNotificationRequest{
		ID: id, RecipientID: recipient.String(), Content: "original",
	})
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), admin, SendNotificationRequest{
		ID: id, RecipientID: recipient.String(), Content: "replacement",
	})
	require.NoError(t, err)

	inbox, err := svc.Inbox(context.Background(), recipient.String())
	require.NoError(t, err)
	require.Len(t, inbox.Messages, 1)
	assert.Equal(t, "replacement", inbox.Messages[0].Content)
}

func TestNotificationSend_Validation(t *testing.T) {
	svc := newNotificationService(newFakeNotificationRepo(), &fakeBroadcaster{}, time.Now())
	admin := testUser(model.RoleAdmin)

	_, err := svc.Send(context.Background(), admin, SendNotificationRequest{
		RecipientID: uuid.New().String(),
		Content:     strings.Repeat("a", model.MaxNotificationLength+1),
	})
	assert.Error(t, err)

	_, err = svc.Send(context.Background(), admin, SendNotificationRequest{
		RecipientID: "not-a-uuid",
		Content:     "hello",
	})
	assert.Error(t, err)
}

func TestNotificationMarkAllRead(t *testing.T) {
	repo := newFakeNotificationRepo()
	hub := &fakeBroadcaster{}
	svc := newNotificationService(repo, hub, time.UnixMilli(1_700_000_000_000))

	admin := testUser(model.RoleAdmin)
	recipient := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := svc.Send(context.Background(), admin, SendNotificationRequest{
			RecipientID: recipient.String(), Content: "msg",
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.MarkAllRead(context.Background(), recipient.String()))

	inbox, err := svc.Inbox(context.Background(), recipient.String())
	require.NoError(t, err)
	assert.Equal(t, int64(0), inbox.UnreadCount)
	for _, m := range inbox.Messages {
		assert.True(t, m.IsRead)
	}
}
