package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SendNotificationRequest addresses a message to exactly one recipient.
// ID is normally left empty and generated server-side; an explicit id
// overwrites any stored message with the same id (last-writer-wins).
type SendNotificationRequest struct {
	ID          string `json:"id"`
	RecipientID string `json:"recipient_id" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// InboxResponse is a user's inbox, newest first, with the unread tally
type InboxResponse struct {
	Messages    []model.NotificationMessage `json:"messages"`
	UnreadCount int64                       `json:"unread_count"`
}

// NotificationService implements the per-recipient realtime message channel
type NotificationService interface {
	Send(ctx context.Context, sender *model.User, req SendNotificationRequest) (*model.NotificationMessage, error)
	Inbox(ctx context.Context, userID string) (*InboxResponse, error)
	MarkAllRead(ctx context.Context, userID string) error
}

type notificationService struct {
	repo repository.NotificationRepository
	hub  Broadcaster
	now  func() time.Time
}

// NewNotificationService returns a new instance of NotificationService
func NewNotificationService(repo repository.NotificationRepository, hub Broadcaster) NotificationService {
	return &notificationService{repo: repo, hub: orNoop(hub), now: time.Now}
}

func (s *notificationService) Send(ctx context.Context, sender *model.User, req SendNotificationRequest) (*model.NotificationMessage, error) {
	if len(req.Content) > model.MaxNotificationLength {
		return nil, fmt.Errorf("content exceeds %d characters", model.MaxNotificationLength)
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return nil, errors.New("invalid recipient id")
	}

	// Collision-resistant ids replace the old timestamp-derived ones;
	// two sends in the same millisecond no longer clobber each other.
	id := uuid.New()
	if req.ID != "" {
		id, err = uuid.Parse(req.ID)
		if err != nil {
			return nil, errors.New("invalid message id")
		}
	}

	msg := &model.NotificationMessage{
		ID:          id,
		RecipientID: recipientID,
		SenderID:    sender.ID,
		SenderName:  sender.Username,
		Content:     req.Content,
		Timestamp:   s.now().UnixMilli(),
		IsRead:      false,
	}

	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, err
	}

	s.hub.Publish("notifications/"+recipientID.String(), ws.ActionCreated, msg)
	return msg, nil
}

func (s *notificationService) Inbox(ctx context.Context, userID string) (*InboxResponse, error) {
	messages, err := s.repo.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &InboxResponse{Messages: messages, UnreadCount: unread}, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	s.hub.Publish("notifications/"+userID, ws.ActionUpdated, map[string]interface{}{
		"recipient_id": userID,
		"is_read":      true,
	})
	return nil
}
