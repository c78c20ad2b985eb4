package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRepository provides access to per-recipient inboxes
type NotificationRepository interface {
	Save(ctx context.Context, msg *model.NotificationMessage) error
	ListByRecipient(ctx context.Context, recipientID string) ([]model.NotificationMessage, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	MarkAllRead(ctx context.Context, recipientID string) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository returns a new instance of NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Save is an upsert: a message with an already-seen id unconditionally
// overwrites the stored one (last-writer-wins).
func (r *notificationRepository) Save(ctx context.Context, msg *model.NotificationMessage) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(msg).Error
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]model.NotificationMessage, error) {
	var messages []model.NotificationMessage
	err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("timestamp desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.NotificationMessage{}).
		Where("recipient_id = ? AND is_read = false", recipientID).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	return r.db.WithContext(ctx).Model(&model.NotificationMessage{}).
		Where("recipient_id = ? AND is_read = false", recipientID).
		Update("is_read", true).Error
}
