package model

import "github.com/google/uuid"

// MaxNotificationLength caps the message body
const MaxNotificationLength = 1000

// NotificationMessage is a per-recipient inbox entry. Messages are written
// once and only mutated by the read-state transition; they are never
// auto-deleted.
type NotificationMessage struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipient_id"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	SenderName  string    `gorm:"type:varchar(255)" json:"sender_name"`
	Content     string    `gorm:"type:varchar(1000);not null" json:"content"`
	Timestamp   int64     `gorm:"not null" json:"timestamp"` // epoch millis
	IsRead      bool      `gorm:"default:false" json:"is_read"`
}
