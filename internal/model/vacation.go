package model

import "github.com/google/uuid"

// Leave type constants
const (
	VacationAnnual = "annual"
	VacationCasual = "casual"
	VacationSick   = "sick"
	VacationExam   = "exam"
)

// VacationRequest is a logged leave entry. The profile balance counters are
// maintained separately by admins; filing a request does not deduct them.
type VacationRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Username  string    `gorm:"type:varchar(255)" json:"username"`
	Date      string    `gorm:"type:varchar(10);not null;index" json:"date"`
	Days      int       `gorm:"type:int;not null" json:"days"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type"`
	Timestamp int64     `gorm:"not null" json:"timestamp"`
}
