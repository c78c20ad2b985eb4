package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role constants
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Permissions holds the per-user capability flags toggled by admins
type Permissions struct {
	ShowSalesLog          bool `gorm:"default:false" json:"show_sales_log"`
	ShowInventoryLog      bool `gorm:"default:false" json:"show_inventory_log"`
	ShowCompetitorReports bool `gorm:"default:false" json:"show_competitor_reports"`
	ShowAllSales          bool `gorm:"default:false" json:"show_all_sales"`
}

// VacationBalance holds the remaining leave counters per category.
// Maintained by admins; not reconciled against the vacation log.
type VacationBalance struct {
	Annual int `gorm:"default:21" json:"annual"`
	Casual int `gorm:"default:7" json:"casual"`
	Sick   int `gorm:"default:0" json:"sick"`
}

// User represents an employee account, including presence fields
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password     string    `gorm:"type:varchar(255);not null" json:"-"` // Omit password from JSON requests/responses
	Role         string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	EmployeeCode string    `gorm:"type:varchar(50)" json:"employee_code"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`

	// Presence: is_online is set on login/logout, last_active is refreshed
	// by the heartbeat. Readers must derive the effective online status,
	// the stored flag alone is not authoritative.
	IsOnline   bool  `gorm:"default:false" json:"is_online"`
	LastActive int64 `gorm:"default:0" json:"last_active"` // epoch millis

	Permissions     Permissions     `gorm:"embedded;embeddedPrefix:perm_" json:"permissions"`
	VacationBalance VacationBalance `gorm:"embedded;embeddedPrefix:balance_" json:"vacation_balance"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // GORM soft delete
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
