package model

import "github.com/google/uuid"

// InventoryRecord is a stock count logged for a market. Append-only.
type InventoryRecord struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MarketID   string          `gorm:"type:varchar(255)" json:"market_id"`
	MarketName string          `gorm:"type:varchar(255);not null" json:"market_name"`
	Items      []InventoryItem `gorm:"foreignKey:InventoryRecordID" json:"items"`
	Date       string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Timestamp  int64           `gorm:"not null;index" json:"timestamp"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Username   string          `gorm:"type:varchar(255)" json:"username"`
}

// InventoryItem is a counted product within an InventoryRecord
type InventoryItem struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InventoryRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductName       string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity          int       `gorm:"type:int;not null" json:"quantity"`
}
