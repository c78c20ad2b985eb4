package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRecord is one day's sales entry for a single market. Records are
// append-only: corrections require a new offsetting record.
type SaleRecord struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MarketID   string          `gorm:"type:varchar(255)" json:"market_id"`
	MarketName string          `gorm:"type:varchar(255);not null" json:"market_name"`
	Items      []SaleItem      `gorm:"foreignKey:SaleRecordID" json:"items"`
	Total      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total"` // denormalized sum of price*quantity
	Date       string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Timestamp  int64           `gorm:"not null;index" json:"timestamp"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Username   string          `gorm:"type:varchar(255)" json:"username"`
}

// SaleItem is a line item within a SaleRecord
type SaleItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SaleRecordID uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	ProductName  string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Price        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	Quantity     int             `gorm:"type:int;not null" json:"quantity"`
}
