package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompetitorPriceRecord logs observed competitor prices at a market.
// Append-only.
type CompetitorPriceRecord struct {
	ID          uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MarketID    string               `gorm:"type:varchar(255)" json:"market_id"`
	MarketName  string               `gorm:"type:varchar(255);not null" json:"market_name"`
	CompanyID   string               `gorm:"type:varchar(255)" json:"company_id"`
	CompanyName string               `gorm:"type:varchar(255);not null" json:"company_name"`
	Items       []CompetitorPriceItem `gorm:"foreignKey:RecordID" json:"items"`
	Date        string               `gorm:"type:varchar(10);not null;index" json:"date"`
	Timestamp   int64                `gorm:"not null;index" json:"timestamp"`
	UserID      uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
}

// CompetitorPriceItem is one observed product price
type CompetitorPriceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RecordID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Category    string          `gorm:"type:varchar(255)" json:"category"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
}
