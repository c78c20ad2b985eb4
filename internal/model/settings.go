package model

import "time"

// SettingsID is the primary key of the single AppSettings row
const SettingsID uint = 1

// AppSettings is the process-wide shared configuration. Exactly one row
// exists; writes are full-record overwrites (last-writer-wins).
type AppSettings struct {
	ID                     uint      `gorm:"primaryKey" json:"-"`
	ProgramName            string    `gorm:"type:varchar(255)" json:"program_name"`
	TickerText             string    `gorm:"type:text" json:"ticker_text"`
	ShowDailySalesTicker   bool      `gorm:"default:true" json:"show_daily_sales_ticker"`
	ShowMonthlySalesTicker bool      `gorm:"default:true" json:"show_monthly_sales_ticker"`
	WhatsAppNumber         string    `gorm:"type:varchar(30)" json:"whatsapp_number"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DefaultSettings is the fallback used when the settings row is absent
func DefaultSettings() AppSettings {
	return AppSettings{
		ID:                     SettingsID,
		ProgramName:            "Soft Rose Modern Trade",
		TickerText:             "أهلاً بكم في سوفت روز للتجارة الحديثة",
		ShowDailySalesTicker:   true,
		ShowMonthlySalesTicker: true,
		WhatsAppNumber:         "",
	}
}
