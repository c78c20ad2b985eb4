package model

import "github.com/google/uuid"

// SystemAddedBy marks seeded reference entries
const SystemAddedBy = "system"

// Market is a reference list entry. Seeded defaults are visible to
// everyone; user-contributed entries only to their author (and admins).
type Market struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	AddedBy   string    `gorm:"type:varchar(64);not null" json:"added_by"`
	IsDefault bool      `gorm:"default:false" json:"is_default"`
}

// Company is a competitor reference list entry, same visibility rules as Market
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	AddedBy   string    `gorm:"type:varchar(64);not null" json:"added_by"`
	IsDefault bool      `gorm:"default:false" json:"is_default"`
}
