package database

import (
	"log"

	"backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.User{},
		&model.AppSettings{},
		&model.NotificationMessage{},
		&model.SaleRecord{},
		&model.SaleItem{},
		&model.InventoryRecord{},
		&model.InventoryItem{},
		&model.CompetitorPriceRecord{},
		&model.CompetitorPriceItem{},
		&model.VacationRequest{},
		&model.Market{},
		&model.Company{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}

// Default reference lists seeded on first start
var defaultMarkets = []string{
	"محلاوي الحي العاشر",
	"محلاوي التجمع الخامس",
	"محلاوي مارت فيل",
	"جمال سلامه الشيراتون",
	"جمال سلامه ميدان الجامع",
	"علوش ماركت",
	"محلاوي الطيران",
}

var defaultCompanies = []string{
	"شركة سوفت روز",
	"شركة فاين",
	"شركة زينة",
	"شركة بابيا فاميليا",
	"شركة وايت",
	"شركة كلاسي",
}

// Seed inserts the settings singleton, default reference lists and a
// bootstrap admin account when the corresponding tables are empty.
// Each step is independent so a partial failure does not block startup.
func Seed(db *gorm.DB, adminPassword string) {
	var count int64

	if err := db.Model(&model.AppSettings{}).Count(&count).Error; err == nil && count == 0 {
		settings := model.DefaultSettings()
		if err := db.Create(&settings).Error; err != nil {
			log.Println("WARNING: Failed to seed settings:", err)
		}
	}

	if err := db.Model(&model.Market{}).Count(&count).Error; err == nil && count == 0 {
		for _, name := range defaultMarkets {
			m := model.Market{Name: name, AddedBy: model.SystemAddedBy, IsDefault: true}
			if err := db.Create(&m).Error; err != nil {
				log.Println("WARNING: Failed to seed market:", err)
			}
		}
	}

	if err := db.Model(&model.Company{}).Count(&count).Error; err == nil && count == 0 {
		for _, name := range defaultCompanies {
			c := model.Company{Name: name, AddedBy: model.SystemAddedBy, IsDefault: true}
			if err := db.Create(&c).Error; err != nil {
				log.Println("WARNING: Failed to seed company:", err)
			}
		}
	}

	if err := db.Model(&model.User{}).Count(&count).Error; err == nil && count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Println("WARNING: Failed to hash bootstrap admin password:", err)
			return
		}
		admin := model.User{
			Username: "admin",
			Password: string(hashed),
			Role:     model.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Println("WARNING: Failed to seed bootstrap admin:", err)
		} else {
			log.Println("Seeded bootstrap admin account (username: admin)")
		}
	}
}
