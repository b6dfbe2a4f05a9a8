package config

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotelops/models"
)

// ConnectDatabase opens the MySQL connection and applies migrations. The
// returned handle is injected into every service; there is no package-level
// connection state.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	SeedDatabase(db)
	return db, nil
}

// Migrate applies the schema in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Room{},
		&models.Booking{},
		&models.Bill{},
		&models.Service{},
		&models.ServiceRequest{},
		&models.StaffMember{},
		&models.SalaryPayment{},
		&models.AnalyticsSnapshot{},
	)
}

// SeedDatabase inserts the six default catalog services if and only if the
// catalog is empty. A restart against a populated database seeds nothing.
func SeedDatabase(db *gorm.DB) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	services := []models.Service{
		{ServiceName: "Room Service", Description: "Daily room cleaning and maintenance", Price: decimal.NewFromFloat(25.00), Category: "Cleaning", IsActive: true},
		{ServiceName: "Laundry Service", Description: "Wash, dry, and fold service", Price: decimal.NewFromFloat(15.00), Category: "Laundry", IsActive: true},
		{ServiceName: "Mini Bar Refill", Description: "Refill of room mini bar items", Price: decimal.NewFromFloat(50.00), Category: "Food", IsActive: true},
		{ServiceName: "Food Delivery", Description: "Delivery of food and snacks to room", Price: decimal.NewFromFloat(10.00), Category: "Food", IsActive: true},
		{ServiceName: "Extra Towels", Description: "Additional towels and linens", Price: decimal.NewFromFloat(5.00), Category: "Cleaning", IsActive: true},
		{ServiceName: "Late Checkout", Description: "Extended stay beyond standard checkout time", Price: decimal.NewFromFloat(30.00), Category: "Other", IsActive: true},
	}
	if err := db.Create(&services).Error; err != nil {
		log.Warn().Err(err).Msg("failed to seed default services")
		return
	}
	log.Info().Int("count", len(services)).Msg("default services seeded")
}
