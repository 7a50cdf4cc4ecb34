package models

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&StaffSession{},
		&Category{},
		&ShippingClass{},
		&Product{},
		&ProductFilterValue{},
		&Order{},
		&OrderItem{},
		&OrderStatusHistory{},
		&Notification{},
		&ActivityLog{},
		&HeroSection{},
		&Customization{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// SeedShippingClasses inserts the default classes that are not present yet.
func SeedShippingClasses(db *gorm.DB) error {
	for _, sc := range DefaultShippingClasses() {
		sc := sc
		if err := db.Where("key = ?", sc.Key).FirstOrCreate(&sc).Error; err != nil {
			return fmt.Errorf("seed shipping class %s: %w", sc.Key, err)
		}
	}
	return nil
}
