package database

import (
	"gorm.io/gorm"

	"github.com/food2go/storefront/cart"
	"github.com/food2go/storefront/models"
)

// Migrate creates or updates the storefront schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Variation{},
		&models.Option{},
		&models.Addon{},
		&models.Extra{},
		&models.Exclude{},
		&models.Customer{},
		&models.Favourite{},
		&models.Branch{},
		&models.Zone{},
		&models.Address{},
		&models.PaymentMethod{},
		&models.ScheduleSlot{},
		&models.Order{},
		&cart.CartSnapshot{},
	)
}
