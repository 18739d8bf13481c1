package database

import (
	"gorm.io/gorm"

	"github.com/food2go/storefront/models"
	"github.com/food2go/storefront/utils"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func uintPtr(v uint) *uint { return &v }

// Seed loads a small demo catalog, branches and payment methods on an
// empty database. Running it against a populated database is a no-op.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	burgers := models.Category{Name: "Burgers", ImageLink: "/img/cat-burgers.jpg"}
	drinks := models.Category{Name: "Drinks", ImageLink: "/img/cat-drinks.jpg"}
	if err := db.Create(&burgers).Error; err != nil {
		return err
	}
	if err := db.Create(&drinks).Error; err != nil {
		return err
	}

	classic := models.Product{
		CategoryID:         burgers.ID,
		Name:               "Classic Burger",
		Description:        "Beef patty, lettuce, tomato, house sauce",
		Price:              120,
		PriceAfterDiscount: floatPtr(100),
		TaxVal:             5,
		Taxes:              models.Taxes{Setting: models.TaxIncluded},
		Variations: []models.Variation{
			{
				Name:     "Size",
				Type:     models.VariationSingle,
				Required: true,
				Options: []models.Option{
					{Name: "Single patty", Price: 0},
					{Name: "Double patty", Price: 35},
				},
			},
			{
				Name: "Toppings",
				Type: models.VariationMultiple,
				Min:  intPtr(0),
				Max:  intPtr(3),
				Options: []models.Option{
					{Name: "Cheddar", Price: 10},
					{Name: "Bacon", Price: 15},
					{Name: "Jalapenos", Price: 5},
				},
			},
		},
		Addons: []models.Addon{
			{Name: "Fries", Price: 25, QuantityAdd: 1},
			{Name: "Coleslaw", Price: 15},
		},
		Excludes: []models.Exclude{
			{Name: "Onion"},
			{Name: "Pickles"},
		},
	}
	if err := db.Create(&classic).Error; err != nil {
		return err
	}

	// Extra sauce is only offered on the double patty option; extra
	// patty melt requires any size selection.
	doubleOption := classic.Variations[0].Options[1]
	extras := []models.Extra{
		{
			ProductID:   classic.ID,
			Name:        "Extra sauce",
			Price:       8,
			VariationID: uintPtr(classic.Variations[0].ID),
			OptionID:    uintPtr(doubleOption.ID),
		},
		{
			ProductID:          classic.ID,
			Name:               "Patty melt",
			Price:              20,
			PriceAfterDiscount: floatPtr(15),
			Max:                intPtr(2),
			VariationID:        uintPtr(classic.Variations[0].ID),
		},
	}
	if err := db.Create(&extras).Error; err != nil {
		return err
	}

	lemonade := models.Product{
		CategoryID:  drinks.ID,
		Name:        "Fresh Lemonade",
		Description: "Squeezed to order",
		Price:       30,
		TaxVal:      2,
		Taxes:       models.Taxes{Setting: models.TaxExcluded},
	}
	if err := db.Create(&lemonade).Error; err != nil {
		return err
	}

	branches := []models.Branch{
		{Name: "Downtown", Address: "12 Market St", Phone: "+20100000001"},
		{Name: "Riverside", Address: "3 Corniche Rd", Phone: "+20100000002"},
	}
	if err := db.Create(&branches).Error; err != nil {
		return err
	}

	zones := []models.Zone{
		{Name: "City center", Price: 20},
		{Name: "Suburbs", Price: 35},
	}
	if err := db.Create(&zones).Error; err != nil {
		return err
	}

	payments := []models.PaymentMethod{
		{Name: "Cash on delivery"},
		{Name: "Card on delivery"},
	}
	if err := db.Create(&payments).Error; err != nil {
		return err
	}

	slots := []models.ScheduleSlot{
		{Name: "ASAP"},
		{Name: "12:00 - 13:00"},
		{Name: "19:00 - 20:00"},
	}
	if err := db.Create(&slots).Error; err != nil {
		return err
	}

	utils.InfoLogger.Println("Seeded demo catalog")
	return nil
}
