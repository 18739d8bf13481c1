package models

const (
	VariationSingle   = "single"
	VariationMultiple = "multiple"
)

type Variation struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	ProductID uint     `gorm:"index;not null" json:"product_id"`
	Name      string   `gorm:"type:varchar(255);not null" json:"name"`
	Type      string   `gorm:"type:varchar(10);not null;default:'single'" json:"type"`
	Required  bool     `gorm:"default:false" json:"required"`
	Min       *int     `json:"min"`
	Max       *int     `json:"max"`
	Options   []Option `gorm:"foreignKey:VariationID;constraint:OnDelete:CASCADE" json:"options"`
}

// Option price is a positive delta added on top of the product's unit price.
type Option struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	VariationID uint    `gorm:"index;not null" json:"variation_id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Price       float64 `gorm:"type:decimal(10,2);default:0" json:"price"`
}

// Addon is an independently toggled paid add-on. QuantityAdd of 1
// lets the customer pick a quantity, otherwise it is fixed at 1.
type Addon struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ProductID   uint    `gorm:"index;not null" json:"product_id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Price       float64 `gorm:"type:decimal(10,2);default:0" json:"price"`
	QuantityAdd int     `gorm:"default:0" json:"quantity_add"`
}

// Extra is a paid add-on that may be gated behind a specific
// variation/option selection via VariationID/OptionID.
type Extra struct {
	ID                 uint     `gorm:"primaryKey" json:"id"`
	ProductID          uint     `gorm:"index;not null" json:"product_id"`
	Name               string   `gorm:"type:varchar(255);not null" json:"name"`
	Price              float64  `gorm:"type:decimal(10,2);default:0" json:"price"`
	PriceAfterDiscount *float64 `gorm:"type:decimal(10,2)" json:"price_after_discount,omitempty"`
	Min                *int     `json:"min"`
	Max                *int     `json:"max"`
	VariationID        *uint    `json:"variation_id,omitempty"`
	OptionID           *uint    `json:"option_id,omitempty"`
}

// UnitPrice mirrors Product.UnitPrice: zero discount price counts as absent.
func (e *Extra) UnitPrice() float64 {
	if e.PriceAfterDiscount != nil && *e.PriceAfterDiscount > 0 {
		return *e.PriceAfterDiscount
	}
	return e.Price
}

// Exclude records an ingredient to leave out. No price effect.
type Exclude struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
}
