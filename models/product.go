package models

import "time"

const (
	TaxIncluded = "included"
	TaxExcluded = "excluded"
)

// Taxes carries the product-level tax policy as delivered by the
// catalog API: a flat per-unit tax_val resolved upstream, applied at
// aggregation time only when Setting is "included".
type Taxes struct {
	Setting string `gorm:"column:setting;type:varchar(10);default:'excluded'" json:"setting"`
}

type Product struct {
	ID                 uint        `gorm:"primaryKey" json:"id"`
	CategoryID         uint        `gorm:"index" json:"category_id"`
	Category           Category    `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name               string      `gorm:"type:varchar(255);not null" json:"name"`
	Description        string      `gorm:"type:text" json:"description"`
	ImageLink          string      `gorm:"type:varchar(255)" json:"image_link"`
	Price              float64     `gorm:"type:decimal(10,2);not null" json:"price"`
	PriceAfterDiscount *float64    `gorm:"type:decimal(10,2)" json:"price_after_discount,omitempty"`
	DiscountVal        float64     `gorm:"type:decimal(10,2);default:0" json:"discount_val"`
	TaxVal             float64     `gorm:"type:decimal(10,2);default:0" json:"tax_val"`
	Taxes              Taxes       `gorm:"embedded;embeddedPrefix:taxes_" json:"taxes"`
	Variations         []Variation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variations"`
	Addons             []Addon     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"addons"`
	AllExtras          []Extra     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"allExtras"`
	Excludes           []Exclude   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"excludes"`
	CreatedAt          time.Time   `json:"-"`
	UpdatedAt          time.Time   `json:"-"`
}

// UnitPrice returns the discounted unit price when a real discount
// price is present, otherwise the base price. A zero
// price_after_discount counts as absent, matching the upstream
// contract where the field is omitted or zeroed for undiscounted
// products.
func (p *Product) UnitPrice() float64 {
	if p.PriceAfterDiscount != nil && *p.PriceAfterDiscount > 0 {
		return *p.PriceAfterDiscount
	}
	return p.Price
}

// FindOption looks an option id up across ALL variations of the
// product, not just the variation the selection filed it under. Stale
// or misfiled ids simply return nil.
func (p *Product) FindOption(optionID uint) *Option {
	for vi := range p.Variations {
		for oi := range p.Variations[vi].Options {
			if p.Variations[vi].Options[oi].ID == optionID {
				return &p.Variations[vi].Options[oi]
			}
		}
	}
	return nil
}

func (p *Product) FindAddon(addonID uint) *Addon {
	for i := range p.Addons {
		if p.Addons[i].ID == addonID {
			return &p.Addons[i]
		}
	}
	return nil
}

func (p *Product) FindExtra(extraID uint) *Extra {
	for i := range p.AllExtras {
		if p.AllExtras[i].ID == extraID {
			return &p.AllExtras[i]
		}
	}
	return nil
}
