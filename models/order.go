package models

import (
	"encoding/json"
	"time"
)

const (
	OrderPending        = "pending"
	OrderProcessing     = "processing"
	OrderOutForDelivery = "out_for_delivery"
	OrderDone           = "done"
	OrderCanceled       = "canceled"
)

const (
	OrderTypeDelivery = "delivery"
	OrderTypeTakeAway = "take_away"
)

type Order struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	CustomerID      uint           `gorm:"index;not null" json:"customer_id"`
	Customer        Customer       `gorm:"foreignKey:CustomerID" json:"customer"`
	Status          string         `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	OrderType       string         `gorm:"type:varchar(20);not null" json:"order_type"`
	AddressID       *uint          `gorm:"index" json:"address_id,omitempty"`
	BranchID        *uint          `gorm:"index" json:"branch_id,omitempty"`
	PaymentMethodID uint           `json:"payment_method_id"`
	ScheduleSlotID  *uint          `json:"sechedule_slot_id,omitempty"`
	Notes           string         `gorm:"type:text" json:"notes"`
	Amount          float64        `gorm:"type:decimal(10,2);not null;default:0" json:"amount"`
	TotalTax        float64        `gorm:"type:decimal(10,2);default:0" json:"total_tax"`
	TotalDiscount   float64        `gorm:"type:decimal(10,2);default:0" json:"total_discount"`
	DeliveryPrice   float64        `gorm:"type:decimal(10,2);default:0" json:"delivery_price"`
	Source          string         `gorm:"type:varchar(20);default:'web'" json:"source"`
	ConfirmOrder    int            `gorm:"default:0" json:"confirm_order"`
	ProductsJSON    string         `gorm:"column:products;type:text" json:"-"`
	CreatedAt       time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null" json:"updated_at"`
}

// SetProducts serializes the per-line order payload into the products
// column. The payload shape belongs to the platform order contract and
// is stored verbatim.
func (o *Order) SetProducts(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	o.ProductsJSON = string(data)
	return nil
}

// GetProducts decodes the stored products payload into dest.
func (o *Order) GetProducts(dest interface{}) error {
	if o.ProductsJSON == "" {
		return nil
	}
	return json.Unmarshal([]byte(o.ProductsJSON), dest)
}
