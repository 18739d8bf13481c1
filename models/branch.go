package models

import "time"

// Branch is a pickup location for take_away orders.
type Branch struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Status    string    `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

// Zone groups delivery addresses and carries the flat delivery price
// added on top of the cart total for delivery orders.
type Zone struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"type:varchar(100);not null" json:"name"`
	Price float64 `gorm:"type:decimal(10,2);default:0" json:"price"`
}

// Address is a customer delivery address.
type Address struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"index;not null" json:"customer_id"`
	ZoneID     uint      `gorm:"index" json:"zone_id"`
	Zone       Zone      `gorm:"foreignKey:ZoneID" json:"zone"`
	Street     string    `gorm:"type:varchar(255)" json:"street"`
	Building   string    `gorm:"type:varchar(100)" json:"building"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `gorm:"not null" json:"-"`
	UpdatedAt  time.Time `gorm:"not null" json:"-"`
}

// PaymentMethod is presentation data only; actual payment processing
// happens on the platform side.
type PaymentMethod struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	LogoLink string `gorm:"type:varchar(255)" json:"logo_link"`
}

// ScheduleSlot is a delivery/pickup time window offered at checkout.
type ScheduleSlot struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}
