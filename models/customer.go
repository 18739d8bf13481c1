package models

import "time"

// Customer is a storefront account. Guest carts exist without one;
// checkout and favourites require it.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// Favourite marks a product as saved by a customer.
type Favourite struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CustomerID uint `gorm:"index:idx_fav_customer_product,unique;not null" json:"customer_id"`
	ProductID  uint `gorm:"index:idx_fav_customer_product,unique;not null" json:"product_id"`
}
