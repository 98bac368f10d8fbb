package models

import "gorm.io/gorm"

// OrderItem records UnitPrice as a snapshot of the product price at checkout
// time, so later price changes never rewrite historical orders.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index"`
	ProductID uint    `gorm:"not null;index"`
	Quantity  int     `gorm:"not null;default:1"`
	UnitPrice float64 `gorm:"not null;default:0"`
	Subtotal  float64 `gorm:"not null;default:0"`
}
