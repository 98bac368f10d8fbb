package models

import "gorm.io/gorm"

// Order is a permanent receipt. It is never updated after checkout.
type Order struct {
	gorm.Model
	UserID      uint        `gorm:"not null;index"`
	TotalAmount float64     `gorm:"not null;default:0"`
	Items       []OrderItem `gorm:"foreignKey:OrderID"`
}
