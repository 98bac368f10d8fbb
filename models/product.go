package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Name        string  `gorm:"not null;index"`
	Description string  `gorm:"type:text;not null;default:''"`
	Price       float64 `gorm:"not null"`
	Stock       int     `gorm:"not null;default:0"`
}
