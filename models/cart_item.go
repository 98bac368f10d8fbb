package models

import "time"

// CartItem is unique per (user, product): adding a product already in the
// cart increments the existing line instead of creating a second one.
// Lines are deleted for real (no DeletedAt) so a re-added product does not
// collide with the unique index.
type CartItem struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uint    `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int     `gorm:"not null;default:1"`
	Product   Product `gorm:"foreignKey:ProductID"`
}
