package repositories

import (
	"gin-shop/models"

	"gorm.io/gorm"
)

type IOrderRepository interface {
	FindByUser(userID uint) (*[]models.Order, error)
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

// FindByUser returns the caller's orders newest first, items included.
func (r *OrderRepository) FindByUser(userID uint) (*[]models.Order, error) {
	var orders []models.Order
	result := r.db.Preload("Items").Where("user_id = ?", userID).Order("id DESC").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}
	return &orders, nil
}
