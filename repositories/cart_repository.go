package repositories

import (
	"errors"

	"gin-shop/models"

	"gorm.io/gorm"
)

type ICartRepository interface {
	FindByUser(userID uint) (*[]models.CartItem, error)
	FindByUserAndProduct(userID uint, productID uint) (*models.CartItem, error)
	FindById(itemID uint, userID uint) (*models.CartItem, error)
	Create(newItem models.CartItem) (*models.CartItem, error)
	UpdateQuantity(itemID uint, userID uint, quantity int) (*models.CartItem, error)
	Delete(itemID uint, userID uint) error
}

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) FindByUser(userID uint) (*[]models.CartItem, error) {
	var items []models.CartItem
	result := r.db.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *CartRepository) FindByUserAndProduct(userID uint, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	result := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &item, nil
}

// FindById filters by owner as well, so a line belonging to another user is
// indistinguishable from a missing one.
func (r *CartRepository) FindById(itemID uint, userID uint) (*models.CartItem, error) {
	var item models.CartItem
	result := r.db.Preload("Product").First(&item, "id = ? AND user_id = ?", itemID, userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *CartRepository) Create(newItem models.CartItem) (*models.CartItem, error) {
	result := r.db.Create(&newItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newItem, nil
}

func (r *CartRepository) UpdateQuantity(itemID uint, userID uint, quantity int) (*models.CartItem, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var updatedItem models.CartItem
	if err := r.db.Preload("Product").First(&updatedItem, "id = ?", itemID).Error; err != nil {
		return nil, err
	}

	return &updatedItem, nil
}

func (r *CartRepository) Delete(itemID uint, userID uint) error {
	result := r.db.Delete(&models.CartItem{}, "id = ? AND user_id = ?", itemID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
