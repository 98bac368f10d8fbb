package repositories

import (
	"errors"
	"strings"

	"gin-shop/models"

	"gorm.io/gorm"
)

type IProductRepository interface {
	FindAll(query string, skip int, limit int) (*[]models.Product, error)
	FindById(productID uint) (*models.Product, error)
	Create(newProduct models.Product) (*models.Product, error)
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

// FindAll pages through the catalog in primary-key order. A non-empty query
// is matched case-insensitively against the product name.
func (r *ProductRepository) FindAll(query string, skip int, limit int) (*[]models.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}

	tx := r.db.Model(&models.Product{})
	if q := strings.TrimSpace(query); q != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var products []models.Product
	result := tx.Order("id").Offset(skip).Limit(limit).Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return &products, nil
}

func (r *ProductRepository) FindById(productID uint) (*models.Product, error) {
	var product models.Product
	result := r.db.First(&product, "id = ?", productID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &product, nil
}

func (r *ProductRepository) Create(newProduct models.Product) (*models.Product, error) {
	result := r.db.Create(&newProduct)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newProduct, nil
}
