package services

import (
	"errors"

	"gin-shop/models"
	"gin-shop/repositories"

	"gorm.io/gorm"
)

type ICartService interface {
	Get(userID uint) (*[]models.CartItem, error)
	Add(userID uint, productID uint, quantity int) (*models.CartItem, error)
	Update(userID uint, itemID uint, quantity int) (*models.CartItem, bool, error)
	Remove(userID uint, itemID uint) error
}

type CartService struct {
	repository        repositories.ICartRepository
	productRepository repositories.IProductRepository
}

func NewCartService(repository repositories.ICartRepository, productRepository repositories.IProductRepository) ICartService {
	return &CartService{
		repository:        repository,
		productRepository: productRepository,
	}
}

func (s *CartService) Get(userID uint) (*[]models.CartItem, error) {
	return s.repository.FindByUser(userID)
}

// Add merges into an existing line for the same product instead of creating a
// second one. Stock is deliberately not checked here; the cart accepts any
// quantity and checkout is where stock gets validated.
func (s *CartService) Add(userID uint, productID uint, quantity int) (*models.CartItem, error) {
	product, err := s.productRepository.FindById(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.repository.FindByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.repository.UpdateQuantity(existing.ID, userID, existing.Quantity+quantity)
	}

	created, err := s.repository.Create(models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, err
	}
	// Refetch so the response carries the embedded product.
	return s.repository.FindById(created.ID, userID)
}

// Update sets the quantity of an owned line. A quantity of zero or less
// deletes the line instead; the second return value reports that as a
// distinct outcome rather than an error.
func (s *CartService) Update(userID uint, itemID uint, quantity int) (*models.CartItem, bool, error) {
	if quantity <= 0 {
		if err := s.Remove(userID, itemID); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	updated, err := s.repository.UpdateQuantity(itemID, userID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrCartItemNotFound
		}
		return nil, false, err
	}
	return updated, false, nil
}

// Remove is not idempotent: deleting a line that is absent, or that belongs
// to another user, reports ErrCartItemNotFound either way.
func (s *CartService) Remove(userID uint, itemID uint) error {
	err := s.repository.Delete(itemID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCartItemNotFound
	}
	return err
}
