package services

import (
	"gin-shop/models"
	"gin-shop/repositories"

	"gorm.io/gorm"
)

type IOrderService interface {
	Checkout(userID uint) (*models.Order, error)
	FindByUser(userID uint) (*[]models.Order, error)
}

// OrderService holds the gorm handle directly: checkout is the one operation
// that must read stock, decrement it, write the order and clear the cart
// inside a single transaction, which no single repository spans.
type OrderService struct {
	db         *gorm.DB
	repository repositories.IOrderRepository
}

func NewOrderService(db *gorm.DB, repository repositories.IOrderRepository) IOrderService {
	return &OrderService{db: db, repository: repository}
}

// Checkout converts the user's cart into an order. All-or-nothing: any
// failure rolls back stock decrements, the order rows and the cart deletion
// together.
func (s *OrderService) Checkout(userID uint) (*models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Where("user_id = ?", userID).Order("id").Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		order = models.Order{UserID: userID}
		total := 0.0

		for _, ci := range cartItems {
			var product models.Product
			err := tx.First(&product, "id = ?", ci.ProductID).Error
			if err != nil || product.Stock < ci.Quantity {
				return &InsufficientStockError{ProductID: ci.ProductID}
			}

			// The stock guard repeats inside the UPDATE so two concurrent
			// checkouts cannot both pass the check and over-sell.
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", ci.ProductID, ci.Quantity).
				Update("stock", gorm.Expr("stock - ?", ci.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return &InsufficientStockError{ProductID: ci.ProductID}
			}

			subtotal := float64(ci.Quantity) * product.Price
			total += subtotal
			order.Items = append(order.Items, models.OrderItem{
				ProductID: ci.ProductID,
				Quantity:  ci.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})
		}

		order.TotalAmount = total
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (s *OrderService) FindByUser(userID uint) (*[]models.Order, error) {
	return s.repository.FindByUser(userID)
}
