package dto

import "gin-shop/models"

type AddCartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gte=1"`
}

type UpdateCartItemInput struct {
	// Zero and negative values delete the line, so no gte=1 here.
	Quantity *int `json:"quantity" binding:"required"`
}

type CartItemResponse struct {
	ID       uint            `json:"id"`
	Quantity int             `json:"quantity"`
	Product  ProductResponse `json:"product"`
}

func NewCartItemResponse(ci *models.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:       ci.ID,
		Quantity: ci.Quantity,
		Product:  NewProductResponse(&ci.Product),
	}
}
