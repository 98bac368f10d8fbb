package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"gin-shop/constants"
	"gin-shop/dto"
	"gin-shop/metrics"
	"gin-shop/services"

	"github.com/gin-gonic/gin"
)

type IOrderController interface {
	Checkout(ctx *gin.Context)
	FindMine(ctx *gin.Context)
}

type OrderController struct {
	service services.IOrderService
}

func NewOrderController(service services.IOrderService) IOrderController {
	return &OrderController{service: service}
}

func (c *OrderController) Checkout(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	order, err := c.service.Checkout(user.ID)
	if err != nil {
		var stockErr *services.InsufficientStockError
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			metrics.CheckoutsTotal.WithLabelValues("empty_cart").Inc()
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrCartEmpty})
		case errors.As(err, &stockErr):
			metrics.CheckoutsTotal.WithLabelValues("insufficient_stock").Inc()
			ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Not enough stock for product %d", stockErr.ProductID)})
		default:
			metrics.CheckoutsTotal.WithLabelValues("error").Inc()
			log.Printf("Checkout error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	metrics.CheckoutsTotal.WithLabelValues("ok").Inc()
	ctx.JSON(http.StatusCreated, gin.H{"data": dto.NewOrderResponse(order)})
}

func (c *OrderController) FindMine(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	orders, err := c.service.FindByUser(user.ID)
	if err != nil {
		log.Printf("List orders error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	responses := make([]dto.OrderResponse, 0, len(*orders))
	for i := range *orders {
		responses = append(responses, dto.NewOrderResponse(&(*orders)[i]))
	}
	ctx.JSON(http.StatusOK, gin.H{"data": responses})
}
