package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"gin-shop/constants"
	"gin-shop/dto"
	"gin-shop/models"
	"gin-shop/services"

	"github.com/gin-gonic/gin"
)

type ICartController interface {
	Index(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
}

func NewCartController(service services.ICartService) ICartController {
	return &CartController{service: service}
}

func currentUser(ctx *gin.Context) (*models.User, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return nil, false
	}
	return user.(*models.User), true
}

func (c *CartController) Index(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	items, err := c.service.Get(user.ID)
	if err != nil {
		log.Printf("Get cart error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	responses := make([]dto.CartItemResponse, 0, len(*items))
	for i := range *items {
		responses = append(responses, dto.NewCartItemResponse(&(*items)[i]))
	}
	ctx.JSON(http.StatusOK, gin.H{"data": responses})
}

func (c *CartController) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.AddCartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	item, err := c.service.Add(user.ID, input.ProductID, input.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrProductNotFound})
			return
		}
		log.Printf("Add cart item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": dto.NewCartItemResponse(item)})
}

func (c *CartController) Update(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.UpdateCartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	item, deleted, err := c.service.Update(user.ID, uint(itemID), *input.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrCartItemNotFound})
			return
		}
		log.Printf("Update cart item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	if deleted {
		ctx.JSON(http.StatusOK, gin.H{"deleted": true})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dto.NewCartItemResponse(item)})
}

func (c *CartController) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	if err := c.service.Remove(user.ID, uint(itemID)); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrCartItemNotFound})
			return
		}
		log.Printf("Delete cart item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
