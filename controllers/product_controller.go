package controllers

import (
	"log"
	"net/http"

	"gin-shop/constants"
	"gin-shop/dto"
	"gin-shop/services"

	"github.com/gin-gonic/gin"
)

type IProductController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
}

type ProductController struct {
	service services.IProductService
}

func NewProductController(service services.IProductService) IProductController {
	return &ProductController{service: service}
}

func (c *ProductController) FindAll(ctx *gin.Context) {
	var query dto.ListProductsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	products, err := c.service.FindAll(query.Q, query.Skip, query.Limit)
	if err != nil {
		log.Printf("List products error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	responses := make([]dto.ProductResponse, 0, len(*products))
	for i := range *products {
		responses = append(responses, dto.NewProductResponse(&(*products)[i]))
	}
	ctx.JSON(http.StatusOK, gin.H{"data": responses})
}

func (c *ProductController) Create(ctx *gin.Context) {
	var input dto.CreateProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newProduct, err := c.service.Create(input)
	if err != nil {
		log.Printf("Create product error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": dto.NewProductResponse(newProduct)})
}
