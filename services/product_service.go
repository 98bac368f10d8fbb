package services

import (
	"gin-shop/dto"
	"gin-shop/models"
	"gin-shop/repositories"
)

type IProductService interface {
	FindAll(query string, skip int, limit int) (*[]models.Product, error)
	FindById(productID uint) (*models.Product, error)
	Create(createProductInput dto.CreateProductInput) (*models.Product, error)
}

type ProductService struct {
	repository repositories.IProductRepository
}

func NewProductService(repository repositories.IProductRepository) IProductService {
	return &ProductService{repository: repository}
}

func (s *ProductService) FindAll(query string, skip int, limit int) (*[]models.Product, error) {
	return s.repository.FindAll(query, skip, limit)
}

func (s *ProductService) FindById(productID uint) (*models.Product, error) {
	product, err := s.repository.FindById(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) Create(createProductInput dto.CreateProductInput) (*models.Product, error) {
	newProduct := models.Product{
		Name:        createProductInput.Name,
		Description: createProductInput.Description,
		Price:       createProductInput.Price,
		Stock:       createProductInput.Stock,
	}
	return s.repository.Create(newProduct)
}
