package services

import (
	"errors"

	"autohub/models"
	"autohub/repositories"

	"gorm.io/gorm"
)

type ProductService interface {
	ListProducts(params models.CatalogListParams) ([]models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	CreateProduct(req models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(id uint, req models.CreateProductRequest) (*models.Product, error)
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListProducts(params models.CatalogListParams) ([]models.Product, error) {
	category := params.Category
	if category == "all" {
		category = ""
	}
	return s.productRepo.GetList(category)
}

func (s *productService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "product not found"}
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(req models.CreateProductRequest) (*models.Product, error) {
	images := req.Images
	if images == nil {
		images = []string{}
	}

	product := &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Brand:       req.Brand,
		Stock:       req.Stock,
		SellerEmail: req.SellerEmail,
		SellerPhone: req.SellerPhone,
		Images:      images,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) UpdateProduct(id uint, req models.CreateProductRequest) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Category = req.Category
	product.Brand = req.Brand
	product.Stock = req.Stock
	product.SellerEmail = req.SellerEmail
	product.SellerPhone = req.SellerPhone
	if req.Images != nil {
		product.Images = req.Images
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	if _, err := s.GetProduct(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}
