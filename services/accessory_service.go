package services

import (
	"errors"

	"autohub/models"
	"autohub/repositories"

	"gorm.io/gorm"
)

type AccessoryService interface {
	ListAccessories(params models.CatalogListParams) ([]models.Accessory, error)
	GetAccessory(id uint) (*models.Accessory, error)
	CreateAccessory(req models.CreateAccessoryRequest) (*models.Accessory, error)
	UpdateAccessory(id uint, req models.CreateAccessoryRequest) (*models.Accessory, error)
	DeleteAccessory(id uint) error
}

type accessoryService struct {
	accessoryRepo repositories.AccessoryRepository
}

func NewAccessoryService(accessoryRepo repositories.AccessoryRepository) AccessoryService {
	return &accessoryService{accessoryRepo: accessoryRepo}
}

func (s *accessoryService) ListAccessories(params models.CatalogListParams) ([]models.Accessory, error) {
	category := params.Category
	if category == "all" {
		category = ""
	}
	return s.accessoryRepo.GetList(category)
}

func (s *accessoryService) GetAccessory(id uint) (*models.Accessory, error) {
	accessory, err := s.accessoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "accessory not found"}
		}
		return nil, err
	}
	return accessory, nil
}

// CreateAccessory publishes immediately; accessories have no review workflow.
func (s *accessoryService) CreateAccessory(req models.CreateAccessoryRequest) (*models.Accessory, error) {
	images := req.Images
	if images == nil {
		images = []string{}
	}

	accessory := &models.Accessory{
		Name:          req.Name,
		Price:         req.Price,
		Category:      req.Category,
		Brand:         req.Brand,
		Compatibility: req.Compatibility,
		Installation:  req.Installation,
		SellerEmail:   req.SellerEmail,
		SellerPhone:   req.SellerPhone,
		Images:        images,
	}

	if err := s.accessoryRepo.Create(accessory); err != nil {
		return nil, err
	}

	return accessory, nil
}

func (s *accessoryService) UpdateAccessory(id uint, req models.CreateAccessoryRequest) (*models.Accessory, error) {
	accessory, err := s.GetAccessory(id)
	if err != nil {
		return nil, err
	}

	accessory.Name = req.Name
	accessory.Price = req.Price
	accessory.Category = req.Category
	accessory.Brand = req.Brand
	accessory.Compatibility = req.Compatibility
	accessory.Installation = req.Installation
	accessory.SellerEmail = req.SellerEmail
	accessory.SellerPhone = req.SellerPhone
	if req.Images != nil {
		accessory.Images = req.Images
	}

	if err := s.accessoryRepo.Update(accessory); err != nil {
		return nil, err
	}

	return accessory, nil
}

func (s *accessoryService) DeleteAccessory(id uint) error {
	if _, err := s.GetAccessory(id); err != nil {
		return err
	}
	return s.accessoryRepo.Delete(id)
}
