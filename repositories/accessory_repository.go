package repositories

import (
	"autohub/models"

	"gorm.io/gorm"
)

type AccessoryRepository interface {
	Create(accessory *models.Accessory) error
	GetByID(id uint) (*models.Accessory, error)
	GetList(category string) ([]models.Accessory, error)
	Update(accessory *models.Accessory) error
	Delete(id uint) error
}

type accessoryRepository struct {
	db *gorm.DB
}

func NewAccessoryRepository(db *gorm.DB) AccessoryRepository {
	return &accessoryRepository{db: db}
}

func (r *accessoryRepository) Create(accessory *models.Accessory) error {
	return r.db.Create(accessory).Error
}

func (r *accessoryRepository) GetByID(id uint) (*models.Accessory, error) {
	var accessory models.Accessory
	err := r.db.First(&accessory, id).Error
	return &accessory, err
}

func (r *accessoryRepository) GetList(category string) ([]models.Accessory, error) {
	var accessories []models.Accessory

	query := r.db.Model(&models.Accessory{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	err := query.Order("created_at desc").Find(&accessories).Error
	return accessories, err
}

func (r *accessoryRepository) Update(accessory *models.Accessory) error {
	return r.db.Save(accessory).Error
}

func (r *accessoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Accessory{}, id).Error
}
