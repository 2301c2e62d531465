package repositories

import (
	"autohub/models"

	"gorm.io/gorm"
)

// VehicleFilter is the find surface the rules layer queries through. Empty
// fields mean "no constraint"; the repository never applies role logic.
type VehicleFilter struct {
	Status      models.VehicleStatus
	SellerEmail string
	Category    string
}

type VehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	GetByID(id uint) (*models.Vehicle, error)
	GetList(filter VehicleFilter) ([]models.Vehicle, error)
	Update(vehicle *models.Vehicle) error
	UpdateStatus(id uint, status models.VehicleStatus) error
	Delete(id uint) error
}

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

func (r *vehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, id).Error
	return &vehicle, err
}

func (r *vehicleRepository) GetList(filter VehicleFilter) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle

	query := r.db.Model(&models.Vehicle{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SellerEmail != "" {
		query = query.Where("seller_email = ?", filter.SellerEmail)
	}
	if filter.Category != "" {
		query = query.Where("type = ?", filter.Category)
	}

	err := query.Order("created_at desc").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) Update(vehicle *models.Vehicle) error {
	return r.db.Save(vehicle).Error
}

// UpdateStatus writes the single status column. Concurrent writers race at
// last-write-wins, matching the store's single-document guarantee.
func (r *vehicleRepository) UpdateStatus(id uint, status models.VehicleStatus) error {
	return r.db.Model(&models.Vehicle{}).Where("id = ?", id).Update("status", status).Error
}

func (r *vehicleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Vehicle{}, id).Error
}
