package services

import (
	"errors"

	"autohub/models"
	"autohub/repositories"

	"gopkg.in/go-playground/validator.v9"
	"gorm.io/gorm"
)

var validate = validator.New()

// Identity is the requester context resolved from a verified token. Anonymous
// requests carry the zero value, which behaves as an ordinary user.
type Identity struct {
	UserID   uint
	Username string
	Email    string
	Role     models.UserRole
}

type VehicleService interface {
	ListVehicles(params models.VehicleListParams, requester Identity) ([]models.Vehicle, error)
	GetVehicle(id uint, requester Identity) (*models.Vehicle, error)
	CreateVehicle(req models.CreateVehicleRequest, requester Identity) (*models.Vehicle, error)
	UpdateVehicle(id uint, req models.UpdateVehicleRequest) (*models.Vehicle, error)
	ChangeStatus(id uint, status models.VehicleStatus, requester Identity) (*models.Vehicle, error)
	DeleteVehicle(id uint) error
}

type vehicleService struct {
	vehicleRepo repositories.VehicleRepository
}

func NewVehicleService(vehicleRepo repositories.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

// ListVehicles computes the eligible set for a catalog read.
//
// Ordinary users see approved listings only. A seller filter returns that
// seller's listings regardless of status, so sellers can follow their own
// pending and rejected submissions; for anyone else the seller filter is
// narrowed to that seller's approved listings unless the requester is staff
// or admin. Staff and admins see everything and may narrow by an explicit
// status.
func (s *vehicleService) ListVehicles(params models.VehicleListParams, requester Identity) ([]models.Vehicle, error) {
	role := requester.Role.Normalize()

	var filter repositories.VehicleFilter
	if params.SellerEmail != "" {
		filter.SellerEmail = params.SellerEmail
		if !role.Elevated() && params.SellerEmail != requester.Email {
			filter.Status = models.StatusApproved
		}
	} else if role.Elevated() {
		if status := models.VehicleStatus(params.Status); status.Valid() {
			filter.Status = status
		}
	} else {
		filter.Status = models.StatusApproved
	}

	if params.Category != "" && params.Category != "all" {
		filter.Category = params.Category
	}

	return s.vehicleRepo.GetList(filter)
}

func (s *vehicleService) GetVehicle(id uint, requester Identity) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "vehicle not found"}
		}
		return nil, err
	}

	role := requester.Role.Normalize()
	if vehicle.Status != models.StatusApproved && !role.Elevated() && vehicle.SellerEmail != requester.Email {
		return nil, models.ErrorNotFound{Message: "vehicle not found"}
	}

	return vehicle, nil
}

// CreateVehicle persists a submission. Staff and admin submissions publish
// immediately; ordinary submissions wait for review. Required fields are
// checked before any persistence attempt; there are no partial writes.
func (s *vehicleService) CreateVehicle(req models.CreateVehicleRequest, requester Identity) (*models.Vehicle, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	role := requester.Role.Normalize()

	status := models.StatusPending
	if role.Elevated() {
		status = models.StatusApproved
	}

	// Two intake paths name the phone field differently
	phone := req.SellerPhone
	if phone == "" {
		phone = req.Phone
	}

	images := []string(req.Images)
	if images == nil {
		images = []string{}
	}

	vehicle := &models.Vehicle{
		Name:          req.Name,
		Model:         req.Model,
		Year:          req.Year,
		Mileage:       req.Mileage,
		Color:         req.Color,
		GearType:      req.GearType,
		Type:          req.Type,
		Details:       req.Details,
		Price:         req.Price,
		SellerEmail:   req.SellerEmail,
		SellerPhone:   phone,
		Images:        images,
		Status:        status,
		SubmitterRole: role,
	}

	if err := s.vehicleRepo.Create(vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (s *vehicleService) UpdateVehicle(id uint, req models.UpdateVehicleRequest) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "vehicle not found"}
		}
		return nil, err
	}

	if req.Name != nil {
		vehicle.Name = *req.Name
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.GearType != nil {
		vehicle.GearType = *req.GearType
	}
	if req.Type != nil {
		vehicle.Type = *req.Type
	}
	if req.Details != nil {
		vehicle.Details = *req.Details
	}
	if req.Price != nil {
		vehicle.Price = *req.Price
	}
	if req.SellerEmail != nil {
		vehicle.SellerEmail = *req.SellerEmail
	}
	if req.SellerPhone != nil {
		vehicle.SellerPhone = *req.SellerPhone
	}
	if req.Images != nil {
		vehicle.Images = *req.Images
	}

	if err := s.vehicleRepo.Update(vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// ChangeStatus assigns a listing status. Any of the three states may move to
// any other (review tooling re-opens and re-rejects decided listings), so the
// only guards are the target value and the requester's role.
func (s *vehicleService) ChangeStatus(id uint, status models.VehicleStatus, requester Identity) (*models.Vehicle, error) {
	if !status.Valid() {
		return nil, models.ErrorValidation{Message: "unknown status: " + string(status)}
	}

	if !requester.Role.Normalize().Elevated() {
		return nil, models.ErrorForbidden{Message: "only staff may change listing status"}
	}

	vehicle, err := s.vehicleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "vehicle not found"}
		}
		return nil, err
	}

	if err := s.vehicleRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	vehicle.Status = status
	return vehicle, nil
}

func (s *vehicleService) DeleteVehicle(id uint) error {
	if _, err := s.vehicleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "vehicle not found"}
		}
		return err
	}
	return s.vehicleRepo.Delete(id)
}
