package models

import "encoding/json"

// VehicleImages decodes an image path list tolerantly. Submission intake must
// never reject a listing over a malformed image field, so anything that is
// not an array of strings becomes the empty sequence.
type VehicleImages []string

func (v *VehicleImages) UnmarshalJSON(data []byte) error {
	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		*v = VehicleImages{}
		return nil
	}
	if paths == nil {
		paths = []string{}
	}
	*v = VehicleImages(paths)
	return nil
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type CreateVehicleRequest struct {
	Name        string        `json:"name" binding:"required,min=1,max=255" validate:"required"`
	Model       string        `json:"model" binding:"required" validate:"required"`
	Year        int           `json:"year" binding:"required" validate:"required"`
	Mileage     string        `json:"mileage" binding:"required" validate:"required"`
	Color       string        `json:"color" binding:"required" validate:"required"`
	GearType    string        `json:"gear_type" binding:"required" validate:"required"`
	Type        string        `json:"type" binding:"required" validate:"required"`
	Details     string        `json:"details"`
	Price       float64       `json:"price" binding:"required" validate:"required"`
	SellerEmail string        `json:"seller_email" binding:"required,email" validate:"required,email"`
	SellerPhone string        `json:"seller_phone"`
	Phone       string        `json:"phone"`
	Images      VehicleImages `json:"images"`
}

// UpdateVehicleRequest carries a partial edit; nil fields are left untouched.
type UpdateVehicleRequest struct {
	Name        *string   `json:"name"`
	Model       *string   `json:"model"`
	Year        *int      `json:"year"`
	Mileage     *string   `json:"mileage"`
	Color       *string   `json:"color"`
	GearType    *string   `json:"gear_type"`
	Type        *string   `json:"type"`
	Details     *string   `json:"details"`
	Price       *float64  `json:"price"`
	SellerEmail *string   `json:"seller_email"`
	SellerPhone *string   `json:"seller_phone"`
	Images      *[]string `json:"images"`
}

type UpdateVehicleStatusRequest struct {
	Status VehicleStatus `json:"status" binding:"required"`
}

type VehicleListParams struct {
	Category    string `form:"category"`
	Status      string `form:"status"`
	SellerEmail string `form:"seller_email"`
}

type CreateAccessoryRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=255"`
	Price         float64  `json:"price" binding:"required"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Compatibility string   `json:"compatibility"`
	Installation  string   `json:"installation"`
	SellerEmail   string   `json:"seller_email" binding:"omitempty,email"`
	SellerPhone   string   `json:"seller_phone"`
	Images        []string `json:"images"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	Price       float64  `json:"price" binding:"required"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Stock       int      `json:"stock"`
	SellerEmail string   `json:"seller_email" binding:"omitempty,email"`
	SellerPhone string   `json:"seller_phone"`
	Images      []string `json:"images"`
}

type CatalogListParams struct {
	Category string `form:"category"`
}

type UpdateUserRoleRequest struct {
	Role UserRole `json:"role" binding:"required"`
}
