package models

import (
	"time"

	"gorm.io/gorm"
)

type VehicleStatus string

const (
	StatusPending  VehicleStatus = "pending"
	StatusApproved VehicleStatus = "approved"
	StatusRejected VehicleStatus = "rejected"
)

// Valid reports whether the value is one of the three listing states.
func (s VehicleStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type Vehicle struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	Name          string         `json:"name" gorm:"not null"`
	Model         string         `json:"model" gorm:"not null"`
	Year          int            `json:"year" gorm:"not null"`
	Mileage       string         `json:"mileage" gorm:"not null"`
	Color         string         `json:"color" gorm:"not null"`
	GearType      string         `json:"gear_type" gorm:"not null"`
	Type          string         `json:"type" gorm:"not null;index"`
	Details       string         `json:"details" gorm:"type:text"`
	Price         float64        `json:"price" gorm:"not null"`
	SellerEmail   string         `json:"seller_email" gorm:"not null;index"`
	SellerPhone   string         `json:"seller_phone"`
	Images        []string       `json:"images" gorm:"serializer:json"`
	Status        VehicleStatus  `json:"status" gorm:"default:'pending';index"`
	SubmitterRole UserRole       `json:"submitter_role" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
