package models

import (
	"time"

	"gorm.io/gorm"
)

// Accessory is a vehicle accessory listing. Accessories carry no review
// status, they are published the moment staff create them.
type Accessory struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	Name          string         `json:"name" gorm:"not null"`
	Price         float64        `json:"price" gorm:"not null"`
	Category      string         `json:"category" gorm:"index"`
	Brand         string         `json:"brand"`
	Compatibility string         `json:"compatibility"`
	Installation  string         `json:"installation"`
	SellerEmail   string         `json:"seller_email"`
	SellerPhone   string         `json:"seller_phone"`
	Images        []string       `json:"images" gorm:"serializer:json"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
