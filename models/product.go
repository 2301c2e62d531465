package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a general ("life") product listing, published immediately.
type Product struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"not null"`
	Price       float64        `json:"price" gorm:"not null"`
	Category    string         `json:"category" gorm:"index"`
	Brand       string         `json:"brand"`
	Stock       int            `json:"stock" gorm:"default:0"`
	SellerEmail string         `json:"seller_email"`
	SellerPhone string         `json:"seller_phone"`
	Images      []string       `json:"images" gorm:"serializer:json"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
