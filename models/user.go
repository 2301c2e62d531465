package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleStaff UserRole = "staff"
	RoleAdmin UserRole = "admin"
)

// Elevated reports whether the role may review listings and see
// unapproved inventory.
func (r UserRole) Elevated() bool {
	return r == RoleStaff || r == RoleAdmin
}

// Normalize maps unknown role values to the least-privileged role.
func (r UserRole) Normalize() UserRole {
	switch r {
	case RoleUser, RoleStaff, RoleAdmin:
		return r
	default:
		return RoleUser
	}
}

type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Phone     string         `json:"phone"`
	Role      UserRole       `json:"role" gorm:"default:'user'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
