package models

import (
	"time"

	"github.com/google/uuid"
)

// Vendor statuses
const (
	VendorStatusActive   = "active"
	VendorStatusInactive = "inactive"
)

// Vendor represents a street vendor business profile
type Vendor struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"phone" db:"phone"`
	Address     string    `json:"address" db:"address"`
	Description string    `json:"description,omitempty" db:"description"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// VendorRequest is the payload for creating or updating a vendor
type VendorRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}
