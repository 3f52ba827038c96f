package domain

import (
	"errors"
	"time"
)

// ProductStatus is the lifecycle state of a catalog product.
type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusInactive ProductStatus = "inactive"
	StatusArchived ProductStatus = "archived"
)

// IsValid reports whether s is one of the known statuses.
func (s ProductStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusArchived:
		return true
	}
	return false
}

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidStatus   = errors.New("invalid product status")
)

// Product is a catalog entry. The ID is assigned by the store on insert.
// JSON field names follow the public API contract (camelCase timestamps).
type Product struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	Name      string        `json:"name" bson:"name"`
	Price     float64       `json:"price" bson:"price"`
	Stock     int           `json:"stock" bson:"stock"`
	Category  string        `json:"category" bson:"category"`
	Status    ProductStatus `json:"status" bson:"status"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}
