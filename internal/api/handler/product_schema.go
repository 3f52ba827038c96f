package handler

import "time"

// errorResponse is the error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Message string `json:"message"`
}

// successResponse is returned by endpoints that have no record to echo.
type successResponse struct {
	Success bool `json:"success"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type identityResponse struct {
	Email string `json:"email"`
}

// --- Products ---

// createProductRequest uses pointers for the numeric fields so a missing
// field is distinguishable from an explicit zero.
type createProductRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Price    *float64 `json:"price"    validate:"required,gte=0"`
	Stock    *int     `json:"stock"    validate:"required,gte=0"`
	Category string   `json:"category" validate:"required"`
	Status   string   `json:"status"   validate:"omitempty,oneof=active inactive archived"`
}

// updateProductRequest is a partial update: absent fields stay untouched.
type updateProductRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"    validate:"omitempty,gte=0"`
	Stock    *int     `json:"stock"    validate:"omitempty,gte=0"`
	Category *string  `json:"category"`
	Status   *string  `json:"status"   validate:"omitempty,oneof=active inactive archived"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive archived"`
}

// productResponse is the public product representation. Timestamps are
// camelCase per the API contract.
type productResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
