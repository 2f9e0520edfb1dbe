// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import "github.com/guttosm/laundry-service/internal/domain/model"

// QuoteRequest represents the JSON request body for the quote endpoint.
//
// Items maps item type keys to quantities; missing keys mean zero. The
// delivery location is optional and matched case-insensitively against the
// fee table, unknown locations use the default fee.
//
// @Description Request for a minimum-cost laundering quote
// @Example {"items": {"camisa": 12, "lencol": 3}, "delivery_location": "lisboa"}
type QuoteRequest struct {
	// Items maps item type names to ordered quantities.
	Items map[string]int `json:"items" binding:"required" swaggertype:"object,integer"`
	// DeliveryLocation selects the delivery fee; empty means the default fee.
	DeliveryLocation string `json:"delivery_location" example:"lisboa"`
} // @name QuoteRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrMissingItems is returned when the items field is absent or null.
var ErrMissingItems = &ValidationError{
	Field:   "items",
	Message: "must be an object of item quantities",
}

// Validate performs custom validation on the request. Item keys and
// quantities are validated downstream against the active catalog.
func (r *QuoteRequest) Validate() error {
	if r.Items == nil {
		return ErrMissingItems
	}
	return nil
}

// UpdateCatalogRequest represents the JSON request body for replacing the
// active catalog.
type UpdateCatalogRequest struct {
	// Catalog is the full replacement price list.
	Catalog model.Catalog `json:"catalog" binding:"required"`
	// UpdatedBy identifies who submitted the new catalog.
	UpdatedBy string `json:"updated_by,omitempty"`
} // @name UpdateCatalogRequest

// LoginRequest represents the JSON request body for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required"`
} // @name LoginRequest
