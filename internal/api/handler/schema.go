package handler

import (
	"encoding/json"

	"github.com/api-productos/products-api/internal/core/domain"
)

// Response is the envelope shared by every endpoint:
// {success, message?, count?, data?}.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// authData is the payload returned by register and login.
type authData struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Request types ---

type registerRequest struct {
	Email     string `json:"email"     validate:"required"`
	Password  string `json:"password"  validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Price and Stock are pointers so zero values survive the required check.
type createProductRequest struct {
	Name        string   `json:"name"     validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"    validate:"required"`
	Stock       *int     `json:"stock"    validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Image       *string  `json:"image"`
}

// updateProductRequest is a partial update: an absent key leaves the field
// untouched. Description and image are nullable, so an explicit null (or empty
// string) clears them; a nil pointer alone cannot tell null from absent, so
// UnmarshalJSON records which of the two keys were present in the body.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	IsActive    *bool    `json:"isActive"`

	descriptionSet bool
	imageSet       bool
}

func (r *updateProductRequest) UnmarshalJSON(data []byte) error {
	type plain updateProductRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*r = updateProductRequest(p)
	_, r.descriptionSet = keys["description"]
	_, r.imageSet = keys["image"]
	return nil
}
