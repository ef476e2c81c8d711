package model

import (
	"encoding/json"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/validation"
)

// User is a customer record. Email is unique across users.
type User struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Address string `json:"address" db:"address"`
	Email   string `json:"email" db:"email"`
}

// UserIDRequest addresses a single user by path parameter.
type UserIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *UserIDRequest) Validate() error {
	return validate.Struct(r)
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,max=120"`
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateUserRequest is the body of PUT /users/{id}.
// A nil field was absent from the request and leaves the stored value alone;
// an explicit null is rejected.
type UpdateUserRequest struct {
	ID      int64   `param:"id" json:"-" validate:"required,gt=0"`
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,min=1,max=120"`

	nulls validation.CustomValidationErrors
}

func (r *UpdateUserRequest) UnmarshalJSON(data []byte) error {
	type body UpdateUserRequest
	if err := json.Unmarshal(data, (*body)(r)); err != nil {
		return err
	}
	r.nulls = nullFields(data, "name", "address", "email")
	return nil
}

func (r *UpdateUserRequest) Validate() error {
	if len(r.nulls) > 0 {
		return r.nulls
	}
	return validate.Struct(r)
}

// ApplyTo merges the present fields into u.
func (r *UpdateUserRequest) ApplyTo(u *User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Address != nil {
		u.Address = *r.Address
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
}
