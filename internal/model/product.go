package model

import (
	"encoding/json"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/validation"
)

// Product is a catalog item. Price carries no sign or currency rules.
type Product struct {
	ID    int64   `json:"id" db:"id"`
	Name  string  `json:"product_name" db:"product_name"`
	Price float64 `json:"price" db:"price"`
}

// ProductIDRequest addresses a single product by path parameter.
type ProductIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *ProductIDRequest) Validate() error {
	return validate.Struct(r)
}

// CreateProductRequest is the body of POST /products.
// Price is a pointer so that zero is distinguishable from missing.
type CreateProductRequest struct {
	Name  string   `json:"product_name" validate:"required,max=100"`
	Price *float64 `json:"price" validate:"required"`
}

func (r *CreateProductRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateProductRequest is the body of PUT /products/{id}.
type UpdateProductRequest struct {
	ID    int64    `param:"id" json:"-" validate:"required,gt=0"`
	Name  *string  `json:"product_name" validate:"omitempty,min=1,max=100"`
	Price *float64 `json:"price"`

	nulls validation.CustomValidationErrors
}

func (r *UpdateProductRequest) UnmarshalJSON(data []byte) error {
	type body UpdateProductRequest
	if err := json.Unmarshal(data, (*body)(r)); err != nil {
		return err
	}
	r.nulls = nullFields(data, "product_name", "price")
	return nil
}

func (r *UpdateProductRequest) Validate() error {
	if len(r.nulls) > 0 {
		return r.nulls
	}
	return validate.Struct(r)
}

// ApplyTo merges the present fields into p.
func (r *UpdateProductRequest) ApplyTo(p *Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
}
