// Package model holds the persisted entities and the request payloads the
// handlers bind and validate.
package model

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/validation"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their wire name: the json key, or the
// path parameter for fields bound from the URL.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			name = f.Tag.Get("param")
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// nullFields reports which of keys the JSON object in data sets to an
// explicit null. Update payloads use pointers for "absent", so a null would
// otherwise be indistinguishable from a missing key.
func nullFields(data []byte, keys ...string) validation.CustomValidationErrors {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return nil
	}

	var nulls validation.CustomValidationErrors
	for _, key := range keys {
		if v, ok := body[key]; ok && v == nil {
			nulls = append(nulls, validation.CustomValidationError{
				Field:   key,
				Message: "must not be null",
			})
		}
	}
	return nulls
}

// MessageResponse is the body of confirmation responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// NoPayload is bound for endpoints that take neither path params nor a body.
type NoPayload struct{}

func (NoPayload) Validate() error {
	return nil
}
