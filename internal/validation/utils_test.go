package validation_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/errs"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(http.MethodPost, "/users", `{"name":"Ada","address":"1 Loop","email":"ada@example.com"}`)

	payload := &model.CreateUserRequest{}
	require.NoError(t, validation.BindAndValidate(c, payload))
	assert.Equal(t, "Ada", payload.Name)
	assert.Equal(t, "ada@example.com", payload.Email)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, "/users", `{"name":`)

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &model.CreateUserRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidateWrongType(t *testing.T) {
	c := newContext(http.MethodPost, "/products", `{"product_name":"Pen","price":"cheap"}`)

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &model.CreateProductRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(http.MethodPost, "/users", `{"name":"`+strings.Repeat("a", 101)+`","email":"ada@example.com"}`)

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &model.CreateUserRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "must not exceed 100 characters"},
		{Field: "address", Error: "is required"},
	}, httpErr.Errors)
}

func TestBindAndValidatePathParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &model.UserIDRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	c.SetParamValues("0")
	httpErr = asHTTPError(t, validation.BindAndValidate(c, &model.UserIDRequest{}))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "id", httpErr.Errors[0].Field)
}

func TestBindAndValidateExplicitNull(t *testing.T) {
	c := newContext(http.MethodPut, "/users/1", `{"name":null}`)
	c.SetPath("/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &model.UpdateUserRequest{}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "must not be null"}}, httpErr.Errors)
}

type failingPayload struct{}

func (failingPayload) Validate() error {
	return errors.New("order window closed")
}

func TestBindAndValidatePlainError(t *testing.T) {
	c := newContext(http.MethodPost, "/orders", `{}`)

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &failingPayload{}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed: order window closed", httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}
