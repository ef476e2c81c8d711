package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(testutil.NewStore())

	product, err := svc.CreateProduct(ctx, &model.CreateProductRequest{Name: "Pen", Price: ptr(1.25)})
	require.NoError(t, err)
	assert.Equal(t, model.Product{ID: 1, Name: "Pen", Price: 1.25}, *product)

	updated, err := svc.UpdateProduct(ctx, &model.UpdateProductRequest{ID: product.ID, Price: ptr(-3.0)})
	require.NoError(t, err)
	assert.Equal(t, "Pen", updated.Name)
	assert.Equal(t, -3.0, updated.Price)

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Product{*updated}, products)

	res, err := svc.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Product 1 deleted successfully", res.Message)

	_, err = svc.GetProduct(ctx, product.ID)
	httpErr := statusOf(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Product not found", httpErr.Message)
}
