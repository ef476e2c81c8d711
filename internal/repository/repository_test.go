//go:build integration

package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/errs"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/sqlerr"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(sqlerr.HandleError(err), &httpErr))
	return httpErr.Status
}

func TestRepositories(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(testutil.NewPostgresServer(t))

	var (
		user    *model.User
		pen     *model.Product
		paper   *model.Product
		order   *model.Order
		orderAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	)

	t.Run("create user", func(t *testing.T) {
		var err error
		user, err = repos.User.CreateUser(ctx, &model.CreateUserRequest{Name: "Ada", Address: "1 Loop", Email: "ada@example.com"})
		require.NoError(t, err)
		assert.Positive(t, user.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := repos.User.CreateUser(ctx, &model.CreateUserRequest{Name: "Bob", Address: "2 Loop", Email: "ada@example.com"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
		assert.Equal(t, "A User with this Email already exists", sqlerr.HandleError(err).Error())
	})

	t.Run("update user", func(t *testing.T) {
		changed := *user
		changed.Address = "new"
		updated, err := repos.User.UpdateUser(ctx, &changed)
		require.NoError(t, err)
		assert.Equal(t, "new", updated.Address)
		assert.Equal(t, user.Email, updated.Email)
	})

	t.Run("products", func(t *testing.T) {
		var err error
		pen, err = repos.Product.CreateProduct(ctx, &model.CreateProductRequest{Name: "Pen", Price: ptr(2.5)})
		require.NoError(t, err)
		paper, err = repos.Product.CreateProduct(ctx, &model.CreateProductRequest{Name: "Paper", Price: ptr(0.0)})
		require.NoError(t, err)

		products, err := repos.Product.ListProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("create order with products", func(t *testing.T) {
		var err error
		order, err = repos.Order.CreateOrder(ctx, user.ID, &orderAt, []int64{pen.ID})
		require.NoError(t, err)
		assert.True(t, orderAt.Equal(order.OrderDate))

		products, err := repos.Order.ListOrderProducts(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, []model.Product{*pen}, products)
	})

	t.Run("create order defaults date", func(t *testing.T) {
		before := time.Now().Add(-time.Minute)
		o, err := repos.Order.CreateOrder(ctx, user.ID, nil, nil)
		require.NoError(t, err)
		assert.True(t, o.OrderDate.After(before))
	})

	t.Run("create order unknown user rolls back", func(t *testing.T) {
		_, err := repos.Order.CreateOrder(ctx, 9999, nil, []int64{pen.ID})
		require.Error(t, err)
		assert.Equal(t, "The referenced User does not exist", sqlerr.HandleError(err).Error())
	})

	t.Run("create order unknown product rolls back", func(t *testing.T) {
		before, err := repos.Order.ListOrdersByUser(ctx, user.ID)
		require.NoError(t, err)

		_, err = repos.Order.CreateOrder(ctx, user.ID, nil, []int64{9999})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))

		after, err := repos.Order.ListOrdersByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("add and remove product", func(t *testing.T) {
		added, err := repos.Order.AddProduct(ctx, order.ID, paper.ID)
		require.NoError(t, err)
		assert.True(t, added)

		added, err = repos.Order.AddProduct(ctx, order.ID, paper.ID)
		require.NoError(t, err)
		assert.False(t, added)

		removed, err := repos.Order.RemoveProduct(ctx, order.ID, paper.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repos.Order.RemoveProduct(ctx, order.ID, paper.ID)
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("deleting a product detaches it", func(t *testing.T) {
		require.NoError(t, repos.Product.DeleteProduct(ctx, pen.ID))

		products, err := repos.Order.ListOrderProducts(ctx, order.ID)
		require.NoError(t, err)
		assert.Empty(t, products)
		assert.NotNil(t, products)

		_, err = repos.Product.GetProductByID(ctx, pen.ID)
		assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	})

	t.Run("deleting a user removes its orders", func(t *testing.T) {
		require.NoError(t, repos.User.DeleteUser(ctx, user.ID))

		_, err := repos.Order.GetOrderByID(ctx, order.ID)
		assert.Equal(t, "Order not found", sqlerr.HandleError(err).Error())

		err = repos.User.DeleteUser(ctx, user.ID)
		assert.Equal(t, "User not found", sqlerr.HandleError(err).Error())
	})
}

func ptr[T any](v T) *T {
	return &v
}
