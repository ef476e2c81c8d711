package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	store    *testutil.Store
	users    *UserService
	products *ProductService
	orders   *OrderService
}

func newOrderFixture() *orderFixture {
	store := testutil.NewStore()
	return &orderFixture{
		store:    store,
		users:    NewUserService(store, nil),
		products: NewProductService(store),
		orders:   NewOrderService(store, store, store),
	}
}

func (f *orderFixture) seed(t *testing.T) (user *model.User, product *model.Product, order *model.Order) {
	t.Helper()
	ctx := context.Background()

	user = createUser(t, f.users, "ada@example.com")

	product, err := f.products.CreateProduct(ctx, &model.CreateProductRequest{Name: "Pen", Price: ptr(2.0)})
	require.NoError(t, err)

	order, err = f.orders.CreateOrder(ctx, &model.CreateOrderRequest{UserID: &user.ID})
	require.NoError(t, err)

	return user, product, order
}

func pair(orderID, productID int64) *model.OrderProductRequest {
	return &model.OrderProductRequest{OrderID: orderID, ProductID: productID}
}

func TestCreateOrder(t *testing.T) {
	f := newOrderFixture()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f.store.Now = func() time.Time { return now }
	user, product, _ := f.seed(t)

	order, err := f.orders.CreateOrder(context.Background(), &model.CreateOrderRequest{
		UserID:     &user.ID,
		ProductIDs: []int64{product.ID, product.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, now, order.OrderDate)

	products, err := f.orders.ListOrderProducts(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Product{*product}, products)
}

func TestCreateOrderUnknownUser(t *testing.T) {
	f := newOrderFixture()

	_, err := f.orders.CreateOrder(context.Background(), &model.CreateOrderRequest{UserID: ptr(int64(99))})
	httpErr := statusOf(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "The referenced User does not exist", httpErr.Message)
}

func TestAddProductTwice(t *testing.T) {
	f := newOrderFixture()
	_, product, order := f.seed(t)
	ctx := context.Background()

	res, err := f.orders.AddProduct(ctx, pair(order.ID, product.ID))
	require.NoError(t, err)
	assert.Equal(t, "Product 1 added to order 1", res.Message)

	_, err = f.orders.AddProduct(ctx, pair(order.ID, product.ID))
	httpErr := statusOf(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Product already exists in this order", httpErr.Message)
	assert.Equal(t, ErrCodeOrderProductExists, httpErr.Code)
}

func TestAddProductMissingEntities(t *testing.T) {
	f := newOrderFixture()
	_, product, order := f.seed(t)
	ctx := context.Background()

	_, err := f.orders.AddProduct(ctx, pair(order.ID+1, product.ID))
	assert.Equal(t, "Order not found", statusOf(t, err).Message)

	_, err = f.orders.AddProduct(ctx, pair(order.ID, product.ID+1))
	assert.Equal(t, "Product not found", statusOf(t, err).Message)
}

func TestRemoveProduct(t *testing.T) {
	f := newOrderFixture()
	_, product, order := f.seed(t)
	ctx := context.Background()

	_, err := f.orders.RemoveProduct(ctx, pair(order.ID, product.ID))
	httpErr := statusOf(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Product not found in this order", httpErr.Message)

	_, err = f.orders.AddProduct(ctx, pair(order.ID, product.ID))
	require.NoError(t, err)

	res, err := f.orders.RemoveProduct(ctx, pair(order.ID, product.ID))
	require.NoError(t, err)
	assert.Equal(t, "Product 1 removed from order 1", res.Message)

	products, err := f.orders.ListOrderProducts(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListUserOrders(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	lonely := createUser(t, f.users, "lonely@example.com")
	orders, err := f.orders.ListUserOrders(ctx, lonely.ID)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	_, err = f.orders.ListUserOrders(ctx, 404)
	assert.Equal(t, "User not found", statusOf(t, err).Message)
}

func TestListOrderProductsUnknownOrder(t *testing.T) {
	f := newOrderFixture()

	_, err := f.orders.ListOrderProducts(context.Background(), 7)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err).Status)
}

func TestDeleteUserCascadesToOrders(t *testing.T) {
	f := newOrderFixture()
	user, _, order := f.seed(t)
	ctx := context.Background()

	_, err := f.users.DeleteUser(ctx, user.ID)
	require.NoError(t, err)

	_, err = f.orders.ListOrderProducts(ctx, order.ID)
	assert.Equal(t, "Order not found", statusOf(t, err).Message)
}
