package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Store is an in-memory stand-in for the user, product and order
// repositories. It reproduces the errors the Postgres schema raises:
// unique email, foreign keys, cascades and tagged not found errors.
type Store struct {
	mu sync.Mutex

	users    map[int64]model.User
	products map[int64]model.Product
	orders   map[int64]model.Order
	items    map[int64]map[int64]struct{}

	nextUser, nextProduct, nextOrder int64

	// Now stamps orders created without a date.
	Now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:    make(map[int64]model.User),
		products: make(map[int64]model.Product),
		orders:   make(map[int64]model.Order),
		items:    make(map[int64]map[int64]struct{}),
		Now:      time.Now,
	}
}

func notFound(table string) error {
	return sqlerr.TableError(table, pgx.ErrNoRows)
}

func uniqueEmail() error {
	return &pgconn.PgError{
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "users_email_key"`,
		TableName:      "users",
		ConstraintName: "users_email_key",
	}
}

func foreignKey(table, constraint string) error {
	return &pgconn.PgError{
		Code:           "23503",
		Message:        `insert or update violates foreign key constraint "` + constraint + `"`,
		TableName:      table,
		ConstraintName: constraint,
	}
}

func (s *Store) emailTaken(email string, except int64) bool {
	for id, u := range s.users {
		if id != except && u.Email == email {
			return true
		}
	}
	return false
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, notFound("users")
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, payload *model.CreateUserRequest) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(payload.Email, 0) {
		return nil, uniqueEmail()
	}

	s.nextUser++
	u := model.User{ID: s.nextUser, Name: payload.Name, Address: payload.Address, Email: payload.Email}
	s.users[u.ID] = u
	return &u, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return nil, notFound("users")
	}
	if s.emailTaken(user.Email, user.ID) {
		return nil, uniqueEmail()
	}

	s.users[user.ID] = *user
	u := *user
	return &u, nil
}

// DeleteUser cascades to the user's orders and their items.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return notFound("users")
	}
	delete(s.users, id)

	for orderID, o := range s.orders {
		if o.UserID == id {
			delete(s.orders, orderID)
			delete(s.items, orderID)
		}
	}
	return nil
}

func (s *Store) ListProducts(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	sortProducts(products)
	return products, nil
}

func (s *Store) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, notFound("products")
	}
	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, payload *model.CreateProductRequest) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProduct++
	p := model.Product{ID: s.nextProduct, Name: payload.Name, Price: *payload.Price}
	s.products[p.ID] = p
	return &p, nil
}

func (s *Store) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return nil, notFound("products")
	}

	s.products[product.ID] = *product
	p := *product
	return &p, nil
}

// DeleteProduct removes the product from every order.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return notFound("products")
	}
	delete(s.products, id)

	for _, set := range s.items {
		delete(set, id)
	}
	return nil
}

func (s *Store) ListOrders(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filterOrders(func(model.Order) bool { return true }), nil
}

func (s *Store) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, notFound("orders")
	}
	return &o, nil
}

// CreateOrder is all or nothing, like the transaction it stands in for.
func (s *Store) CreateOrder(ctx context.Context, userID int64, orderDate *time.Time, productIDs []int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return nil, foreignKey("orders", "orders_user_id_fkey")
	}
	for _, id := range productIDs {
		if _, ok := s.products[id]; !ok {
			return nil, foreignKey("order_products", "order_products_product_id_fkey")
		}
	}

	if orderDate == nil {
		orderDate = ptrTime(s.Now())
	}

	s.nextOrder++
	o := model.Order{ID: s.nextOrder, OrderDate: orderDate.UTC(), UserID: userID}
	s.orders[o.ID] = o

	set := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		set[id] = struct{}{}
	}
	s.items[o.ID] = set

	return &o, nil
}

func (s *Store) AddProduct(ctx context.Context, orderID, productID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[orderID]; !ok {
		return false, foreignKey("order_products", "order_products_order_id_fkey")
	}
	if _, ok := s.products[productID]; !ok {
		return false, foreignKey("order_products", "order_products_product_id_fkey")
	}

	set := s.items[orderID]
	if set == nil {
		set = make(map[int64]struct{})
		s.items[orderID] = set
	}
	if _, ok := set[productID]; ok {
		return false, nil
	}
	set[productID] = struct{}{}
	return true, nil
}

func (s *Store) RemoveProduct(ctx context.Context, orderID, productID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.items[orderID]
	if _, ok := set[productID]; !ok {
		return false, nil
	}
	delete(set, productID)
	return true, nil
}

func (s *Store) ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filterOrders(func(o model.Order) bool { return o.UserID == userID }), nil
}

func (s *Store) ListOrderProducts(ctx context.Context, orderID int64) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]model.Product, 0, len(s.items[orderID]))
	for id := range s.items[orderID] {
		products = append(products, s.products[id])
	}
	sortProducts(products)
	return products, nil
}

func (s *Store) filterOrders(keep func(model.Order) bool) []model.Order {
	orders := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if keep(o) {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}

func sortProducts(products []model.Product) {
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
}
