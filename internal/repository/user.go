package repository

import (
	"context"
	"fmt"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const usersTable = "users"

type UserRepository struct {
	server *server.Server
}

func NewUserRepository(s *server.Server) *UserRepository {
	return &UserRepository{server: s}
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	stmt := `
		SELECT id, name, address, email
		FROM users
		ORDER BY id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list users query: %w", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:%s: %w", usersTable, err)
	}
	if users == nil {
		users = []model.User{}
	}

	return users, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	stmt := `
		SELECT id, name, address, email
		FROM users
		WHERE id = @id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get user query for id=%d: %w", id, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, sqlerr.TableError(usersTable, err)
	}

	return &user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, payload *model.CreateUserRequest) (*model.User, error) {
	stmt := `
		INSERT INTO users (name, address, email)
		VALUES (@name, @address, @email)
		RETURNING id, name, address, email
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"name":    payload.Name,
		"address": payload.Address,
		"email":   payload.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create user query: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:%s: %w", usersTable, err)
	}

	return &user, nil
}

// UpdateUser writes every column of user; callers merge partial input first.
func (r *UserRepository) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	stmt := `
		UPDATE users
		SET name = @name, address = @address, email = @email
		WHERE id = @id
		RETURNING id, name, address, email
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"id":      user.ID,
		"name":    user.Name,
		"address": user.Address,
		"email":   user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute update user query for id=%d: %w", user.ID, err)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, sqlerr.TableError(usersTable, err)
	}

	return &updated, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	stmt := `
		DELETE FROM users
		WHERE id = @id
	`

	tag, err := r.server.DB.Pool.Exec(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to execute delete user query for id=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.TableError(usersTable, pgx.ErrNoRows)
	}

	return nil
}
