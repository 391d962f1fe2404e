package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/playplanner-service/internal/domain"
)

// UserRepository defines persistence access for credential records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const selectUser = `
        SELECT u.id, u.full_name, u.email, u.phone, u.role_id, r.name, u.password_hash, u.last_updated_date
        FROM users u JOIN roles r ON r.id = u.role_id`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (full_name, email, phone, role_id, password_hash)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, last_updated_date`

	err := r.pool.QueryRow(ctx, query,
		user.FullName,
		user.Email,
		user.Phone,
		user.RoleID,
		user.PasswordHash,
	).Scan(&user.ID, &user.LastUpdatedDate)
	return mapError(err)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, selectUser+` WHERE u.id=$1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, selectUser+` WHERE u.email=$1`, email)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var (
		user     domain.User
		roleName string
	)
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.Phone,
		&user.RoleID,
		&roleName,
		&user.PasswordHash,
		&user.LastUpdatedDate,
	); err != nil {
		return nil, mapError(err)
	}
	role, err := domain.ParseRole(roleName)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", user.ID, err)
	}
	user.Role = role
	return &user, nil
}
