package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/playplanner-service/internal/domain"
)

// RoleRepository resolves role ids to known roles.
type RoleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RoleRecord, error)
}

type roleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository returns a Postgres-backed implementation.
func NewRoleRepository(pool *pgxpool.Pool) RoleRepository {
	return &roleRepository{pool: pool}
}

func (r *roleRepository) GetByID(ctx context.Context, id int64) (*domain.RoleRecord, error) {
	const query = `SELECT id, name FROM roles WHERE id=$1`

	var (
		rec  domain.RoleRecord
		name string
	)
	if err := r.pool.QueryRow(ctx, query, id).Scan(&rec.ID, &name); err != nil {
		return nil, mapError(err)
	}
	role, err := domain.ParseRole(name)
	if err != nil {
		return nil, fmt.Errorf("role %d: %w", id, err)
	}
	rec.Name = role
	return &rec, nil
}
