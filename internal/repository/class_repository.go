package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/playplanner-service/internal/domain"
)

// ClassRepository manages class persistence.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.ClassItem) error
	Update(ctx context.Context, class *domain.ClassItem) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.ClassItem, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.ClassItem, error)
	ListAll(ctx context.Context) ([]domain.ClassItem, error)
}

type classRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository builds the repository.
func NewClassRepository(pool *pgxpool.Pool) ClassRepository {
	return &classRepository{pool: pool}
}

const selectClass = `
        SELECT id, user_id, title, coach, day, start_time::text, end_time::text, level, students,
               capacity, status, location, last_updated_by, last_updated_date
        FROM classes`

func (r *classRepository) Create(ctx context.Context, c *domain.ClassItem) error {
	const query = `
        INSERT INTO classes (user_id, title, coach, day, start_time, end_time, level, students, capacity,
                             status, location, last_updated_by, last_updated_date)
        VALUES ($1,$2,$3,$4,$5::time,$6::time,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		c.UserID, c.Title, c.Coach, string(c.Day), c.StartTime, c.EndTime, string(c.Level), c.Students, c.Capacity,
		string(c.Status), c.Location, c.LastUpdatedBy, c.LastUpdatedDate,
	).Scan(&c.ID)
	return mapError(err)
}

func (r *classRepository) Update(ctx context.Context, c *domain.ClassItem) error {
	const query = `
        UPDATE classes SET title=$1, coach=$2, day=$3, start_time=$4::time, end_time=$5::time, level=$6,
               students=$7, capacity=$8, status=$9, location=$10, last_updated_by=$11, last_updated_date=$12
        WHERE id=$13`
	cmd, err := r.pool.Exec(ctx, query,
		c.Title, c.Coach, string(c.Day), c.StartTime, c.EndTime, string(c.Level),
		c.Students, c.Capacity, string(c.Status), c.Location, c.LastUpdatedBy, c.LastUpdatedDate,
		c.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *classRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *classRepository) GetByID(ctx context.Context, id int64) (*domain.ClassItem, error) {
	c, err := scanClass(r.pool.QueryRow(ctx, selectClass+` WHERE id=$1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *classRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ClassItem, error) {
	return r.list(ctx, selectClass+` WHERE user_id=$1 ORDER BY id`, userID)
}

func (r *classRepository) ListAll(ctx context.Context) ([]domain.ClassItem, error) {
	return r.list(ctx, selectClass+` ORDER BY id`)
}

func (r *classRepository) list(ctx context.Context, query string, args ...any) ([]domain.ClassItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var classes []domain.ClassItem
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, *c)
	}
	return classes, rows.Err()
}

func scanClass(row pgx.Row) (*domain.ClassItem, error) {
	var (
		c                  domain.ClassItem
		day, level, status string
	)
	if err := row.Scan(
		&c.ID, &c.UserID, &c.Title, &c.Coach, &day, &c.StartTime, &c.EndTime, &level, &c.Students,
		&c.Capacity, &status, &c.Location, &c.LastUpdatedBy, &c.LastUpdatedDate,
	); err != nil {
		return nil, err
	}
	c.Day = domain.ClassDay(day)
	c.Level = domain.ClassLevel(level)
	c.Status = domain.ClassStatus(status)
	return &c, nil
}
