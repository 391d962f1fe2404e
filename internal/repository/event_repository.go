package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/playplanner-service/internal/domain"
)

// EventRepository manages event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Event, error)
	ListAll(ctx context.Context) ([]domain.Event, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository builds the repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

const selectEvent = `
        SELECT id, user_id, name, event_type, sport, format, level, timezone, location_name, address,
               start_date, end_date, start_time::text, end_time::text, registration_deadline, capacity,
               entry_fee::float8, currency, description, is_public, allow_waitlist, require_approval,
               last_updated_by, last_updated_date
        FROM events`

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	const query = `
        INSERT INTO events (user_id, name, event_type, sport, format, level, timezone, location_name, address,
                            start_date, end_date, start_time, end_time, registration_deadline, capacity,
                            entry_fee, currency, description, is_public, allow_waitlist, require_approval,
                            last_updated_by, last_updated_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12::time,$13::time,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
        RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		e.UserID, e.Name, e.EventType, e.Sport, e.Format, e.Level, e.Timezone, e.LocationName, e.Address,
		e.StartDate, e.EndDate, e.StartTime, e.EndTime, e.RegistrationDeadline, e.Capacity,
		e.EntryFee, e.Currency, e.Description, e.IsPublic, e.AllowWaitlist, e.RequireApproval,
		e.LastUpdatedBy, e.LastUpdatedDate,
	).Scan(&e.ID)
	return mapError(err)
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	const query = `
        UPDATE events SET name=$1, event_type=$2, sport=$3, format=$4, level=$5, timezone=$6,
               location_name=$7, address=$8, start_date=$9, end_date=$10, start_time=$11::time,
               end_time=$12::time, registration_deadline=$13, capacity=$14, entry_fee=$15, currency=$16,
               description=$17, is_public=$18, allow_waitlist=$19, require_approval=$20,
               last_updated_by=$21, last_updated_date=$22
        WHERE id=$23`
	cmd, err := r.pool.Exec(ctx, query,
		e.Name, e.EventType, e.Sport, e.Format, e.Level, e.Timezone,
		e.LocationName, e.Address, e.StartDate, e.EndDate, e.StartTime,
		e.EndTime, e.RegistrationDeadline, e.Capacity, e.EntryFee, e.Currency,
		e.Description, e.IsPublic, e.AllowWaitlist, e.RequireApproval,
		e.LastUpdatedBy, e.LastUpdatedDate,
		e.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := scanEvent(r.pool.QueryRow(ctx, selectEvent+` WHERE id=$1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *eventRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Event, error) {
	return r.list(ctx, selectEvent+` WHERE user_id=$1 ORDER BY start_date, id`, userID)
}

func (r *eventRepository) ListAll(ctx context.Context) ([]domain.Event, error) {
	return r.list(ctx, selectEvent+` ORDER BY start_date, id`)
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(
		&e.ID, &e.UserID, &e.Name, &e.EventType, &e.Sport, &e.Format, &e.Level, &e.Timezone,
		&e.LocationName, &e.Address, &e.StartDate, &e.EndDate, &e.StartTime, &e.EndTime,
		&e.RegistrationDeadline, &e.Capacity, &e.EntryFee, &e.Currency, &e.Description,
		&e.IsPublic, &e.AllowWaitlist, &e.RequireApproval, &e.LastUpdatedBy, &e.LastUpdatedDate,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
