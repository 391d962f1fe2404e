package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/playplanner-service/internal/auth"
	"github.com/spec-kit/playplanner-service/internal/domain"
	"github.com/spec-kit/playplanner-service/internal/events"
	"github.com/spec-kit/playplanner-service/internal/repository"
	apperrors "github.com/spec-kit/playplanner-service/pkg/util/errorutil"
)

// RecordDependencies bundles collaborators shared by the record services.
type RecordDependencies struct {
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Clock      func() time.Time
}

func (d RecordDependencies) withDefaults() RecordDependencies {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	return d
}

// EventService manages events owned by the calling principal.
type EventService struct {
	events     repository.EventRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewEventService builds the service.
func NewEventService(repo repository.EventRepository, deps RecordDependencies) *EventService {
	deps = deps.withDefaults()
	return &EventService{events: repo, dispatcher: deps.Dispatcher, logger: deps.Logger, now: deps.Clock}
}

// List returns the principal's events.
func (s *EventService) List(ctx context.Context, p *auth.Principal) ([]domain.Event, error) {
	return s.events.ListByUser(ctx, p.UserID)
}

// Get returns one of the principal's events.
func (s *EventService) Get(ctx context.Context, id int64, p *auth.Principal) (*domain.Event, error) {
	return s.findOwned(ctx, id, p)
}

// Create stores a new event owned by the principal.
func (s *EventService) Create(ctx context.Context, e *domain.Event, p *auth.Principal) (*domain.Event, error) {
	e.ID = 0
	e.UserID = p.UserID
	e.LastUpdatedBy = p.FullName
	e.LastUpdatedDate = s.now()
	applyEventDefaults(e)

	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventEventCreated, p, e)
	return e, nil
}

// Update replaces the mutable fields of an owned event.
func (s *EventService) Update(ctx context.Context, id int64, in *domain.Event, p *auth.Principal) (*domain.Event, error) {
	existing, err := s.findOwned(ctx, id, p)
	if err != nil {
		return nil, err
	}

	updated := *in
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.LastUpdatedBy = p.Email
	updated.LastUpdatedDate = s.now()
	applyEventDefaults(&updated)

	if err := s.events.Update(ctx, &updated); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventEventUpdated, p, &updated)
	return &updated, nil
}

// Delete removes an owned event.
func (s *EventService) Delete(ctx context.Context, id int64, p *auth.Principal) error {
	existing, err := s.findOwned(ctx, id, p)
	if err != nil {
		return err
	}
	if err := s.events.Delete(ctx, existing.ID); err != nil {
		return err
	}
	s.publish(ctx, events.EventEventDeleted, p, existing)
	return nil
}

func (s *EventService) findOwned(ctx context.Context, id int64, p *auth.Principal) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Event not found")
		}
		return nil, err
	}
	if e.UserID != p.UserID {
		return nil, apperrors.NewNotFound("You do not have access to this event")
	}
	return e, nil
}

func (s *EventService) publish(ctx context.Context, t events.EventType, p *auth.Principal, e *domain.Event) {
	if s.dispatcher == nil {
		return
	}
	payload := events.RecordChangedPayload{Title: e.Name, UpdatedBy: e.LastUpdatedBy}
	if err := s.dispatcher.Publish(ctx, events.New(t, p.UserID, e.ID, s.now(), payload)); err != nil {
		s.logger.Warn("event handlers failed", zap.String("type", string(t)), zap.Error(err))
	}
}

func applyEventDefaults(e *domain.Event) {
	if e.Currency == "" {
		e.Currency = domain.DefaultCurrency
	}
}
