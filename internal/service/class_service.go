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

// ClassService manages classes owned by the calling principal.
type ClassService struct {
	classes    repository.ClassRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewClassService builds the service.
func NewClassService(repo repository.ClassRepository, deps RecordDependencies) *ClassService {
	deps = deps.withDefaults()
	return &ClassService{classes: repo, dispatcher: deps.Dispatcher, logger: deps.Logger, now: deps.Clock}
}

func (s *ClassService) List(ctx context.Context, p *auth.Principal) ([]domain.ClassItem, error) {
	return s.classes.ListByUser(ctx, p.UserID)
}

func (s *ClassService) Get(ctx context.Context, id int64, p *auth.Principal) (*domain.ClassItem, error) {
	return s.findOwned(ctx, id, p)
}

func (s *ClassService) Create(ctx context.Context, c *domain.ClassItem, p *auth.Principal) (*domain.ClassItem, error) {
	c.ID = 0
	c.UserID = p.UserID
	c.LastUpdatedBy = p.FullName
	c.LastUpdatedDate = s.now()

	if err := s.classes.Create(ctx, c); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventClassCreated, p, c)
	return c, nil
}

func (s *ClassService) Update(ctx context.Context, id int64, in *domain.ClassItem, p *auth.Principal) (*domain.ClassItem, error) {
	existing, err := s.findOwned(ctx, id, p)
	if err != nil {
		return nil, err
	}

	updated := *in
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.LastUpdatedBy = p.Email
	updated.LastUpdatedDate = s.now()

	if err := s.classes.Update(ctx, &updated); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventClassUpdated, p, &updated)
	return &updated, nil
}

func (s *ClassService) Delete(ctx context.Context, id int64, p *auth.Principal) error {
	existing, err := s.findOwned(ctx, id, p)
	if err != nil {
		return err
	}
	if err := s.classes.Delete(ctx, existing.ID); err != nil {
		return err
	}
	s.publish(ctx, events.EventClassDeleted, p, existing)
	return nil
}

func (s *ClassService) findOwned(ctx context.Context, id int64, p *auth.Principal) (*domain.ClassItem, error) {
	c, err := s.classes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Class not found")
		}
		return nil, err
	}
	if c.UserID != p.UserID {
		return nil, apperrors.NewNotFound("You do not have access to this class")
	}
	return c, nil
}

func (s *ClassService) publish(ctx context.Context, t events.EventType, p *auth.Principal, c *domain.ClassItem) {
	if s.dispatcher == nil {
		return
	}
	payload := events.RecordChangedPayload{Title: c.Title, UpdatedBy: c.LastUpdatedBy}
	if err := s.dispatcher.Publish(ctx, events.New(t, p.UserID, c.ID, s.now(), payload)); err != nil {
		s.logger.Warn("event handlers failed", zap.String("type", string(t)), zap.Error(err))
	}
}
