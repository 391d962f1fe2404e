package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/playplanner-service/internal/auth"
	"github.com/spec-kit/playplanner-service/internal/domain"
	"github.com/spec-kit/playplanner-service/internal/repository"
	apperrors "github.com/spec-kit/playplanner-service/pkg/util/errorutil"
)

// Dashboard is the landing view: every published event and class.
type Dashboard struct {
	Events  []domain.Event
	Classes []domain.ClassItem
}

// DashboardService assembles the dashboard for a principal.
type DashboardService struct {
	users   repository.UserRepository
	events  repository.EventRepository
	classes repository.ClassRepository
}

// NewDashboardService builds the service.
func NewDashboardService(users repository.UserRepository, events repository.EventRepository, classes repository.ClassRepository) *DashboardService {
	return &DashboardService{users: users, events: events, classes: classes}
}

// Get verifies the caller still exists and lists all events and classes.
func (s *DashboardService) Get(ctx context.Context, p *auth.Principal) (*Dashboard, error) {
	if _, err := s.users.GetByID(ctx, p.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, err
	}

	var dash Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		evts, err := s.events.ListAll(gctx)
		dash.Events = evts
		return err
	})
	g.Go(func() error {
		classes, err := s.classes.ListAll(gctx)
		dash.Classes = classes
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}
