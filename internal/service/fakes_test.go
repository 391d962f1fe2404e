package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/spec-kit/playplanner-service/internal/domain"
	"github.com/spec-kit/playplanner-service/internal/repository"
)

type memoryUsers struct {
	mu        sync.Mutex
	byID      map[int64]*domain.User
	nextID    int64
	createErr error
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: map[int64]*domain.User{}}
}

func (m *memoryUsers) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return repository.ErrDuplicate
		}
	}
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memoryUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUsers) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

type memoryRoles struct{}

func (memoryRoles) GetByID(_ context.Context, id int64) (*domain.RoleRecord, error) {
	roles := []domain.Role{
		domain.RolePlayer, domain.RoleParticipant, domain.RoleCoach, domain.RoleSchool,
		domain.RoleOrganization, domain.RoleClub, domain.RoleAdmin,
	}
	if id < 1 || id > int64(len(roles)) {
		return nil, repository.ErrNotFound
	}
	return &domain.RoleRecord{ID: id, Name: roles[id-1]}, nil
}

type memoryEvents struct {
	mu     sync.Mutex
	rows   map[int64]domain.Event
	nextID int64
}

func newMemoryEvents() *memoryEvents {
	return &memoryEvents{rows: map[int64]domain.Event{}}
}

func (m *memoryEvents) Create(_ context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	e.ID = m.nextID
	m.rows[e.ID] = *e
	return nil
}

func (m *memoryEvents) Update(_ context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[e.ID]; !ok {
		return repository.ErrNotFound
	}
	m.rows[e.ID] = *e
	return nil
}

func (m *memoryEvents) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memoryEvents) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (m *memoryEvents) ListByUser(_ context.Context, userID int64) ([]domain.Event, error) {
	all, _ := m.ListAll(context.Background())
	out := []domain.Event{}
	for _, e := range all {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryEvents) ListAll(context.Context) ([]domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Event, 0, len(m.rows))
	for _, e := range m.rows {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memoryClasses struct {
	mu     sync.Mutex
	rows   map[int64]domain.ClassItem
	nextID int64
}

func newMemoryClasses() *memoryClasses {
	return &memoryClasses{rows: map[int64]domain.ClassItem{}}
}

func (m *memoryClasses) Create(_ context.Context, c *domain.ClassItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	m.rows[c.ID] = *c
	return nil
}

func (m *memoryClasses) Update(_ context.Context, c *domain.ClassItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[c.ID]; !ok {
		return repository.ErrNotFound
	}
	m.rows[c.ID] = *c
	return nil
}

func (m *memoryClasses) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memoryClasses) GetByID(_ context.Context, id int64) (*domain.ClassItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (m *memoryClasses) ListByUser(_ context.Context, userID int64) ([]domain.ClassItem, error) {
	all, _ := m.ListAll(context.Background())
	out := []domain.ClassItem{}
	for _, c := range all {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryClasses) ListAll(context.Context) ([]domain.ClassItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ClassItem, 0, len(m.rows))
	for _, c := range m.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
