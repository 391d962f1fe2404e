package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/playplanner-service/internal/domain"
)

const subjectKeyPrefix = "playplanner:subject:"

// SubjectCache resolves token subjects through Redis before falling back to
// the user repository. Only password-free subject data is cached, and only
// positive lookups, so a newly registered email is visible immediately.
type SubjectCache struct {
	users  UserRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewSubjectCache builds the cache. A nil client or non-positive ttl disables caching.
func NewSubjectCache(users UserRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *SubjectCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectCache{users: users, client: client, ttl: ttl, logger: logger}
}

// LookupSubject returns the subject for email or ErrNotFound.
func (s *SubjectCache) LookupSubject(ctx context.Context, email string) (*domain.Subject, error) {
	if subject, ok := s.cached(ctx, email); ok {
		return subject, nil
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	subject := user.Subject()
	s.store(ctx, subject)
	return subject, nil
}

// Invalidate drops any cached entry for email.
func (s *SubjectCache) Invalidate(ctx context.Context, email string) error {
	if !s.enabled() {
		return nil
	}
	return s.client.Del(ctx, subjectKeyPrefix+email).Err()
}

func (s *SubjectCache) enabled() bool {
	return s.client != nil && s.ttl > 0
}

func (s *SubjectCache) cached(ctx context.Context, email string) (*domain.Subject, bool) {
	if !s.enabled() {
		return nil, false
	}
	raw, err := s.client.Get(ctx, subjectKeyPrefix+email).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("subject cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var subject domain.Subject
	if err := json.Unmarshal(raw, &subject); err != nil || !subject.Role.Valid() {
		s.logger.Warn("subject cache entry unreadable; ignoring")
		return nil, false
	}
	return &subject, true
}

func (s *SubjectCache) store(ctx context.Context, subject *domain.Subject) {
	if !s.enabled() {
		return
	}
	payload, err := json.Marshal(subject)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, subjectKeyPrefix+subject.Email, payload, s.ttl).Err(); err != nil {
		s.logger.Warn("subject cache write failed", zap.Error(err))
	}
}
