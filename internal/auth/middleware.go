package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/playplanner-service/internal/domain"
	"github.com/spec-kit/playplanner-service/internal/observability"
	"github.com/spec-kit/playplanner-service/internal/repository"
	apperrors "github.com/spec-kit/playplanner-service/pkg/util/errorutil"
)

const bearerPrefix = "Bearer "

// Auth outcomes reported to metrics.
const (
	OutcomeExempt        = "exempt"
	OutcomePassThrough   = "passthrough"
	OutcomeAuthenticated = "authenticated"
	OutcomeRejected      = "rejected"
)

// SubjectLookup resolves a token subject to its current credential record.
// Implementations return repository.ErrNotFound for unknown subjects.
type SubjectLookup interface {
	LookupSubject(ctx context.Context, email string) (*domain.Subject, error)
}

// MiddlewareOptions tunes the authentication middleware.
type MiddlewareOptions struct {
	ExemptPrefixes []string
	Logger         *zap.Logger
	Metrics        *observability.Metrics
	Clock          func() time.Time
}

// AuthMiddleware verifies bearer tokens and installs a request-scoped principal.
// It only populates identity; routes that need one add RequirePrincipal.
type AuthMiddleware struct {
	tokens   *TokenCodec
	subjects SubjectLookup
	exempt   []string
	reject   *RejectionResponder
	logger   *zap.Logger
	metrics  *observability.Metrics
	now      func() time.Time
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenCodec, subjects SubjectLookup, opts MiddlewareOptions) *AuthMiddleware {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &AuthMiddleware{
		tokens:   tokens,
		subjects: subjects,
		exempt:   append([]string(nil), opts.ExemptPrefixes...),
		reject:   NewRejectionResponder(now),
		logger:   logger,
		metrics:  opts.Metrics,
		now:      now,
	}
}

// Handle runs once per request before any business handler.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	if m.isExempt(c.Path()) {
		m.metrics.RecordAuthOutcome(OutcomeExempt)
		return c.Next()
	}

	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		m.metrics.RecordAuthOutcome(OutcomePassThrough)
		return c.Next()
	}

	identity, err := m.tokens.Verify(token, m.now())
	if err != nil {
		m.logger.Warn("jwt verification failed", zap.String("path", c.Path()), zap.Error(err))
		return m.rejectRequest(c)
	}

	subject, err := m.subjects.LookupSubject(c.UserContext(), identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			m.logger.Warn("jwt subject not found", zap.String("path", c.Path()))
			return m.rejectRequest(c)
		}
		clearPrincipal(c)
		return apperrors.NewInternalError(fmt.Errorf("resolve token subject: %w", err))
	}
	if subject.ID != identity.UserID {
		m.logger.Warn("jwt subject id mismatch", zap.String("path", c.Path()))
		return m.rejectRequest(c)
	}

	attachPrincipal(c, principalFromIdentity(identity))
	m.metrics.RecordAuthOutcome(OutcomeAuthenticated)
	return c.Next()
}

func (m *AuthMiddleware) rejectRequest(c *fiber.Ctx) error {
	clearPrincipal(c)
	m.metrics.RecordAuthOutcome(OutcomeRejected)
	return m.reject.Respond(c)
}

func (m *AuthMiddleware) isExempt(path string) bool {
	for _, prefix := range m.exempt {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := header[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}
