package auth

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/playplanner-service/pkg/util/errorutil"
)

// RejectionMessage is the only detail ever disclosed about a failed token.
const RejectionMessage = "JWT token is expired or invalid"

// RejectionResponder renders the uniform 401 body for failed authentication.
type RejectionResponder struct {
	now func() time.Time
}

// NewRejectionResponder builds a responder; a nil clock defaults to time.Now.
func NewRejectionResponder(now func() time.Time) *RejectionResponder {
	if now == nil {
		now = time.Now
	}
	return &RejectionResponder{now: now}
}

// Respond writes exactly one 401 response for c.
func (r *RejectionResponder) Respond(c *fiber.Ctx) error {
	body := apperrors.ErrorBody{
		Timestamp: r.now(),
		Status:    http.StatusUnauthorized,
		Error:     apperrors.TitleAuthenticationFailed,
		Message:   []string{RejectionMessage},
		Path:      c.Path(),
	}
	c.Status(http.StatusUnauthorized)
	if err := c.JSON(body); err != nil {
		_ = c.SendString(RejectionMessage)
	}
	return nil
}
