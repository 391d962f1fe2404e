package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/playplanner-service/internal/api/dto"
	"github.com/spec-kit/playplanner-service/internal/auth"
	apperrors "github.com/spec-kit/playplanner-service/pkg/util/errorutil"
)

type validatable interface {
	Validate() error
}

func bindAndValidate(c *fiber.Ctx, req validatable) error {
	if err := c.BodyParser(req); err != nil {
		return apperrors.NewValidationError([]string{"invalid payload"})
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(dto.ValidationMessages(err))
	}
	return nil
}

func requirePrincipal(c *fiber.Ctx) (*auth.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized(auth.RejectionMessage)
	}
	return principal, nil
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError([]string{"id: must be a positive integer"})
	}
	return id, nil
}
