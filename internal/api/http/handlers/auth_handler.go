package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/playplanner-service/internal/api/dto"
	"github.com/spec-kit/playplanner-service/internal/service"
)

// AuthHandler exposes the public signup and signin endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// SignUp handles POST /login/signup.
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, _, err := h.auth.RegisterUser(c.UserContext(), service.RegisterInput{
		Email:       req.Email,
		FullName:    req.FullName,
		Phone:       req.Phone,
		RoleID:      req.RoleID,
		Password:    req.Password,
		BillingInfo: req.BillingInfo,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token})
}

// SignIn handles POST /login/signin.
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, _, err := h.auth.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token})
}
