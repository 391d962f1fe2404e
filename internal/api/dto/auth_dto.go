package dto

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/spec-kit/playplanner-service/internal/auth"
)

// SignUpRequest payload for POST /login/signup.
type SignUpRequest struct {
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	RoleID      *int64 `json:"roleId"`
	Password    string `json:"password"`
	BillingInfo bool   `json:"billingInfo"`
}

// Validate checks the signup payload.
func (r SignUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(3, 150), is.Email),
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.Phone, validation.Length(0, 32)),
		validation.Field(&r.RoleID, validation.By(positiveRoleID)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 0), validation.By(fitsBcrypt)),
	)
}

// positiveRoleID rejects an explicit roleId below 1; omitted is fine.
func positiveRoleID(value interface{}) error {
	id, _ := value.(*int64)
	if id != nil && *id < 1 {
		return errors.New("must be a positive role id")
	}
	return nil
}

// fitsBcrypt caps the password by bytes, not runes.
func fitsBcrypt(value interface{}) error {
	pw, _ := value.(string)
	if len([]byte(pw)) > auth.MaxPasswordBytes {
		return errors.New("must be at most 72 bytes")
	}
	return nil
}

// SignInRequest payload for POST /login/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the signin payload.
func (r SignInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokenResponse is returned by both auth endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}
