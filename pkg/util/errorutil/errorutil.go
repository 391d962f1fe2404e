package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Error titles carried in the "error" field of responses.
const (
	TitleAuthenticationFailed = "Authentication Failed"
	TitleBadRequest           = "Bad Request"
	TitleValidation           = "Validation Error"
	TitleGeneralValidation    = "General Validation"
	TitleInternal             = "Internal Server Error"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Title      string
	Messages   []string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	msg := e.Title
	if len(e.Messages) > 0 {
		msg = e.Messages[0]
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError with a single message.
func NewDomainError(code, title, message string, status int, cause error) *DomainError {
	return &DomainError{Code: code, Title: title, Messages: []string{message}, HTTPStatus: status, Err: cause}
}

// NewBadRequest reports a client error on a known failure.
func NewBadRequest(code, message string, cause error) error {
	return NewDomainError(code, TitleBadRequest, message, http.StatusBadRequest, cause)
}

// NewAuthenticationFailed reports a credential failure surfaced as 400.
func NewAuthenticationFailed(code, message string, cause error) error {
	return NewDomainError(code, TitleAuthenticationFailed, message, http.StatusBadRequest, cause)
}

// NewValidationError collects field level validation messages.
func NewValidationError(messages []string) error {
	return &DomainError{
		Code:       "VALIDATION_FAILED",
		Title:      TitleValidation,
		Messages:   messages,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFound reports a missing or inaccessible record.
func NewNotFound(message string) error {
	return NewDomainError("NOT_FOUND", TitleGeneralValidation, message, http.StatusNotFound, nil)
}

// NewUnauthorized is a 401 carrying the given rejection message.
func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", TitleAuthenticationFailed, message, http.StatusUnauthorized, nil)
}

// NewInternalError is a 500 that hides err behind a generic message.
func NewInternalError(err error) error {
	return NewDomainError("INTERNAL_ERROR", TitleInternal, "internal server error", http.StatusInternalServerError, err)
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		title := http.StatusText(fiberErr.Code)
		if title == "" {
			title = TitleInternal
		}
		return NewDomainError("HTTP_ERROR", title, fiberErr.Message, fiberErr.Code, nil)
	}
	return NewInternalError(err).(*DomainError)
}

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   []string  `json:"message"`
	Path      string    `json:"path"`
}

// NewErrorBody renders a DomainError for the given request path.
func NewErrorBody(err *DomainError, path string, now time.Time) ErrorBody {
	messages := err.Messages
	if messages == nil {
		messages = []string{}
	}
	return ErrorBody{
		Timestamp: now,
		Status:    err.HTTPStatus,
		Error:     err.Title,
		Message:   messages,
		Path:      path,
	}
}
