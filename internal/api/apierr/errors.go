package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/floopybird/backend/internal/model"
	"github.com/floopybird/backend/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeValidation    = "VALIDATION"
	CodeNotFound      = "NOT_FOUND"
	CodeWrongPassword = "WRONG_PASSWORD"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeInternalError = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError.
//
// Unknown username and wrong password both map to 400, not 401: only a
// missing or expired session is treated as unauthorized.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, auth.ErrUsernameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeValidation, "Username is required"}}
	case errors.Is(err, auth.ErrUsernameInvalid):
		return &httpError{http.StatusBadRequest, APIError{CodeValidation, "Username must contain only letters"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusBadRequest, APIError{CodeNotFound, "Username must be registered"}}
	case errors.Is(err, auth.ErrWrongPassword):
		return &httpError{http.StatusBadRequest, APIError{CodeWrongPassword, "The password is wrong"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	default:
		// Store and other unexpected failures surface the underlying
		// error text, matching the deployed service's behavior.
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, err.Error()}}
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeValidation, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Unauthorized"}}
}
