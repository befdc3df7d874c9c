package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a rejected request payload. Messages holds one
// entry per failing field, in the order they were reported.
type ValidationError struct {
	Messages []string
}

// Error joins the individual field messages with a comma
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ",")
}

// HTTPError carries an explicit status code to the error page
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCampgroundNotFound = &NotFoundError{Entity: "Campground"}
	ErrReviewNotFound     = &NotFoundError{Entity: "Review"}
)

// Routing Errors
var (
	ErrPageNotFound = &HTTPError{StatusCode: http.StatusNotFound, Message: "Page not found"}
)

// Store Errors
var (
	ErrUnknownStoreDriver = &ConfigurationError{Message: "unknown store driver"}
)

// DefaultMessage is shown when an error carries no message of its own
const DefaultMessage = "Something went wrong!"

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// StatusCode resolves the HTTP status for an error. Errors without a known
// status map to 500.
func StatusCode(err error) int {
	var httpErr *HTTPError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &httpErr) && httpErr.StatusCode != 0:
		return httpErr.StatusCode
	case IsNotFound(err):
		return http.StatusNotFound
	case IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message resolves the user-facing message for an error. Server errors never
// leak the underlying cause.
func Message(err error) string {
	if err == nil {
		return DefaultMessage
	}
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.Message != "" {
			return httpErr.Message
		}
		return DefaultMessage
	}

	var (
		httpErr  *HTTPError
		notFound *NotFoundError
		invalid  *ValidationError
	)
	msg := ""
	switch {
	case errors.As(err, &httpErr):
		msg = httpErr.Message
	case errors.As(err, &notFound):
		msg = notFound.Error()
	case errors.As(err, &invalid):
		msg = invalid.Error()
	default:
		msg = err.Error()
	}
	if msg == "" {
		return DefaultMessage
	}
	return msg
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError from field messages
func NewValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// NewHTTPError creates a new HTTPError
func NewHTTPError(statusCode int, message string) error {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
