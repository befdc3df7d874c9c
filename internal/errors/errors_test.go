package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "Campground"}
		assert.Equal(t, "Campground not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "Review"}
		err2 := &NotFoundError{Entity: "Review"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrCampgroundNotFound, ErrReviewNotFound))
	})

	t.Run("IsNotFound helper through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to load campground: %w", ErrCampgroundNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrCampgroundNotFound))
		assert.False(t, IsNotFound(errors.New("boom")))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Messages are joined with a comma", func(t *testing.T) {
		err := NewValidationError(`"campground.title" is required`, `"campground.price" must be a number`)
		assert.Equal(t, `"campground.title" is required,"campground.price" must be a number`, err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("x")))
		assert.False(t, IsValidation(ErrReviewNotFound))
	})
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"page not found", ErrPageNotFound, http.StatusNotFound},
		{"entity not found", ErrCampgroundNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", ErrReviewNotFound), http.StatusNotFound},
		{"validation", NewValidationError("bad"), http.StatusBadRequest},
		{"explicit status", NewHTTPError(http.StatusTeapot, "teapot"), http.StatusTeapot},
		{"zero status falls through", &HTTPError{Message: "x"}, http.StatusInternalServerError},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	t.Run("client errors keep their message", func(t *testing.T) {
		assert.Equal(t, "Page not found", Message(ErrPageNotFound))
		assert.Equal(t, "Campground not found", Message(ErrCampgroundNotFound))
		assert.Equal(t, "a,b", Message(NewValidationError("a", "b")))
	})

	t.Run("server errors are replaced by the default", func(t *testing.T) {
		assert.Equal(t, DefaultMessage, Message(errors.New("dial tcp: connection refused")))
	})

	t.Run("explicit server error message is kept", func(t *testing.T) {
		assert.Equal(t, "maintenance", Message(NewHTTPError(http.StatusServiceUnavailable, "maintenance")))
	})

	t.Run("empty message falls back to default", func(t *testing.T) {
		assert.Equal(t, DefaultMessage, Message(NewHTTPError(http.StatusBadRequest, "")))
		assert.Equal(t, DefaultMessage, Message(NewValidationError()))
		assert.Equal(t, DefaultMessage, Message(nil))
	})
}

func TestConfigurationError(t *testing.T) {
	err := fmt.Errorf("load: %w", ErrUnknownStoreDriver)
	assert.True(t, IsConfiguration(err))
	assert.Equal(t, "boom", NewConfigurationError("boom").Error())
}
