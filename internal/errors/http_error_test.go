package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"vincanto/internal/pricing"
	"vincanto/internal/repository"
)

func TestFromErrorMapsSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid range", pricing.ErrInvalidRange, http.StatusBadRequest},
		{"minimum stay", pricing.ErrMinimumStay, http.StatusBadRequest},
		{"dates unavailable", ErrDatesUnavailable, http.StatusConflict},
		{"not found", fmt.Errorf("booking 7: %w", repository.ErrNotFound), http.StatusNotFound},
		{"missing config", pricing.ErrMissingConfig, http.StatusInternalServerError},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, FromError(tt.err).Code)
		})
	}
}

func TestFromErrorHidesInternalDetails(t *testing.T) {
	httpErr := FromError(fmt.Errorf("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	assert.Equal(t, "internal server error", httpErr.Message)
}

func TestFromErrorPassesThroughHTTPError(t *testing.T) {
	orig := NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	assert.Equal(t, orig, FromError(orig))
}
