package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppErrorWithType(t *testing.T) {
	tests := []struct {
		errType ErrorType
		message string
	}{
		{NotFound, NotFoundMessage},
		{ValidationError, ValidationErrorMessage},
		{NotAuthenticated, NotAuthenticatedMessage},
		{UnknownError, UnknownErrorMessage},
	}

	for _, tt := range tests {
		t.Run(string(tt.errType), func(t *testing.T) {
			appErr := NewAppErrorWithType(tt.errType)
			assert.Equal(t, tt.errType, appErr.Type)
			assert.Equal(t, tt.message, appErr.Error())
		})
	}
}

func TestAppErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		appErr     *AppError
		wantStatus int
		wantMsg    string
	}{
		{"not found", NewAppError(errors.New("message 9 not found"), NotFound), http.StatusNotFound, "message 9 not found"},
		{"validation", NewAppError(errors.New("contact is required"), ValidationError), http.StatusBadRequest, "contact is required"},
		{"not authenticated", NewAppError(errors.New("bad credentials"), NotAuthenticated), http.StatusUnauthorized, "bad credentials"},
		{"unknown hides details", NewAppError(errors.New("nil map write at store.go:42"), UnknownError), http.StatusInternalServerError, UnknownErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := AppErrorToHTTP(tt.appErr)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestIsType(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewAppErrorWithType(NotFound))

	assert.True(t, IsType(wrapped, NotFound))
	assert.False(t, IsType(wrapped, ValidationError))
	assert.False(t, IsType(errors.New("plain"), NotFound))
}
