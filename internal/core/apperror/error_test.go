package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsAppError_Wrapped(t *testing.T) {
	base := NewValidation("Validation failed: beerName: must not be blank")
	wrapped := fmt.Errorf("create beer: %w", base)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(wrapped))
	assert.True(t, IsValidation(wrapped))
}

func TestGetHTTPStatus_UnknownIs500(t *testing.T) {
	err := errors.New("connection reset")

	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsConflict(err))
}

func TestInfrastructureErrors(t *testing.T) {
	cause := errors.New("canceling statement due to statement timeout")

	tests := []struct {
		name    string
		err     *AppError
		code    string
		status  int
		message string
	}{
		{"database", NewDatabase(cause), CodeDatabase, http.StatusInternalServerError, "Internal server error"},
		{"timeout", NewTimeout(cause), CodeTimeout, http.StatusGatewayTimeout, "Request timed out"},
		{"conflict", NewConflict("retry").WithCause(cause), CodeConflict, http.StatusConflict, "retry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, GetHTTPStatus(tt.err))
			assert.Equal(t, tt.message, tt.err.Message)
			assert.ErrorIs(t, tt.err, cause)
			assert.False(t, IsValidation(tt.err))
		})
	}
	assert.True(t, IsConflict(fmt.Errorf("patch: %w", NewConflict("retry"))))
}

func TestNewInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: relation \"beer\" does not exist")
	err := NewInternal(cause)

	assert.Equal(t, "Internal server error", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "caused by")
}

func TestWithDetail(t *testing.T) {
	err := NewValidation("bad").WithDetail("errors", []string{"a", "b"})

	assert.Equal(t, []string{"a", "b"}, err.Details["errors"])
}

func TestNewInvalidInput(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewInvalidInput("invalid request body", cause)

	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.True(t, IsValidation(err))
	assert.ErrorIs(t, err, cause)
}
