package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"taproom/internal/core/apperror"
)

func TestClassifyError(t *testing.T) {
	pgErr := func(code string) error {
		return fmt.Errorf("patch beer: %w", &pgconn.PgError{Code: code, Message: "server said no"})
	}

	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"serialization failure", pgErr("40001"), apperror.CodeConflict, http.StatusConflict},
		{"deadlock", pgErr("40P01"), apperror.CodeConflict, http.StatusConflict},
		{"statement timeout", pgErr("57014"), apperror.CodeTimeout, http.StatusGatewayTimeout},
		{"undefined table", pgErr("42P01"), apperror.CodeDatabase, http.StatusInternalServerError},
		{"deadline", fmt.Errorf("begin transaction: %w", context.DeadlineExceeded), apperror.CodeTimeout, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)

			appErr, ok := apperror.AsAppError(got)
			if assert.True(t, ok) {
				assert.Equal(t, tt.code, appErr.Code)
				assert.Equal(t, tt.status, appErr.HTTPStatus)
				assert.NotContains(t, appErr.Message, "server said no")
			}
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyError_PassThrough(t *testing.T) {
	assert.NoError(t, classifyError(nil))

	validation := apperror.NewValidation("Validation failed")
	assert.Same(t, validation, classifyError(validation))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, classifyError(plain))

	canceled := fmt.Errorf("query beer: %w", context.Canceled)
	assert.Equal(t, canceled, classifyError(canceled))
}
