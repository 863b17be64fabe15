package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelsUnwrap(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{ValidationFailed("title", "title is required"), ErrValidation},
		{NotFound("project", "42"), ErrNotFound},
		{Conflict("Username already exists"), ErrConflict},
		{Forbidden("admin users cannot be deleted"), ErrForbidden},
		{Unauthorized("invalid username or password"), ErrUnauthorized},
		{StoreUnavailable("load", fmt.Errorf("connection refused")), ErrStoreUnavailable},
	}
	for _, tc := range cases {
		require.ErrorIs(t, tc.err, tc.sentinel)
	}
}

func TestMessages(t *testing.T) {
	err := NotFound("project", "42")
	require.Equal(t, "project not found with id 42", err.Error())

	v := ValidationFailed("title", "title is required")
	require.Equal(t, "title", v.Field)
	require.Equal(t, "title is required", v.Error())
}

func TestStoreUnavailableWithoutCause(t *testing.T) {
	err := StoreUnavailable("save", nil)
	require.ErrorIs(t, err, ErrStoreUnavailable)
	require.Equal(t, "document store save failed", err.Error())
}

func TestWrappedChainSurvives(t *testing.T) {
	wrapped := fmt.Errorf("creating project: %w", Conflict("dup"))
	require.True(t, errors.Is(wrapped, ErrConflict))

	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	require.Equal(t, "dup", appErr.Message)
}
