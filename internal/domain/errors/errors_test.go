package errors

import (
	"net/http"
	"testing"

	"studyhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_IsMatchesCopiesWithDetails(t *testing.T) {
	err := ErrCourseFolderNotFound.WithDetails("course folder CSE2001 not found")

	assert.True(t, errors.Is(err, ErrCourseFolderNotFound))
	assert.False(t, errors.Is(err, ErrFileNotFound))
	assert.Equal(t, "No file found: course folder CSE2001 not found", err.Error())
}

func TestBaseError_WrappedStillAppError(t *testing.T) {
	err := ErrInvalidInput.WrapMessage("course code is required")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestResolutionError_MessageFallback(t *testing.T) {
	withPayload := NewResolutionError(errors.New("boom"), "Quota exceeded for quota metric")
	assert.Equal(t, "Quota exceeded for quota metric", withPayload.Message())
	assert.Equal(t, http.StatusBadGateway, withPayload.HTTPCode())

	bare := NewResolutionError(errors.New("dial tcp: timeout"), "")
	assert.Equal(t, "Failed to fetch file", bare.Message())
	assert.Contains(t, bare.Error(), "dial tcp: timeout")
}
