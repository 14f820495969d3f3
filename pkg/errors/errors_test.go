package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesTypeAndStatus(t *testing.T) {
	original := NewDuplicateError("node with this title already exists")

	wrapped := Wrap(original, "create failed")

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeDuplicate, appErr.Type)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "create failed: node with this title already exists", appErr.Message)
}

func TestWrap_DoesNotMutateOriginal(t *testing.T) {
	original := NewNotFoundError("node")

	_ = Wrap(original, "first context")
	_ = Wrap(original, "second context")

	assert.Equal(t, "node not found", original.Message)
}

func TestWrap_ForeignErrorBecomesInternal(t *testing.T) {
	cause := errors.New("connection reset")

	wrapped := Wrap(cause, "query failed")

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.ErrorIs(t, wrapped, cause)
}

func TestWrap_NilError(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
}

func TestIsNotFound_CoversScopeNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("node")))
	assert.True(t, IsNotFound(NewScopeNotFoundError("g1")))
	assert.False(t, IsNotFound(NewValidationError("bad input")))
}
