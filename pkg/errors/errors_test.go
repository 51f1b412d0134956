package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredError_Error(t *testing.T) {
	e := New(ErrCodeInvalidRequest, "bad format")
	assert.Equal(t, "[INVALID_REQUEST] bad format", e.Error())

	wrapped := Wrap(ErrCodeTimeout, "command timed out", stderrors.New("context deadline exceeded"))
	assert.Equal(t, "[TIMEOUT] command timed out: context deadline exceeded", wrapped.Error())
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	wrapped := Wrap(ErrCodeInternal, "operation failed", cause)

	require.ErrorIs(t, wrapped, cause)
}

func TestIsCode(t *testing.T) {
	cause := New(ErrCodeTimeout, "timed out")
	outer := Wrap(ErrCodeInternal, "round failed", cause)

	assert.True(t, IsCode(outer, ErrCodeInternal))
	assert.True(t, IsCode(outer, ErrCodeTimeout))
	assert.False(t, IsCode(outer, ErrCodeNotFound))
	assert.False(t, IsCode(nil, ErrCodeTimeout))
	assert.False(t, IsCode(stderrors.New("plain"), ErrCodeTimeout))
}

func TestWrapWithContext(t *testing.T) {
	e := WrapWithContext(ErrCodeUnavailable, "registry unreachable", stderrors.New("dial"), map[string]any{
		"registry": "localhost:5000",
	})
	assert.Equal(t, "localhost:5000", e.Context["registry"])
}
