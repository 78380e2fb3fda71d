package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorSentinelMatching(t *testing.T) {
	cause := errors.New("tcp dial timeout")
	err := NewAppError(CodeModelError, "model call failed", cause)

	assert.True(t, errors.Is(err, ErrModel))
	assert.True(t, errors.Is(err, cause), "underlying cause stays reachable")
	assert.False(t, errors.Is(err, ErrInvalidFormat))
}

func TestAppErrorMessagePreserved(t *testing.T) {
	err := NewAppError(CodeInsufficientContent, "document contains only 12 characters", ErrInsufficientContent)
	wrapped := fmt.Errorf("upload: %w", err)

	assert.Contains(t, wrapped.Error(), "document contains only 12 characters")
	assert.True(t, errors.Is(wrapped, ErrInsufficientContent))
	assert.Equal(t, CodeInsufficientContent, ErrorCode(wrapped))
}

func TestErrorCodeForeignError(t *testing.T) {
	assert.Equal(t, "", ErrorCode(errors.New("plain")))
}
