package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapValidationError(t *testing.T) {
	err := WrapValidationError("deposit_percent", "must be between 0 and 100")

	assert.Equal(t, ErrCodeValidation, err.Code)
	assert.Equal(t, "deposit_percent", err.Field)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "deposit_percent must be between 0 and 100")
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "business error", err: WrapCalculationNotFound("abc"), expected: ErrCodeCalculationNotFound},
		{name: "wrapped business error", err: fmt.Errorf("outer: %w", WrapDatabaseError(errors.New("boom"))), expected: ErrCodeDatabaseError},
		{name: "plain error", err: errors.New("plain"), expected: ""},
		{name: "nil", err: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CodeOf(tt.err))
		})
	}
}
