package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "error without cause",
			err:      NewAppError(ErrTypeDecoder, "bad record", nil),
			expected: "[DECODER] bad record",
		},
		{
			name:     "error with cause",
			err:      NewAppError(ErrTypeStorage, "write failed", fmt.Errorf("disk full")),
			expected: "[STORAGE] write failed: disk full",
		},
		{
			name:     "config helper",
			err:      NewConfigError("invalid log level", nil),
			expected: "[CONFIG] invalid log level",
		},
		{
			name:     "network helper with cause",
			err:      NewNetworkError("request failed", fmt.Errorf("connection refused")),
			expected: "[NETWORK] request failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewDecoderError("decode failed", cause)

	require.ErrorIs(t, err, cause)

	var appErr *AppError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &appErr)
	assert.Equal(t, ErrTypeDecoder, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewDecoderError("bad field", nil).
		WithContext("file", "morning_run.fit").
		WithContext("record", 42)

	assert.Equal(t, "morning_run.fit", err.Context["file"])
	assert.Equal(t, 42, err.Context["record"])
}
