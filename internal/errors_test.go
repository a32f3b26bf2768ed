package internal

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{"Storage error", ErrorTypeStorage, "STORAGE"},
		{"Key invalid error", ErrorTypeKeyInvalid, "KEY_INVALID"},
		{"Not found error", ErrorTypeNotFound, "NOT_FOUND"},
		{"Serialization error", ErrorTypeSerialization, "SERIALIZATION"},
		{"Validation error", ErrorTypeValidation, "VALIDATION"},
		{"Expired error", ErrorTypeExpired, "EXPIRED"},
		{"Unknown error", ErrorType(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.errType.String(); got != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCacheError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *CacheError
		expected string
	}{
		{
			name:     "error with key",
			err:      NewCacheError(ErrorTypeNotFound, "globedine:recipes:Italian", "key not found in cache", nil),
			expected: "cache error [NOT_FOUND] for key 'globedine:recipes:Italian': key not found in cache",
		},
		{
			name:     "error without key",
			err:      NewValidationError("cuisine name cannot be empty", nil),
			expected: "cache error [VALIDATION]: cuisine name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("CacheError.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCacheError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewStorageError("globedine:updated_at", "failed to persist", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the wrapped cause")
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestCacheError_Is(t *testing.T) {
	storageErr := NewStorageError("", "backend down", nil)
	otherStorageErr := NewStorageError("key", "different message", fmt.Errorf("cause"))
	validationErr := NewValidationError("bad input", nil)

	if !errors.Is(storageErr, otherStorageErr) {
		t.Errorf("two storage errors should match by type")
	}

	if errors.Is(storageErr, validationErr) {
		t.Errorf("storage error should not match validation error")
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		expected  bool
	}{
		{"IsStorageError matches", NewStorageError("", "down", nil), IsStorageError, true},
		{"IsStorageError rejects validation", NewValidationError("bad", nil), IsStorageError, false},
		{"IsNotFoundError matches", NewNotFoundError("k"), IsNotFoundError, true},
		{"IsNotFoundError rejects plain error", fmt.Errorf("nope"), IsNotFoundError, false},
		{"IsValidationError matches", NewValidationError("bad", nil), IsValidationError, true},
		{"IsSerializationError matches", NewSerializationError("k", "bad json", nil), IsSerializationError, true},
		{"IsExpiredError matches", NewExpiredError("k", "stale"), IsExpiredError, true},
		{"IsExpiredError rejects nil cause error", NewNotFoundError("k"), IsExpiredError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.predicate(tt.err); got != tt.expected {
				t.Errorf("predicate = %v, want %v", got, tt.expected)
			}
		})
	}
}
