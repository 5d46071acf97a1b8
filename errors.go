package ttlcache

import (
	"errors"
	"fmt"
)

// Standard error variables for conditions callers may want to test
// with errors.Is.
var (
	// ErrInvalidConfig reports an invalid TTL or capacity at
	// construction or resize. It is the only failure a well-formed
	// cache can produce.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// wrapInvalid wraps a configuration failure with context following
// the pattern "component.operation: reason".
func wrapInvalid(operation, format string, args ...any) error {
	return fmt.Errorf("ttlcache.%s: %s: %w", operation, fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// wrapErr wraps an underlying error with context following the
// pattern "component.operation: action failed".
func wrapErr(err error, operation, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("ttlcache.%s: %s failed: %w", operation, action, err)
}
