package space

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBound is returned when a bound has low > high on some axis or
	// a NaN coordinate.
	ErrInvalidBound = errors.New("bound must have low <= high on every axis")

	// ErrInvalidDepthLimit is returned for a negative depth limit.
	ErrInvalidDepthLimit = errors.New("depth limit must not be negative")

	// ErrInvalidLeafItemLimit is returned for a leaf item limit below one.
	ErrInvalidLeafItemLimit = errors.New("leaf item limit must be at least 1")
)

// ConfigError reports an invalid construction parameter.
//
// The sentinel error describing the problem can be matched with errors.Is.
type ConfigError struct {
	Field string
	Value string
	cause error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("space: invalid %s %s: %v", e.Field, e.Value, e.cause)
}

func (e *ConfigError) Unwrap() error { return e.cause }
