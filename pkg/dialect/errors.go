package dialect

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/termsql/pkg/core"
)

// ErrNoTypeRenderer is wrapped by ConfigError when a dialect cannot render
// a standard type.
var ErrNoTypeRenderer = errors.New("no type renderer configured")

// ConfigError reports setup-time dialect misconfiguration.
type ConfigError struct {
	Dialect string
	Type    core.StandardType // TypeUnset when not type specific
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Type != core.TypeUnset {
		return fmt.Sprintf("dialect %s: %s for %s", e.Dialect, e.Err, e.Type)
	}
	return fmt.Sprintf("dialect %s: %s", e.Dialect, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// UnknownDialectError is returned when an unregistered dialect is requested.
type UnknownDialectError struct {
	Name      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q\nAvailable dialects: %v\nHint: Check the dialect key in termsql.yaml", e.Name, e.Available)
}
