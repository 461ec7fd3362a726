package data

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedCapability is the cause of errors returned when a
	// CHANMODES or PREFIX token cannot be parsed. It is never fatal, the
	// registry falls back to defaults.
	ErrMalformedCapability = errors.New("data: malformed mode capability")
	// ErrModeParameterMismatch is the cause of errors returned when a mode
	// change carries a parameter it should not, or lacks one it requires.
	ErrModeParameterMismatch = errors.New("data: mode parameter mismatch")
	// ErrParameterTooLong is the cause of errors returned when a single mode
	// change cannot fit within the line length budget even on its own.
	ErrParameterTooLong = errors.New("data: mode parameter too long")
	// ErrUnknownModeLetter is used as a warning signal only, unknown letters
	// are treated as taking no parameter.
	ErrUnknownModeLetter = errors.New("data: unknown mode letter")
)

// ModeErrors is a list of errors collected by batch operations that carry on
// past individual failures.
type ModeErrors []error

// Error joins all the errors together.
func (m ModeErrors) Error() string {
	strs := make([]string, len(m))
	for i, err := range m {
		strs[i] = err.Error()
	}
	return strings.Join(strs, "; ")
}

// errOrNil returns nil for an empty list so callers can compare against nil.
func (m ModeErrors) errOrNil() error {
	if len(m) == 0 {
		return nil
	}
	return m
}

// IsCause checks if any error in err has the given cause. err may be a single
// error or a ModeErrors.
func IsCause(err, cause error) bool {
	if err == nil {
		return false
	}
	if list, ok := err.(ModeErrors); ok {
		for _, e := range list {
			if errors.Cause(e) == cause {
				return true
			}
		}
		return false
	}
	return errors.Cause(err) == cause
}
