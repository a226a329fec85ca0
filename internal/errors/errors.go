package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/nightslot/internal/logger"
)

// ErrStaleSelection is returned when the armed activity id no longer
// resolves in the catalog.
var ErrStaleSelection = errors.New("selected activity is no longer available")

// ValidationError reports bad user input for a new activity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// LoadError wraps a failure to read or decode a persisted snapshot.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load snapshot: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError wraps a failure to write a snapshot.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save snapshot: %v", e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
