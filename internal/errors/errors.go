package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/quilljournal/quill/internal/logger"
)

var (
	// ErrDuplicateDate is returned when a create collides with an existing
	// entry date. The storage engine's unique constraint is the single
	// source of truth for this condition.
	ErrDuplicateDate = errors.New("an entry already exists for this date")

	// ErrNotFound is returned by get/update/delete for a missing record.
	ErrNotFound = errors.New("entry not found")
)

// ValidationError reports a field-level constraint violation detected
// before a write reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsDuplicateDate reports whether err wraps ErrDuplicateDate.
func IsDuplicateDate(err error) bool {
	return errors.Is(err, ErrDuplicateDate)
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
