// Package apperrors defines the error taxonomy and process exit codes.
package apperrors

import (
	"errors"
	"fmt"
)

// Exit codes reported to the OS.
const (
	ExitSuccess         = 0 // Successful execution.
	ExitErrorGeneric    = 1 // Unclassified error.
	ExitErrorUsage      = 2 // Bad CLI input.
	ExitErrorCollection = 3 // Every OS query failed.
	ExitErrorFormat     = 4 // Unsupported export format.
	ExitErrorExport     = 5 // Export write failed.
)

// UsageError represents bad command-line input: unknown flags, malformed
// values, or an invalid flag combination.
type UsageError struct {
	Message string
}

func (e UsageError) Error() string { return e.Message }

// NewUsageError creates a UsageError with a formatted message.
func NewUsageError(format string, a ...any) error {
	return UsageError{Message: fmt.Sprintf(format, a...)}
}

// CollectionError indicates that no collector could query the OS at all.
// A single failed query degrades the affected fields to "unknown" instead.
type CollectionError struct {
	Cause error
}

func (e CollectionError) Error() string {
	if e.Cause == nil {
		return "all system queries failed"
	}
	return fmt.Sprintf("all system queries failed: %v", e.Cause)
}

func (e CollectionError) Unwrap() error { return e.Cause }

// UnsupportedFormatError indicates an export path whose extension maps to no
// registered format.
type UnsupportedFormatError struct {
	Ext       string
	Supported []string
}

func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format %q (supported: %v)", e.Ext, e.Supported)
}

// ExportError wraps an OS-level write failure while exporting.
type ExportError struct {
	Path  string
	Cause error
}

func (e ExportError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Cause)
}

func (e ExportError) Unwrap() error { return e.Cause }

// ExitCode maps an error to its process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr UsageError
	if errors.As(err, &usageErr) {
		return ExitErrorUsage
	}

	var collectionErr CollectionError
	if errors.As(err, &collectionErr) {
		return ExitErrorCollection
	}

	var formatErr UnsupportedFormatError
	if errors.As(err, &formatErr) {
		return ExitErrorFormat
	}

	var exportErr ExportError
	if errors.As(err, &exportErr) {
		return ExitErrorExport
	}

	return ExitErrorGeneric
}
