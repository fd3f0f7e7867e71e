// Package errors provides error types for nosh.
// This file contains data file and session errors.
package errors

import "fmt"

// DataFileError creates an error for an unreadable or invalid data file.
func DataFileError(path string, cause error) *NoshError {
	return &NoshError{
		Kind:    ErrData,
		Message: fmt.Sprintf("failed to load data file: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Check that the file exists and is valid JSON.
Comments and trailing commas are allowed; run "nosh init" to scaffold
sample data files.`,
	}
}

// SessionError creates an error for session state failures.
func SessionError(message string, cause error) *NoshError {
	return &NoshError{
		Kind:       ErrSession,
		Message:    message,
		Cause:      cause,
		Suggestion: "If the session file is corrupted, delete .nosh/session.json to start over.",
	}
}
