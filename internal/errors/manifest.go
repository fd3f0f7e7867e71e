// Package errors provides error types for nosh.
// This file contains dependency manifest errors.
package errors

import "fmt"

// ManifestSyntaxError creates an error for an unparseable manifest line.
func ManifestSyntaxError(path string, line int, detail string) *NoshError {
	return &NoshError{
		Kind:    ErrManifest,
		Message: fmt.Sprintf("%s:%d: %s", path, line, detail),
		Details: map[string]string{
			"path": path,
			"line": fmt.Sprintf("%d", line),
		},
		Suggestion: `Each requirement line must be a package name, optionally followed by
extras in brackets and a comma-separated list of version specifiers:

  streamlit>=1.32
  geopy[timezone]==2.4.1
  folium>=0.15,<1.0`,
	}
}

// ManifestNotFound creates an error for a missing manifest file.
func ManifestNotFound(path string) *NoshError {
	return &NoshError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("manifest file not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
	}
}
