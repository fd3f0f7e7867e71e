// Package errors provides error types for nosh.
// This file contains network, geocoding, and registry errors.
package errors

import (
	"fmt"
	"time"
)

// NetworkUnavailable creates an error for network connectivity issues.
func NetworkUnavailable(host string, cause error) *NoshError {
	err := &NoshError{
		Kind:    ErrNetwork,
		Message: "network unavailable",
		Cause:   cause,
		Suggestion: `Check your network connection:

  1. Verify internet connectivity
  2. Check if VPN or firewall is blocking access

If you're behind a proxy:
  export HTTP_PROXY=http://proxy:port
  export HTTPS_PROXY=http://proxy:port`,
	}
	if host != "" {
		err.Details = map[string]string{"host": host}
	}
	return err
}

// GeocodeFailed creates an error for a failed geocoding lookup.
func GeocodeFailed(query string, cause error) *NoshError {
	return &NoshError{
		Kind:    ErrGeocode,
		Message: fmt.Sprintf("failed to geocode %q", query),
		Cause:   cause,
		Details: map[string]string{
			"query": query,
		},
		Suggestion: "Check the address spelling, or set lat/lon directly in the restaurant data file.",
	}
}

// GeocodeNoResult creates an error for a query the geocoder could not place.
func GeocodeNoResult(query string) *NoshError {
	return &NoshError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("no location found for %q", query),
		Details: map[string]string{
			"query": query,
		},
		Suggestion: "Try a more specific address, including the city name.",
	}
}

// RegistryStatusError creates an error for an unexpected package index response.
func RegistryStatusError(pkg string, status int) *NoshError {
	return &NoshError{
		Kind:    ErrRegistry,
		Message: fmt.Sprintf("package index returned status %d for %q", status, pkg),
		Details: map[string]string{
			"package": pkg,
			"status":  fmt.Sprintf("%d", status),
		},
	}
}

// RequestTimeout creates an error for an HTTP request timeout.
func RequestTimeout(host string, limit time.Duration) *NoshError {
	return &NoshError{
		Kind:    ErrTimeout,
		Message: fmt.Sprintf("request to %s timed out after %v", host, limit.Round(time.Second)),
		Suggestion: `The remote service took too long to respond.

Possible causes:
  - Slow or flaky network connection
  - The service is rate limiting or under load

Increase the timeout in .nosh/config.yaml if this keeps happening.`,
	}
}
