package domain

import "errors"

// Domain-specific errors for page view handling.
var (
	// View errors
	ErrViewNotFound  = errors.New("view not found")
	ErrInvalidViewID = errors.New("invalid view id")

	// Navigation errors
	ErrUnknownSection = errors.New("unknown section")
)
