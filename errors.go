package neochat

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates an input failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotConfigured indicates no backend configuration was found.
	ErrNotConfigured = errors.New("no backend configuration found")
)
