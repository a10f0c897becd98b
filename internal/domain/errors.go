package domain

import "errors"

// Error taxonomy for the measurement pipeline. Callers match these with
// errors.Is; the HTTP adapter maps each to a status code.
var (
	// ErrValidation indicates malformed or out-of-range input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound indicates an unknown user or a user with no measurement yet.
	ErrNotFound = errors.New("not found")
	// ErrDevice indicates the external weight source failed or returned
	// invalid data.
	ErrDevice = errors.New("device error")
	// ErrReport indicates report rendering failed.
	ErrReport = errors.New("report error")
)
