package game

import "errors"

// Sentinel error kinds. Callers branch with errors.Is; the transport layer
// maps each kind to a distinct response status.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidState  = errors.New("invalid session state")
	ErrTurnViolation = errors.New("turn violation")
	ErrAlreadyOwned  = errors.New("property already owned")
)
