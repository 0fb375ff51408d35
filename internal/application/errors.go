package application

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every handler returns exactly one of these (possibly wrapping
// a cause for server-side diagnostics) or nil.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("conflict")
	ErrIdentityInvalid    = errors.New("invalid identity")
	ErrInfrastructure     = errors.New("infrastructure failure")
)

func identityError(cause error) error {
	return fmt.Errorf("%w: %w", ErrIdentityInvalid, cause)
}

func infraError(cause error) error {
	return fmt.Errorf("%w: %w", ErrInfrastructure, cause)
}
