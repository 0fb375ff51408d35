// Package security implements the password hashing and token capabilities.
package security

import (
	"github.com/samber/oops"
)

var (
	// ErrEmptyPassword is returned when attempting to hash an empty password.
	ErrEmptyPassword = oops.Code("AUTH_EMPTY_PASSWORD").Errorf("password cannot be empty")
	// ErrUnknownScheme is returned when a stored hash matches no configured scheme.
	ErrUnknownScheme = oops.Code("AUTH_UNKNOWN_HASH_SCHEME").Errorf("unknown password hash scheme")
)

// Scheme is one password hashing algorithm.
// Verify returns (false, nil) on mismatch and an error only for malformed hashes.
type Scheme interface {
	// Prefix is the marker every hash produced by this scheme starts with.
	Prefix() string
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}
