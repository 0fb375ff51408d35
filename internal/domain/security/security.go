// Package security declares the credential and token capabilities the
// application layer depends on.
package security

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure: bad signature, malformed
// structure, expiry and an unparseable subject.
var ErrInvalidToken = errors.New("invalid token")

// PasswordHasher hashes and verifies passwords.
// Verify returns (false, nil) on mismatch; errors are reserved for operational
// failures such as a malformed stored hash.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) (bool, error)
}

// TokenService issues and verifies bearer tokens for a user id.
type TokenService interface {
	Sign(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}
