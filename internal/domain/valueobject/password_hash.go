package valueobject

import "strings"

// Recognized hash scheme markers.
const (
	BcryptPrefix = "$2"
	Argon2Prefix = "$argon2"
)

// PasswordHash wraps an already-hashed secret. It never holds a plaintext password.
type PasswordHash struct {
	value string
}

// PasswordHashFromString accepts bcrypt ($2...) and Argon2 ($argon2...) encodings.
func PasswordHashFromString(hash string) (PasswordHash, error) {
	if !strings.HasPrefix(hash, BcryptPrefix) && !strings.HasPrefix(hash, Argon2Prefix) {
		return PasswordHash{}, ErrUnsupportedHash
	}
	return PasswordHash{value: hash}, nil
}

func (p PasswordHash) String() string { return p.value }
