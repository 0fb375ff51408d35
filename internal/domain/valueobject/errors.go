package valueobject

import "errors"

// Construction failures. Each names the rule that broke.
var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidUsername = errors.New("invalid username")
	ErrUnsupportedHash = errors.New("unsupported password hash")
)
