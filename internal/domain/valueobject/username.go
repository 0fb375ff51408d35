package valueobject

const (
	usernameMinLen = 3
	usernameMaxLen = 16
)

// Username is a display handle: 3 to 16 ASCII letters, digits or underscores.
type Username struct {
	value string
}

// ParseUsername validates raw and wraps it.
func ParseUsername(raw string) (Username, error) {
	if len(raw) < usernameMinLen || len(raw) > usernameMaxLen {
		return Username{}, ErrInvalidUsername
	}
	for i := 0; i < len(raw); i++ {
		if !isUsernameChar(raw[i]) {
			return Username{}, ErrInvalidUsername
		}
	}
	return Username{value: raw}, nil
}

func isUsernameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		return true
	default:
		return false
	}
}

func (u Username) String() string { return u.value }
