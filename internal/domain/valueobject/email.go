package valueobject

import "strings"

// Email is a syntactically checked address. Full RFC validation happens in the
// request validation layer before the value reaches the domain.
type Email struct {
	value string
}

// ParseEmail returns an Email when raw contains the '@' separator.
func ParseEmail(raw string) (Email, error) {
	if !strings.Contains(raw, "@") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: raw}, nil
}

func (e Email) String() string { return e.value }
