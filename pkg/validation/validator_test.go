package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerDTO struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpwd"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func TestStrongPassword(t *testing.T) {
	tests := map[string]bool{
		"Secr3t!pass":  true,
		"Aa1@aaaa":     true,
		"Aa1@aaa":      false, // 7 chars
		"secr3t!pass":  false, // no upper
		"SECR3T!PASS":  false, // no lower
		"Secret!pass":  false, // no digit
		"Secr3tpass":   false, // no special
		"Secr3t#pass":  false, // '#' outside charset
		"Secr3t! pass": false,
	}
	for pw, want := range tests {
		assert.Equal(t, want, StrongPassword(pw), pw)
	}
}

func TestRegisterRules(t *testing.T) {
	v := newValidator()

	ok := registerDTO{Username: "alice_01", Email: "alice@example.com", Password: "Secr3t!pass"}
	require.NoError(t, v.Struct(ok))

	bad := registerDTO{Username: "al", Email: "nope", Password: "weak"}
	err := v.Struct(bad)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be 3-16 letters, digits or underscores", details["username"])
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Contains(t, details["password"], "at least 8 characters")
}

func TestUsernameRule(t *testing.T) {
	v := newValidator()
	cases := map[string]bool{
		"abc":               true,
		"ABCDEFGHIJKLMNOP":  true,
		"ab":                false,
		"ABCDEFGHIJKLMNOPQ": false,
		"bad-name":          false,
		"bad name":          false,
	}
	for name, want := range cases {
		err := v.Var(name, "username")
		assert.Equal(t, want, err == nil, name)
	}
}

func TestToDetails_JSONErrors(t *testing.T) {
	var dst map[string]any
	err := json.Unmarshal([]byte("{\"a\": }"), &dst)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("EOF")))
}
