package security_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainsec "github.com/oksasatya/go-ddd-auth/internal/domain/security"
	"github.com/oksasatya/go-ddd-auth/internal/infrastructure/security"
)

const testSecret = "test-secret-at-least-32-bytes-long!!"

func newService(t *testing.T, opts ...security.JWTOption) *security.JWTService {
	t.Helper()
	s, err := security.NewJWTService(testSecret, 8*time.Hour, opts...)
	require.NoError(t, err)
	return s
}

func TestJWTService_RoundTrip(t *testing.T) {
	s := newService(t, security.WithIssuer("go-ddd-auth"))
	id := uuid.New()

	token, err := s.Sign(id)
	require.NoError(t, err)

	got, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestJWTService_Claims(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := newService(t, security.WithIssuer("go-ddd-auth"), security.WithClock(func() time.Time { return fixed }))
	id := uuid.New()

	token, err := s.Sign(id)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.Subject)
	assert.Equal(t, "go-ddd-auth", claims.Issuer)
	assert.Equal(t, fixed.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixed.Add(8*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_Rejects(t *testing.T) {
	s := newService(t)
	id := uuid.New()
	valid, err := s.Sign(id)
	require.NoError(t, err)

	past := time.Now().Add(-9 * time.Hour)
	expired, err := newService(t, security.WithClock(func() time.Time { return past })).Sign(id)
	require.NoError(t, err)

	other, err := security.NewJWTService("a-completely-different-secret-value", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Sign(id)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   id.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: id.String(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	cases := map[string]string{
		"expired":          expired,
		"tampered":         tamperSignature(valid),
		"wrong secret":     foreign,
		"other algorithm":  hs512,
		"missing exp":      noExp,
		"non-uuid subject": badSub,
		"malformed":        "not.a.jwt",
		"empty":            "",
		"payload swapped":  swapPayload(valid, foreign),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := s.Verify(token)
			assert.ErrorIs(t, err, domainsec.ErrInvalidToken)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}

func TestJWTService_IssuerMismatch(t *testing.T) {
	token, err := newService(t, security.WithIssuer("someone-else")).Sign(uuid.New())
	require.NoError(t, err)

	_, err = newService(t, security.WithIssuer("go-ddd-auth")).Verify(token)
	assert.ErrorIs(t, err, domainsec.ErrInvalidToken)
}

func TestNewJWTService_Validation(t *testing.T) {
	_, err := security.NewJWTService("", time.Hour)
	assert.Error(t, err)

	_, err = security.NewJWTService(testSecret, 0)
	assert.Error(t, err)
}

// tamperSignature flips one character in the middle of the signature segment.
func tamperSignature(token string) string {
	b := []byte(token)
	i := strings.LastIndex(token, ".") + 10
	if b[i] == 'a' {
		b[i] = 'b'
	} else {
		b[i] = 'a'
	}
	return string(b)
}

// swapPayload keeps a's header and signature but uses b's claims segment.
func swapPayload(a, b string) string {
	pa := strings.Split(a, ".")
	pb := strings.Split(b, ".")
	return pa[0] + "." + pb[1] + "." + pa[2]
}
