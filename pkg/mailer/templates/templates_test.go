package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)
	data := NewWelcomeData("go-ddd-auth", "alice01", "alice@example.com",
		WithTime(at), WithLoginURL("https://example.com/login"))

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to go-ddd-auth, alice01", subject)
	assert.Contains(t, text, "alice@example.com")
	assert.Contains(t, text, "04 March 2026, 05:06")
	assert.Contains(t, text, "https://example.com/login")
	assert.Contains(t, html, "<strong>alice@example.com</strong>")
}

func TestRenderWelcome_Defaults(t *testing.T) {
	subject, _, html, err := Render(Welcome, NewWelcomeData("", "bob_1", "bob@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "Welcome to our service, bob_1", subject)
	assert.NotContains(t, html, "Sign in")
}

func TestRenderWelcome_EscapesHTML(t *testing.T) {
	_, _, html, err := Render(Welcome, NewWelcomeData("app", "<script>", "x@example.com"))
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", nil)
	assert.Error(t, err)
}
