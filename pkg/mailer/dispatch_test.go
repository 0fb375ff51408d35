package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailtpl "github.com/oksasatya/go-ddd-auth/pkg/mailer/templates"
)

type sent struct {
	to, subject, text, html string
}

type fakeSender struct {
	calls []sent
	err   error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	f.calls = append(f.calls, sent{to, subject, text, html})
	return f.err
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestDispatch(t *testing.T) {
	welcome := EmailJob{
		To:       "alice@example.com",
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData("go-ddd-auth", "alice01", "alice@example.com"),
	}

	tests := []struct {
		name      string
		body      []byte
		sendErr   error
		want      Outcome
		wantSends int
	}{
		{name: "template job", body: mustJSON(t, welcome), want: Ack, wantSends: 1},
		{name: "raw job", body: mustJSON(t, EmailJob{To: "a@b.c", Subject: "hi", Text: "body"}), want: Ack, wantSends: 1},
		{name: "malformed json", body: []byte("{"), want: Drop},
		{name: "missing recipient", body: mustJSON(t, EmailJob{Subject: "hi"}), want: Drop},
		{name: "unknown template", body: mustJSON(t, EmailJob{To: "a@b.c", Template: "nope"}), want: Drop},
		{name: "send failure", body: mustJSON(t, welcome), sendErr: errors.New("mailgun 503"), want: Requeue, wantSends: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeSender{err: tt.sendErr}
			got, err := Dispatch(context.Background(), tt.body, s)
			assert.Equal(t, tt.want, got)
			assert.Len(t, s.calls, tt.wantSends)
			if tt.want == Ack {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDispatch_RendersWelcome(t *testing.T) {
	s := &fakeSender{}
	body := mustJSON(t, EmailJob{
		To:       "alice@example.com",
		Template: mailtpl.Welcome,
		Data:     map[string]any{"Name": "alice01", "AppName": "go-ddd-auth"},
	})

	_, err := Dispatch(context.Background(), body, s)
	require.NoError(t, err)
	require.Len(t, s.calls, 1)
	assert.Equal(t, "Welcome to go-ddd-auth, alice01", s.calls[0].subject)
	assert.Contains(t, s.calls[0].text, "alice@example.com")
}
