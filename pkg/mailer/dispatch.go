package mailer

import (
	"context"
	"encoding/json"
	"fmt"

	mailtpl "github.com/oksasatya/go-ddd-auth/pkg/mailer/templates"
)

// Sender delivers a rendered email. *Mailgun implements it.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// Outcome tells the queue consumer what to do with a delivery.
type Outcome int

const (
	Ack     Outcome = iota // delivered
	Drop                   // malformed, never retry
	Requeue                // transient send failure
)

// Dispatch decodes one queued job, renders its template if any, and sends it.
func Dispatch(ctx context.Context, body []byte, s Sender) (Outcome, error) {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return Drop, fmt.Errorf("decode job: %w", err)
	}
	if job.To == "" {
		return Drop, fmt.Errorf("job has no recipient")
	}
	job.EnsureRecipient()

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		var err error
		subject, text, html, err = mailtpl.Render(job.Template, job.Data)
		if err != nil {
			return Drop, fmt.Errorf("render %s: %w", job.Template, err)
		}
	}

	if err := s.Send(ctx, job.To, subject, text, html); err != nil {
		return Requeue, fmt.Errorf("send: %w", err)
	}
	return Ack, nil
}
