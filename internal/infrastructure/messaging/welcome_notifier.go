// Package messaging publishes domain events to RabbitMQ.
package messaging

import (
	"context"
	"time"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	"github.com/oksasatya/go-ddd-auth/pkg/mailer"
	mailtpl "github.com/oksasatya/go-ddd-auth/pkg/mailer/templates"
)

// JSONPublisher is satisfied by helpers.RabbitPublisher.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// WelcomeNotifier enqueues a welcome email for each registered user.
type WelcomeNotifier struct {
	pub      JSONPublisher
	appName  string
	loginURL string
	timeout  time.Duration
}

func NewWelcomeNotifier(pub JSONPublisher, appName, loginURL string) *WelcomeNotifier {
	return &WelcomeNotifier{pub: pub, appName: appName, loginURL: loginURL, timeout: 3 * time.Second}
}

func (n *WelcomeNotifier) UserRegistered(ctx context.Context, u *entity.User) error {
	opts := []mailtpl.Option{mailtpl.WithTime(u.CreatedAt)}
	if n.loginURL != "" {
		opts = append(opts, mailtpl.WithLoginURL(n.loginURL))
	}
	job := mailer.EmailJob{
		To:       u.Email.String(),
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData(n.appName, u.Username.String(), u.Email.String(), opts...),
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	return n.pub.PublishJSON(ctx, job)
}

var _ application.RegistrationNotifier = (*WelcomeNotifier)(nil)
