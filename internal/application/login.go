package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
	"github.com/oksasatya/go-ddd-auth/internal/domain/security"
	"github.com/oksasatya/go-ddd-auth/internal/domain/valueobject"
)

var errPasswordMismatch = errors.New("password mismatch")

// timingPassword is hashed once and verified against for unknown emails.
const timingPassword = "timing-equalizer-Passw0rd!"

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token    string
	Username string
}

// LoginHandler authenticates an email/password pair and issues a token.
type LoginHandler struct {
	Repo   repository.UserRepository
	Hasher security.PasswordHasher
	Tokens security.TokenService
	Logger *logrus.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewLoginHandler(repo repository.UserRepository, hasher security.PasswordHasher, tokens security.TokenService, logger *logrus.Logger) *LoginHandler {
	return &LoginHandler{Repo: repo, Hasher: hasher, Tokens: tokens, Logger: logger}
}

// Handle runs the login flow. A malformed email, an unknown email and a wrong
// password all come back as ErrInvalidCredentials.
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	res, err := h.login(ctx, cmd)
	if err != nil {
		return nil, h.mapError(err)
	}
	return res, nil
}

func (h *LoginHandler) login(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email, err := valueobject.ParseEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	u, err := h.Repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		h.equalizeTiming(ctx, cmd.Password)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	ok, err := h.Hasher.Verify(ctx, cmd.Password, u.PasswordHash.String())
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, errPasswordMismatch
	}
	token, err := h.Tokens.Sign(u.ID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &LoginResult{Token: token, Username: u.Username.String()}, nil
}

func (h *LoginHandler) mapError(err error) error {
	switch {
	case errors.Is(err, valueobject.ErrInvalidEmail),
		errors.Is(err, repository.ErrNotFound),
		errors.Is(err, errPasswordMismatch):
		return ErrInvalidCredentials
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		return infraError(err)
	}
}

// equalizeTiming spends one verify so unknown emails cost the same as wrong passwords.
func (h *LoginHandler) equalizeTiming(ctx context.Context, password string) {
	h.dummyOnce.Do(func() {
		hash, err := h.Hasher.Hash(context.Background(), timingPassword)
		if err == nil {
			h.dummyHash = hash
		}
	})
	if h.dummyHash == "" {
		return
	}
	_, _ = h.Hasher.Verify(ctx, password, h.dummyHash)
}
