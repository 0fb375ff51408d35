package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
	"github.com/oksasatya/go-ddd-auth/internal/domain/security"
	"github.com/oksasatya/go-ddd-auth/internal/domain/valueobject"
)

// RegistrationNotifier is told about every newly created user.
// Its failures are logged and never fail the registration.
type RegistrationNotifier interface {
	UserRegistered(ctx context.Context, u *entity.User) error
}

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type RegisterResult struct {
	Token    string
	Username string
}

// RegisterHandler creates a user and issues its first token.
type RegisterHandler struct {
	Repo     repository.UserRepository
	Hasher   security.PasswordHasher
	Tokens   security.TokenService
	Notifier RegistrationNotifier
	Logger   *logrus.Logger
}

func NewRegisterHandler(repo repository.UserRepository, hasher security.PasswordHasher, tokens security.TokenService, notifier RegistrationNotifier, logger *logrus.Logger) *RegisterHandler {
	return &RegisterHandler{Repo: repo, Hasher: hasher, Tokens: tokens, Notifier: notifier, Logger: logger}
}

// Handle runs the registration flow.
//
// The FindByEmail pre-check only saves hashing work. Two concurrent requests
// for one email can both pass it; the repository's uniqueness constraint
// decides, and its ErrDuplicateEmail becomes ErrConflict.
func (h *RegisterHandler) Handle(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	res, err := h.register(ctx, cmd)
	if err != nil {
		return nil, h.mapError(err)
	}
	return res, nil
}

func (h *RegisterHandler) register(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email, err := valueobject.ParseEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	username, err := valueobject.ParseUsername(cmd.Username)
	if err != nil {
		return nil, err
	}

	_, err = h.Repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, repository.ErrDuplicateEmail
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	raw, err := h.Hasher.Hash(ctx, cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hash, err := valueobject.PasswordHashFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("hasher output: %w", err)
	}

	u, err := h.Repo.Create(ctx, email, username, hash)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if h.Notifier != nil {
		if nErr := h.Notifier.UserRegistered(ctx, u); nErr != nil && h.Logger != nil {
			h.Logger.WithError(nErr).WithField("user_id", u.ID.String()).Warn("registration notification failed")
		}
	}

	token, err := h.Tokens.Sign(u.ID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &RegisterResult{Token: token, Username: u.Username.String()}, nil
}

func (h *RegisterHandler) mapError(err error) error {
	switch {
	case errors.Is(err, valueobject.ErrInvalidEmail), errors.Is(err, valueobject.ErrInvalidUsername):
		return identityError(err)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return ErrConflict
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("register failed")
		}
		return infraError(err)
	}
}
