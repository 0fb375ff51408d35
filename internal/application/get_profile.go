package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
)

// GetProfileCommand carries a subject already resolved by the auth middleware.
type GetProfileCommand struct {
	UserID uuid.UUID
}

type GetProfileResult struct {
	ID              string
	Username        string
	Email           string
	IsEmailVerified bool
}

type GetProfileHandler struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewGetProfileHandler(repo repository.UserRepository, logger *logrus.Logger) *GetProfileHandler {
	return &GetProfileHandler{Repo: repo, Logger: logger}
}

// Handle loads the profile. A subject whose user no longer exists is
// ErrNotFound, not a token problem.
func (h *GetProfileHandler) Handle(ctx context.Context, cmd GetProfileCommand) (*GetProfileResult, error) {
	u, err := h.Repo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, h.mapError(fmt.Errorf("find user by id: %w", err), cmd.UserID)
	}
	return &GetProfileResult{
		ID:              u.ID.String(),
		Username:        u.Username.String(),
		Email:           u.Email.String(),
		IsEmailVerified: u.IsEmailVerified,
	}, nil
}

func (h *GetProfileHandler) mapError(err error, id uuid.UUID) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("user_id", id.String()).Error("get profile failed")
	}
	return infraError(err)
}
