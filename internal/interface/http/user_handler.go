package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-auth/pkg/response"
)

type profileUseCase interface {
	Handle(ctx context.Context, cmd application.GetProfileCommand) (*application.GetProfileResult, error)
}

type UserHandler struct {
	ProfileUC profileUseCase
	Logger    *logrus.Logger
}

func NewUserHandler(profile *application.GetProfileHandler, logger *logrus.Logger) *UserHandler {
	return &UserHandler{ProfileUC: profile, Logger: logger}
}

type userInfoResponse struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	IsEmailVerified bool   `json:"is_email_verified"`
}

// Info returns the profile of the subject the auth middleware resolved.
func (h *UserHandler) Info(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	res, err := h.ProfileUC.Handle(c.Request.Context(), application.GetProfileCommand{UserID: userID})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, userInfoResponse{
		ID:              res.ID,
		Username:        res.Username,
		Email:           res.Email,
		IsEmailVerified: res.IsEmailVerified,
	}, "ok")
}
