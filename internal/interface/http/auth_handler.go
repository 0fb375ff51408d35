package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/pkg/response"
	"github.com/oksasatya/go-ddd-auth/pkg/validation"
)

type loginUseCase interface {
	Handle(ctx context.Context, cmd application.LoginCommand) (*application.LoginResult, error)
}

type registerUseCase interface {
	Handle(ctx context.Context, cmd application.RegisterCommand) (*application.RegisterResult, error)
}

type AuthHandler struct {
	LoginUC    loginUseCase
	RegisterUC registerUseCase
	Logger     *logrus.Logger
}

func NewAuthHandler(login *application.LoginHandler, register *application.RegisterHandler, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{LoginUC: login, RegisterUC: register, Logger: logger}
}

// loginRequest only checks presence; a malformed email must fail like any
// other bad credential.
type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpwd"`
}

type tokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.LoginUC.Handle(c.Request.Context(), application.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, tokenResponse{Token: res.Token, Username: res.Username}, "login successful")
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.RegisterUC.Handle(c.Request.Context(), application.RegisterCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, tokenResponse{Token: res.Token, Username: res.Username}, "registration successful")
}
