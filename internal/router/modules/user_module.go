package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/domain/security"
	handlers "github.com/oksasatya/go-ddd-auth/internal/interface/http"
	"github.com/oksasatya/go-ddd-auth/internal/interface/middleware"
)

// UserModule serves routes behind the bearer-token gate:
// GET /user/info
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  security.TokenService
	Logger  *logrus.Logger
}

func NewUserModule(h *handlers.UserHandler, tokens security.TokenService, logger *logrus.Logger) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens, Logger: logger}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	user.Use(middleware.Auth(m.Tokens, m.Logger))
	{
		user.GET("/info", m.Handler.Info)
	}
}
