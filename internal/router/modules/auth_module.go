package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-auth/internal/interface/http"
)

// AuthModule serves the public credential endpoints:
// POST /auth/login, POST /auth/register
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", m.Handler.Login)
	auth.POST("/register", m.Handler.Register)
}
