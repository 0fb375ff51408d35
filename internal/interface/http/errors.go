package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-auth/pkg/response"
)

// writeError maps an application error onto a status and a generic message.
// Causes never reach the client; infrastructure failures are logged instead.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrIdentityInvalid):
		response.Fail(c, http.StatusBadRequest, "invalid identity", identityDetails(err))
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrConflict):
		response.Fail(c, http.StatusConflict, "email already registered", nil)
	default:
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"path":       c.Request.URL.Path,
			}).Error("request failed")
		}
		response.Fail(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

func identityDetails(err error) map[string]string {
	switch {
	case errors.Is(err, valueobject.ErrInvalidEmail):
		return map[string]string{"email": "invalid email"}
	case errors.Is(err, valueobject.ErrInvalidUsername):
		return map[string]string{"username": "invalid username"}
	default:
		return nil
	}
}
