package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/domain/security"
	"github.com/oksasatya/go-ddd-auth/pkg/response"
)

const CtxUserIDKey = "userID"

// Rejection reasons, logged at debug level only.
const (
	reasonMissingToken    = "missing_token"
	reasonMalformedHeader = "malformed_header"
	reasonInvalidToken    = "invalid_token"
)

// Auth verifies the bearer token in the Authorization header and stores the
// subject under CtxUserIDKey. Every rejection is the same 401 response.
func Auth(tokens security.TokenService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, reason := bearerToken(c.GetHeader("Authorization"))
		if reason != "" {
			reject(c, logger, reason, nil)
			return
		}
		userID, err := tokens.Verify(token)
		if err != nil {
			reject(c, logger, reasonInvalidToken, err)
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext returns the subject set by Auth.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func bearerToken(header string) (string, string) {
	if header == "" {
		return "", reasonMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", reasonMalformedHeader
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", reasonMalformedHeader
	}
	return token, ""
}

func reject(c *gin.Context, logger *logrus.Logger, reason string, err error) {
	if logger != nil {
		entry := logger.WithFields(logrus.Fields{
			"reason":     reason,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
		})
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Debug("request rejected by auth")
	}
	response.Fail(c, http.StatusUnauthorized, "unauthorized", nil)
}
