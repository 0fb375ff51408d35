package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-ddd-auth/internal/container"
	"github.com/oksasatya/go-ddd-auth/internal/infrastructure/memory"
	"github.com/oksasatya/go-ddd-auth/internal/infrastructure/security"
	"github.com/oksasatya/go-ddd-auth/pkg/validation"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	tokens, err := security.NewJWTService("router-test-secret", time.Hour)
	require.NoError(t, err)
	container.SetUserRepository(memory.NewUserRepository())
	container.SetHasher(security.NewHasher(security.NewBcryptHasher(bcrypt.MinCost), 2))
	container.SetTokens(tokens)

	r := gin.New()
	reg := NewRegistry(r)
	InitModules(reg)
	reg.RegisterAll()
	return r
}

func TestRoutes(t *testing.T) {
	r := newEngine(t)

	body, _ := json.Marshal(map[string]string{"username": "alice01", "email": "alice@example.com", "password": "Str0ng!Pass"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/user/info", nil)
	req.Header.Set("Authorization", "Bearer "+env.Data.Token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/info", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/info", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
