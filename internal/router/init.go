package router

import (
	"context"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/internal/container"
	handlers "github.com/oksasatya/go-ddd-auth/internal/interface/http"
	"github.com/oksasatya/go-ddd-auth/internal/router/modules"
)

type AuthModuleDeps struct {
	Login    *application.LoginHandler
	Register *application.RegisterHandler
	Profile  *application.GetProfileHandler
}

func buildAuthDeps() AuthModuleDeps {
	repo := container.GetUserRepository()
	hasher := container.GetHasher()
	tokens := container.GetTokens()
	logger := container.GetLogger()

	return AuthModuleDeps{
		Login:    application.NewLoginHandler(repo, hasher, tokens, logger),
		Register: application.NewRegisterHandler(repo, hasher, tokens, container.GetNotifier(), logger),
		Profile:  application.NewGetProfileHandler(repo, logger),
	}
}

func healthChecks() map[string]handlers.Check {
	checks := map[string]handlers.Check{}
	if pool := container.GetPGPool(); pool != nil {
		checks["postgres"] = pool.Ping
	}
	if rdb := container.GetRedis(); rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	return checks
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildAuthDeps()
	logger := container.GetLogger()

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(healthChecks())))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(deps.Login, deps.Register, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(deps.Profile, logger), container.GetTokens(), logger))
}
