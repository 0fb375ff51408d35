package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-auth/config"
	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/internal/bootstrap"
	"github.com/oksasatya/go-ddd-auth/pkg/helpers"
)

// seed registers a demo user through the same use case the API serves.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.Level())
	ctx := context.Background()

	store, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open user store: %v", err)
	}
	defer store.Close()

	tokens, err := bootstrap.NewTokens(cfg)
	if err != nil {
		log.Fatalf("failed to init token service: %v", err)
	}

	register := application.NewRegisterHandler(store.Repo, bootstrap.NewHasher(cfg), tokens, nil, logger)

	email := "demo@example.com"
	username := "demoUser"
	password := "Passw0rd!"
	res, err := register.Handle(ctx, application.RegisterCommand{Username: username, Email: email, Password: password})
	switch {
	case errors.Is(err, application.ErrConflict):
		fmt.Printf("user %s already exists\n", email)
		return
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: email=%s username=%s password=%s\ntoken=%s\n", email, res.Username, password, res.Token)
}
