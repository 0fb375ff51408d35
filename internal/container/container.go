package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/config"
	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
	"github.com/oksasatya/go-ddd-auth/internal/domain/security"
)

// app-level container to share constructed components across packages.
// Everything is set once in main before the router is built and only read afterwards.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	userRepo repository.UserRepository
	hasher   security.PasswordHasher
	tokens   security.TokenService
	notifier application.RegistrationNotifier
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetPGPool(p *pgxpool.Pool)  { pgPool = p }
func GetPGPool() *pgxpool.Pool   { return pgPool }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

func SetUserRepository(r repository.UserRepository) { userRepo = r }
func GetUserRepository() repository.UserRepository  { return userRepo }
func SetHasher(h security.PasswordHasher)           { hasher = h }
func GetHasher() security.PasswordHasher            { return hasher }
func SetTokens(t security.TokenService)             { tokens = t }
func GetTokens() security.TokenService              { return tokens }

// SetNotifier is optional; a nil notifier disables registration side effects.
func SetNotifier(n application.RegistrationNotifier) { notifier = n }
func GetNotifier() application.RegistrationNotifier  { return notifier }
