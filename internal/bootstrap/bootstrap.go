// Package bootstrap builds the adapters selected by configuration.
package bootstrap

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/config"
	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
	"github.com/oksasatya/go-ddd-auth/internal/infrastructure/cache"
	"github.com/oksasatya/go-ddd-auth/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-ddd-auth/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-auth/internal/infrastructure/security"
)

// NewHasher returns the configured primary scheme with the other scheme kept
// for verifying older hashes.
func NewHasher(cfg *config.Config) *security.Hasher {
	bc := security.NewBcryptHasher(cfg.BcryptCost)
	a2 := security.NewArgon2idHasher()
	if cfg.HashAlgo == config.HashArgon2id {
		return security.NewHasher(a2, cfg.HashWorkers, bc)
	}
	return security.NewHasher(bc, cfg.HashWorkers, a2)
}

func NewTokens(cfg *config.Config) (*security.JWTService, error) {
	var opts []security.JWTOption
	if cfg.JWTIssuer != "" {
		opts = append(opts, security.WithIssuer(cfg.JWTIssuer))
	}
	return security.NewJWTService(cfg.JWTSecret, cfg.JWTTTL, opts...)
}

// Store is the persistence selected by USER_STORE. Pool is nil for the memory store.
type Store struct {
	Repo repository.UserRepository
	Pool *pgxpool.Pool
}

func (s *Store) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// OpenStore connects and migrates Postgres, or returns the in-memory store.
func OpenStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Store, error) {
	if cfg.UserStore == config.StoreMemory {
		logger.Warn("using in-memory user store; data is lost on restart")
		return &Store{Repo: memory.NewUserRepository()}, nil
	}

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		return nil, err
	}
	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{Repo: pginfra.NewUserRepository(pool), Pool: pool}, nil
}

// WithProfileCache wraps repo in the Redis read-through cache when a TTL is set
// and Redis answers a ping. Otherwise repo is returned unchanged and the
// reported flag is false.
func WithProfileCache(ctx context.Context, repo repository.UserRepository, rdb *redis.Client, cfg *config.Config, logger *logrus.Logger) (repository.UserRepository, bool) {
	if rdb == nil || cfg.ProfileCacheTTL <= 0 {
		return repo, false
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("redis unavailable; profile cache disabled")
		return repo, false
	}
	return cache.NewUserRepository(repo, cache.NewRedisStore(rdb), cfg.ProfileCacheTTL, logger), true
}
