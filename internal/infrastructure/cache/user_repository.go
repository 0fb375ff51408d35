package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
	"github.com/oksasatya/go-ddd-auth/internal/domain/valueobject"
)

const keyPrefix = "user:profile:"

// UserRecord is the cached profile of a user. It is re-validated on the way
// out and never carries the password hash.
type UserRecord struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	IsEmailVerified bool      `json:"is_email_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserRepository caches FindByID results for ttl. A cache hit returns a user
// with an empty PasswordHash; FindByEmail and Create go straight to the inner
// repository so login always sees the current hash. Cache failures are logged
// and fall back to the inner repository.
type UserRepository struct {
	inner  repository.UserRepository
	store  Store
	ttl    time.Duration
	logger *logrus.Logger
}

func NewUserRepository(inner repository.UserRepository, store Store, ttl time.Duration, logger *logrus.Logger) *UserRepository {
	return &UserRepository{inner: inner, store: store, ttl: ttl, logger: logger}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	return r.inner.FindByEmail(ctx, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	key := keyPrefix + id.String()

	var rec UserRecord
	hit, err := r.store.GetJSON(ctx, key, &rec)
	if err != nil {
		r.warn(err, "cache read failed", key)
	}
	if hit {
		if u, ok := r.fromRecord(rec); ok {
			return u, nil
		}
		_ = r.store.Del(ctx, key)
	}

	u, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.store.SetJSON(ctx, key, toRecord(u), r.ttl); err != nil {
		r.warn(err, "cache write failed", key)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, email valueobject.Email, username valueobject.Username, hash valueobject.PasswordHash) (*entity.User, error) {
	return r.inner.Create(ctx, email, username, hash)
}

func (r *UserRepository) fromRecord(rec UserRecord) (*entity.User, bool) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, false
	}
	email, err := valueobject.ParseEmail(rec.Email)
	if err != nil {
		return nil, false
	}
	username, err := valueobject.ParseUsername(rec.Username)
	if err != nil {
		return nil, false
	}
	return &entity.User{
		ID:              id,
		Email:           email,
		Username:        username,
		IsEmailVerified: rec.IsEmailVerified,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}, true
}

func toRecord(u *entity.User) UserRecord {
	return UserRecord{
		ID:              u.ID.String(),
		Email:           u.Email.String(),
		Username:        u.Username.String(),
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (r *UserRepository) warn(err error, msg, key string) {
	if r.logger != nil {
		r.logger.WithError(err).WithField("key", key).Warn(msg)
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)
