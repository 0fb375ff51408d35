package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
	"github.com/oksasatya/go-ddd-auth/internal/domain/valueobject"
)

// Querier is the subset of pgxpool.Pool the repository needs. pgxmock satisfies it in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id::text, email, username, password_hash, is_email_verified, created_at, updated_at`

func (r *UserRepository) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email.String())
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapRead(err, "find by email")
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id.String())
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapRead(err, "find by id")
	}
	return u, nil
}

// Create relies on the unique index on users.email; a concurrent duplicate
// surfaces as ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, email valueobject.Email, username valueobject.Username, hash valueobject.PasswordHash) (*entity.User, error) {
	u := &entity.User{Email: email, Username: username, PasswordHash: hash}
	var id string

	row := r.db.QueryRow(ctx, `
		INSERT INTO users (email, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id::text, is_email_verified, created_at, updated_at
	`, email.String(), username.String(), hash.String())

	if err := row.Scan(&id, &u.IsEmailVerified, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, repository.ErrDuplicateEmail
		}
		return nil, oops.Code("DB_QUERY_FAILED").With("op", "create user").Wrap(err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, oops.Code("DB_ROW_INVALID").With("id", id).Wrap(err)
	}
	u.ID = parsed
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id, email, username, hash string
		verified                  bool
		created, updated          time.Time
	)
	if err := row.Scan(&id, &email, &username, &hash, &verified, &created, &updated); err != nil {
		return nil, err
	}

	// Rows are re-validated; a row that no longer satisfies the value objects is corrupt.
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, oops.Code("DB_ROW_INVALID").With("field", "id").Wrap(err)
	}
	e, err := valueobject.ParseEmail(email)
	if err != nil {
		return nil, oops.Code("DB_ROW_INVALID").With("field", "email").Wrap(err)
	}
	un, err := valueobject.ParseUsername(username)
	if err != nil {
		return nil, oops.Code("DB_ROW_INVALID").With("field", "username").Wrap(err)
	}
	ph, err := valueobject.PasswordHashFromString(hash)
	if err != nil {
		return nil, oops.Code("DB_ROW_INVALID").With("field", "password_hash").Wrap(err)
	}

	return &entity.User{
		ID:              parsedID,
		Email:           e,
		Username:        un,
		PasswordHash:    ph,
		IsEmailVerified: verified,
		CreatedAt:       created,
		UpdatedAt:       updated,
	}, nil
}

func wrapRead(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	if _, ok := oops.AsOops(err); ok {
		return err
	}
	return oops.Code("DB_QUERY_FAILED").With("op", op).Wrap(err)
}

var _ repository.UserRepository = (*UserRepository)(nil)
