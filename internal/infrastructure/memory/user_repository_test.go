package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
	"github.com/oksasatya/go-ddd-auth/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-auth/internal/infrastructure/memory"
)

func mustIdentity(t *testing.T, email, username string) (valueobject.Email, valueobject.Username, valueobject.PasswordHash) {
	t.Helper()
	e, err := valueobject.ParseEmail(email)
	require.NoError(t, err)
	u, err := valueobject.ParseUsername(username)
	require.NoError(t, err)
	h, err := valueobject.PasswordHashFromString("$2a$10$0123456789012345678901")
	require.NoError(t, err)
	return e, u, h
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	email, username, hash := mustIdentity(t, "alice@example.com", "alice01")

	created, err := repo.Create(ctx, email, username, hash)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.IsEmailVerified)

	byEmail, err := repo.FindByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice01", byID.Username.String())
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	email, _, _ := mustIdentity(t, "ghost@example.com", "ghost")

	_, err := repo.FindByEmail(ctx, email)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	email, username, hash := mustIdentity(t, "alice@example.com", "alice01")
	_, err := repo.Create(ctx, email, username, hash)
	require.NoError(t, err)

	_, other, _ := mustIdentity(t, "alice@example.com", "alice02")
	_, err = repo.Create(ctx, email, other, hash)
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_ConcurrentCreateSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	email, username, hash := mustIdentity(t, "race@example.com", "racer")

	const attempts = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, email, username, hash)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if assert.ErrorIs(t, err, repository.ErrDuplicateEmail) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	email, username, hash := mustIdentity(t, "bob@example.com", "bob")
	u, err := repo.Create(ctx, email, username, hash)
	require.NoError(t, err)

	repo.Delete(u.ID)

	_, err = repo.FindByID(ctx, u.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.Create(ctx, email, username, hash)
	assert.NoError(t, err)
}

func TestUserRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := memory.NewUserRepository()
	email, username, hash := mustIdentity(t, "carol@example.com", "carol")

	_, err := repo.Create(ctx, email, username, hash)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.FindByEmail(context.Background(), email)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
