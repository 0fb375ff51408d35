package application_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	"github.com/oksasatya/go-ddd-auth/internal/domain/repository"
	"github.com/oksasatya/go-ddd-auth/internal/domain/security"
	"github.com/oksasatya/go-ddd-auth/internal/domain/valueobject"
)

const fakeHashPrefix = "$2fake$"

// fakeHasher produces reversible bcrypt-looking hashes and counts calls.
type fakeHasher struct {
	hashErr   error
	verifyErr error
	hashes    atomic.Int32
	verifies  atomic.Int32
}

func (f *fakeHasher) Hash(_ context.Context, password string) (string, error) {
	f.hashes.Add(1)
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return fakeHashPrefix + password, nil
}

func (f *fakeHasher) Verify(_ context.Context, password, hash string) (bool, error) {
	f.verifies.Add(1)
	if f.verifyErr != nil {
		return false, f.verifyErr
	}
	return strings.TrimPrefix(hash, fakeHashPrefix) == password, nil
}

// fakeTokens encodes the user id directly into the token.
type fakeTokens struct {
	signErr error
}

func (f *fakeTokens) Sign(id uuid.UUID) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	return "tok." + id.String(), nil
}

func (f *fakeTokens) Verify(token string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimPrefix(token, "tok."))
	if err != nil {
		return uuid.Nil, security.ErrInvalidToken
	}
	return id, nil
}

// brokenRepo fails every call with err.
type brokenRepo struct {
	err error
}

func (b brokenRepo) FindByEmail(context.Context, valueobject.Email) (*entity.User, error) {
	return nil, b.err
}

func (b brokenRepo) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, b.err
}

func (b brokenRepo) Create(context.Context, valueobject.Email, valueobject.Username, valueobject.PasswordHash) (*entity.User, error) {
	return nil, b.err
}

// racyRepo lets every FindByEmail miss so the pre-check never catches a duplicate.
type racyRepo struct {
	repository.UserRepository
}

func (r racyRepo) FindByEmail(context.Context, valueobject.Email) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

type recordingNotifier struct {
	err   error
	calls atomic.Int32
}

func (n *recordingNotifier) UserRegistered(context.Context, *entity.User) error {
	n.calls.Add(1)
	return n.err
}

var errBoom = errors.New("boom")
