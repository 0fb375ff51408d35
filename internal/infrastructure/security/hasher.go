package security

import (
	"context"
	"strings"

	"github.com/samber/oops"
	"golang.org/x/sync/semaphore"

	domainsec "github.com/oksasatya/go-ddd-auth/internal/domain/security"
)

// Hasher implements the password hashing capability on top of one or more
// schemes. New hashes use the primary scheme; Verify picks the scheme by the
// stored hash prefix, so users hashed under an older scheme still log in.
//
// At most `workers` hash operations run at once. Callers beyond that wait on
// the semaphore, and give up when their context ends.
type Hasher struct {
	primary Scheme
	schemes []Scheme
	sem     *semaphore.Weighted
}

func NewHasher(primary Scheme, workers int, others ...Scheme) *Hasher {
	if workers < 1 {
		workers = 1
	}
	return &Hasher{
		primary: primary,
		schemes: append([]Scheme{primary}, others...),
		sem:     semaphore.NewWeighted(int64(workers)),
	}
}

func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", oops.Code("AUTH_HASH_CANCELLED").Wrap(err)
	}
	defer h.sem.Release(1)
	return h.primary.Hash(password)
}

func (h *Hasher) Verify(ctx context.Context, password, hash string) (bool, error) {
	scheme := h.schemeFor(hash)
	if scheme == nil {
		return false, ErrUnknownScheme
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, oops.Code("AUTH_HASH_CANCELLED").Wrap(err)
	}
	defer h.sem.Release(1)
	return scheme.Verify(password, hash)
}

func (h *Hasher) schemeFor(hash string) Scheme {
	for _, s := range h.schemes {
		if strings.HasPrefix(hash, s.Prefix()) {
			return s
		}
	}
	return nil
}

var _ domainsec.PasswordHasher = (*Hasher)(nil)
