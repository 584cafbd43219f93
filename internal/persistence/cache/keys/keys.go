package keys

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/repositories"
)

type Opts struct {
	TTL time.Duration
}

// Repository keeps recently used keys in memory in front of another key repository.
// Keys are immutable once stored, so a cached key is stale only after its removal,
// which goes through the cache as well.
type Repository struct {
	repo  repositories.KeyRepository
	cache *gocache.Cache
}

func New(repo repositories.KeyRepository, opts Opts) *Repository {
	return &Repository{
		repo:  repo,
		cache: gocache.New(opts.TTL, opts.TTL*2),
	}
}

func (r *Repository) Add(ctx context.Context, k key.Key) (key.Key, error) {
	added, err := r.repo.Add(ctx, k)
	if err != nil {
		return key.Blank, err
	}
	r.cache.SetDefault(added.Slug, added)
	return added, nil
}

func (r *Repository) Get(ctx context.Context, slug string) (key.Key, error) {
	if cached, ok := r.cache.Get(slug); ok {
		return cached.(key.Key), nil // nolint: forcetypeassert
	}
	k, err := r.repo.Get(ctx, slug)
	if err != nil {
		return key.Blank, err
	}
	r.cache.SetDefault(slug, k)
	return k, nil
}

func (r *Repository) Remove(ctx context.Context, slug string) error {
	r.cache.Delete(slug)
	return r.repo.Remove(ctx, slug)
}

func (r *Repository) List(ctx context.Context) ([]key.Key, error) {
	return r.repo.List(ctx)
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	return r.repo.Count(ctx)
}

// Cached is the number of keys currently held in memory, expired ones included.
func (r *Repository) Cached() int {
	return r.cache.ItemCount()
}
