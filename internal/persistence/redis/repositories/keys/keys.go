package keys

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/repositories"
)

const itemsKey = "keys:items"

type Repository struct {
	client *redis.Client
}

type storedKey struct {
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Patterns  []string  `json:"patterns"`
	CreatedAt time.Time `json:"created_at"`
}

func New(client *redis.Client) *Repository {
	return &Repository{
		client: client,
	}
}

func (r *Repository) Add(ctx context.Context, k key.Key) (key.Key, error) {
	item, err := json.Marshal(storedKey{
		Name:      k.Name,
		Slug:      k.Slug,
		Patterns:  k.Patterns(),
		CreatedAt: k.CreatedAt,
	})
	if err != nil {
		return key.Blank, fmt.Errorf("failed to marshal key: %w", err)
	}

	// keys are immutable, an existing key is never overwritten
	added, err := r.client.HSetNX(ctx, itemsKey, k.Slug, item).Result()
	if err != nil {
		return key.Blank, fmt.Errorf("failed to add key: %w", err)
	}
	if !added {
		return key.Blank, repositories.ErrKeyExists
	}

	return k, nil
}

func (r *Repository) Get(ctx context.Context, slug string) (key.Key, error) {
	value, err := r.client.HGet(ctx, itemsKey, slug).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return key.Blank, repositories.ErrKeyNotFound
		}
		return key.Blank, fmt.Errorf("failed to get key: %w", err)
	}
	return decodeKey(value)
}

func (r *Repository) Remove(ctx context.Context, slug string) error {
	removed, err := r.client.HDel(ctx, itemsKey, slug).Result()
	if err != nil {
		return fmt.Errorf("failed to remove key: %w", err)
	}
	if removed == 0 {
		return repositories.ErrKeyNotFound
	}
	return nil
}

// List returns all stored keys ordered by slug.
func (r *Repository) List(ctx context.Context) ([]key.Key, error) {
	items, err := r.client.HGetAll(ctx, itemsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	keys := make([]key.Key, 0, len(items))
	for _, value := range items {
		k, decodeErr := decodeKey(value)
		if decodeErr != nil {
			return nil, decodeErr
		}
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b key.Key) int {
		return strings.Compare(a.Slug, b.Slug)
	})

	return keys, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.client.HLen(ctx, itemsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count keys: %w", err)
	}
	return int(count), nil
}

func decodeKey(value string) (key.Key, error) {
	var item storedKey
	if err := json.Unmarshal([]byte(value), &item); err != nil {
		return key.Blank, fmt.Errorf("failed to unmarshal key: %w", err)
	}
	pins, err := key.ParsePatterns(item.Patterns)
	if err != nil {
		return key.Blank, fmt.Errorf("stored key %s is corrupt: %w", item.Slug, err)
	}
	return key.Key{
		Name:      item.Name,
		Slug:      item.Slug,
		Pins:      pins,
		CreatedAt: item.CreatedAt,
	}, nil
}
