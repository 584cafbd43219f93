package repositories

import (
	"context"

	"github.com/sergeii/sg41/internal/core/entities/key"
)

type KeyRepository interface {
	Add(ctx context.Context, k key.Key) (key.Key, error)
	Get(ctx context.Context, slug string) (key.Key, error)
	Remove(ctx context.Context, slug string) error
	List(ctx context.Context) ([]key.Key, error)
	Count(ctx context.Context) (int, error)
}
