package keyobserver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/metrics"
)

type cached interface {
	Cached() int
}

type KeyObserver struct {
	keyRepo repositories.KeyRepository
	logger  *zerolog.Logger
}

func New(
	collector *metrics.Collector,
	keyRepo repositories.KeyRepository,
	logger *zerolog.Logger,
) KeyObserver {
	observer := KeyObserver{
		keyRepo: keyRepo,
		logger:  logger,
	}
	collector.AddObserver(&observer)
	return observer
}

func (o KeyObserver) Observe(ctx context.Context, m *metrics.Collector) {
	o.observeKeyRepoSize(ctx, m)
	o.observeKeyCacheSize(m)
}

func (o KeyObserver) observeKeyRepoSize(ctx context.Context, m *metrics.Collector) {
	count, err := o.keyRepo.Count(ctx)
	if err != nil {
		o.logger.Error().Err(err).Msg("Unable to observe key count")
		return
	}
	m.KeyRepositorySize.Set(float64(count))
}

// only applies when the repository is fronted by a cache
func (o KeyObserver) observeKeyCacheSize(m *metrics.Collector) {
	if cache, ok := o.keyRepo.(cached); ok {
		m.KeyCacheSize.Set(float64(cache.Cached()))
	}
}
