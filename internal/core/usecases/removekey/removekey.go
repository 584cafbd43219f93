package removekey

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/metrics"
)

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrUnableToRemoveKey = errors.New("unable to remove key from repository")
)

type UseCase struct {
	keyRepo repositories.KeyRepository
	metrics *metrics.Collector
	logger  *zerolog.Logger
}

func New(
	keyRepo repositories.KeyRepository,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		keyRepo: keyRepo,
		metrics: metrics,
		logger:  logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, slug string) error {
	if err := uc.keyRepo.Remove(ctx, slug); err != nil {
		switch {
		case errors.Is(err, repositories.ErrKeyNotFound):
			return ErrKeyNotFound
		default:
			uc.logger.Error().
				Err(err).Str("key", slug).
				Msg("Unable to remove key")
			return ErrUnableToRemoveKey
		}
	}

	uc.metrics.KeyOperations.WithLabelValues("remove").Inc()
	uc.logger.Info().Str("key", slug).Msg("Removed key")

	return nil
}
