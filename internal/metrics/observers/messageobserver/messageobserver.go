package messageobserver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/metrics"
)

type MessageObserver struct {
	messageRepo repositories.MessageRepository
	logger      *zerolog.Logger
}

func New(
	collector *metrics.Collector,
	messageRepo repositories.MessageRepository,
	logger *zerolog.Logger,
) MessageObserver {
	observer := MessageObserver{
		messageRepo: messageRepo,
		logger:      logger,
	}
	collector.AddObserver(&observer)
	return observer
}

func (o MessageObserver) Observe(ctx context.Context, m *metrics.Collector) {
	count, err := o.messageRepo.Count(ctx)
	if err != nil {
		o.logger.Error().Err(err).Msg("Unable to observe message count")
		return
	}
	m.MessageRepositorySize.Set(float64(count))
}
