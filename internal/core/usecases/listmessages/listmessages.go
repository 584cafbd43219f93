package listmessages

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sergeii/sg41/internal/core/entities/message"
	"github.com/sergeii/sg41/internal/core/repositories"
)

var ErrUnableToObtainMessages = errors.New("unable to obtain messages from repository")

type UseCaseOpts struct {
	MaxLimit int
}

type UseCase struct {
	messageRepo repositories.MessageRepository
	logger      *zerolog.Logger
	opts        UseCaseOpts
}

func New(
	messageRepo repositories.MessageRepository,
	logger *zerolog.Logger,
	opts UseCaseOpts,
) UseCase {
	return UseCase{
		messageRepo: messageRepo,
		logger:      logger,
		opts:        opts,
	}
}

// Execute returns the most recent messages, newest first.
// The limit is capped by the configured maximum, a non-positive limit means the maximum.
func (uc UseCase) Execute(ctx context.Context, limit int) ([]message.Message, error) {
	if limit <= 0 || (uc.opts.MaxLimit > 0 && limit > uc.opts.MaxLimit) {
		limit = uc.opts.MaxLimit
	}
	items, err := uc.messageRepo.List(ctx, limit)
	if err != nil {
		uc.logger.Error().Err(err).Int("limit", limit).Msg("Unable to obtain messages")
		return nil, ErrUnableToObtainMessages
	}
	return items, nil
}
