package listkeys

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/repositories"
)

var ErrUnableToObtainKeys = errors.New("unable to obtain keys from repository")

type UseCase struct {
	keyRepo repositories.KeyRepository
	logger  *zerolog.Logger
}

func New(
	keyRepo repositories.KeyRepository,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		keyRepo: keyRepo,
		logger:  logger,
	}
}

func (uc UseCase) Execute(ctx context.Context) ([]key.Key, error) {
	keys, err := uc.keyRepo.List(ctx)
	if err != nil {
		uc.logger.Error().Err(err).Msg("Unable to obtain keys")
		return nil, ErrUnableToObtainKeys
	}
	return keys, nil
}
