package addkey

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/metrics"
)

var (
	ErrInvalidKey     = errors.New("invalid key")
	ErrKeyExists      = errors.New("key with the same name already exists")
	ErrUnableToAddKey = errors.New("unable to add key to repository")
)

type UseCase struct {
	keyRepo  repositories.KeyRepository
	validate *validator.Validate
	clock    clockwork.Clock
	metrics  *metrics.Collector
	logger   *zerolog.Logger
}

func New(
	keyRepo repositories.KeyRepository,
	validate *validator.Validate,
	clock clockwork.Clock,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		keyRepo:  keyRepo,
		validate: validate,
		clock:    clock,
		metrics:  metrics,
		logger:   logger,
	}
}

type Request struct {
	Name     string   `validate:"required,max=64"`
	Patterns []string `validate:"len=6,dive,pins"`
}

func NewRequest(name string, patterns []string) Request {
	return Request{
		Name:     name,
		Patterns: patterns,
	}
}

func (uc UseCase) Execute(ctx context.Context, req Request) (key.Key, error) {
	if err := uc.validate.Struct(req); err != nil {
		return key.Blank, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	k, err := key.New(req.Name, req.Patterns, uc.clock.Now())
	if err != nil {
		return key.Blank, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	added, err := uc.keyRepo.Add(ctx, k)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrKeyExists):
			return key.Blank, ErrKeyExists
		default:
			uc.logger.Error().
				Err(err).Stringer("key", k).
				Msg("Unable to add key")
			return key.Blank, ErrUnableToAddKey
		}
	}

	uc.metrics.KeyOperations.WithLabelValues("add").Inc()
	uc.logger.Info().Stringer("key", added).Msg("Added key")

	return added, nil
}
