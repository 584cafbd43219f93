package getkey

import (
	"context"
	"errors"

	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/repositories"
)

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrUnableToObtainKey = errors.New("unable to obtain key from repository")
)

type UseCase struct {
	keyRepo repositories.KeyRepository
}

func New(
	keyRepo repositories.KeyRepository,
) UseCase {
	return UseCase{
		keyRepo: keyRepo,
	}
}

func (uc UseCase) Execute(ctx context.Context, slug string) (key.Key, error) {
	k, err := uc.keyRepo.Get(ctx, slug)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrKeyNotFound):
			return key.Blank, ErrKeyNotFound
		default:
			return key.Blank, ErrUnableToObtainKey
		}
	}
	return k, nil
}
