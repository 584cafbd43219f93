package listkeys_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/core/usecases/listkeys"
	"github.com/sergeii/sg41/internal/testutils/factories/keyfactory"
)

type MockKeyRepository struct {
	mock.Mock
	repositories.KeyRepository
}

func (m *MockKeyRepository) List(ctx context.Context) ([]key.Key, error) {
	args := m.Called(ctx)
	return args.Get(0).([]key.Key), args.Error(1) // nolint: forcetypeassert
}

func TestListKeysUseCase_OK(t *testing.T) {
	ctx := context.TODO()

	items := []key.Key{
		keyfactory.Build(keyfactory.WithName("alpha")),
		keyfactory.Build(keyfactory.WithName("beta"), keyfactory.WithRandomPatterns()),
	}

	mockRepo := new(MockKeyRepository)
	mockRepo.On("List", ctx).Return(items, nil)

	logger := zerolog.Nop()
	uc := listkeys.New(mockRepo, &logger)
	got, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, items, got)

	mockRepo.AssertExpectations(t)
}

func TestListKeysUseCase_Error(t *testing.T) {
	ctx := context.TODO()

	mockRepo := new(MockKeyRepository)
	mockRepo.On("List", ctx).Return([]key.Key(nil), errors.New("connection reset"))

	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	uc := listkeys.New(mockRepo, &logger)
	_, err := uc.Execute(ctx)

	assert.ErrorIs(t, err, listkeys.ErrUnableToObtainKeys)
	assert.Contains(t, logs.String(), `"level":"error"`)
	assert.Contains(t, logs.String(), "Unable to obtain keys")

	mockRepo.AssertExpectations(t)
}
