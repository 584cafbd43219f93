package getkey_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/core/usecases/getkey"
	"github.com/sergeii/sg41/internal/testutils/factories/keyfactory"
)

type MockKeyRepository struct {
	mock.Mock
	repositories.KeyRepository
}

func (m *MockKeyRepository) Get(ctx context.Context, slug string) (key.Key, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(key.Key), args.Error(1) // nolint: forcetypeassert
}

func TestGetKeyUseCase_OK(t *testing.T) {
	ctx := context.TODO()

	k := keyfactory.Build(keyfactory.WithName("Netz 41"))

	mockRepo := new(MockKeyRepository)
	mockRepo.On("Get", ctx, "netz-41").Return(k, nil)

	uc := getkey.New(mockRepo)
	got, err := uc.Execute(ctx, "netz-41")

	assert.NoError(t, err)
	assert.Equal(t, k, got)

	mockRepo.AssertExpectations(t)
}

func TestGetKeyUseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{
			"not found",
			repositories.ErrKeyNotFound,
			getkey.ErrKeyNotFound,
		},
		{
			"unexpected error",
			errors.New("connection reset"),
			getkey.ErrUnableToObtainKey,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()

			mockRepo := new(MockKeyRepository)
			mockRepo.On("Get", ctx, "netz-41").Return(key.Blank, tt.repoErr)

			uc := getkey.New(mockRepo)
			_, err := uc.Execute(ctx, "netz-41")

			assert.ErrorIs(t, err, tt.wantErr)

			mockRepo.AssertExpectations(t)
		})
	}
}
