package listmessages_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sergeii/sg41/internal/core/entities/message"
	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/core/usecases/listmessages"
	"github.com/sergeii/sg41/internal/testutils/factories/messagefactory"
)

type MockMessageRepository struct {
	mock.Mock
	repositories.MessageRepository
}

func (m *MockMessageRepository) List(ctx context.Context, limit int) ([]message.Message, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]message.Message), args.Error(1) // nolint: forcetypeassert
}

func TestListMessagesUseCase_Limit(t *testing.T) {
	tests := []struct {
		name      string
		maxLimit  int
		limit     int
		wantLimit int
	}{
		{"within maximum", 50, 10, 10},
		{"at maximum", 50, 50, 50},
		{"above maximum", 50, 100, 50},
		{"zero means maximum", 50, 0, 50},
		{"negative means maximum", 50, -1, 50},
		{"no maximum", 0, 1000, 1000},
		{"no maximum and no limit", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()
			items := []message.Message{messagefactory.Build()}

			mockRepo := new(MockMessageRepository)
			mockRepo.On("List", ctx, tt.wantLimit).Return(items, nil)

			logger := zerolog.Nop()
			uc := listmessages.New(mockRepo, &logger, listmessages.UseCaseOpts{MaxLimit: tt.maxLimit})
			got, err := uc.Execute(ctx, tt.limit)

			assert.NoError(t, err)
			assert.Equal(t, items, got)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestListMessagesUseCase_Error(t *testing.T) {
	ctx := context.TODO()

	mockRepo := new(MockMessageRepository)
	mockRepo.On("List", ctx, 10).Return([]message.Message(nil), errors.New("connection reset"))

	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	uc := listmessages.New(mockRepo, &logger, listmessages.UseCaseOpts{MaxLimit: 50})
	_, err := uc.Execute(ctx, 10)

	assert.ErrorIs(t, err, listmessages.ErrUnableToObtainMessages)
	assert.Contains(t, logs.String(), `"level":"error"`)
	assert.Contains(t, logs.String(), `"error":"connection reset"`)
	assert.Contains(t, logs.String(), "Unable to obtain messages")

	mockRepo.AssertExpectations(t)
}
