package messageobserver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/metrics"
	"github.com/sergeii/sg41/internal/metrics/observers/messageobserver"
)

type MockMessageRepository struct {
	mock.Mock
	repositories.MessageRepository
}

func (m *MockMessageRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Get(0).(int), args.Error(1) // nolint: forcetypeassert
}

func TestMessageObserver_Observe_OK(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	collector := metrics.New()

	messageRepo := new(MockMessageRepository)
	messageRepo.On("Count", ctx).Return(120, nil)

	observer := messageobserver.New(collector, messageRepo, &logger)
	observer.Observe(ctx, collector)

	assert.Equal(t, float64(120), testutil.ToFloat64(collector.MessageRepositorySize))

	messageRepo.AssertExpectations(t)
}

func TestMessageObserver_Observe_RepoFailure(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	collector := metrics.New()

	messageRepo := new(MockMessageRepository)
	messageRepo.On("Count", ctx).Return(0, errors.New("repo failure"))

	observer := messageobserver.New(collector, messageRepo, &logger)
	observer.Observe(ctx, collector)

	assert.Equal(t, float64(0), testutil.ToFloat64(collector.MessageRepositorySize))

	messageRepo.AssertExpectations(t)
}
