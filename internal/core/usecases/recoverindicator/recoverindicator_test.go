package recoverindicator_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/sg41/internal/core/entities/indicator"
	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/core/usecases/recoverindicator"
	"github.com/sergeii/sg41/internal/metrics"
	"github.com/sergeii/sg41/internal/persistence/redis/repositories/keys"
	tu "github.com/sergeii/sg41/internal/testutils"
	"github.com/sergeii/sg41/internal/testutils/factories/keyfactory"
	"github.com/sergeii/sg41/internal/testutils/testredis"
)

type MockKeyRepository struct {
	mock.Mock
	repositories.KeyRepository
}

func (m *MockKeyRepository) Get(ctx context.Context, slug string) (key.Key, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(key.Key), args.Error(1) // nolint: forcetypeassert
}

func makeUseCase(
	t *testing.T,
	opts recoverindicator.UseCaseOpts,
) (recoverindicator.UseCase, *metrics.Collector) {
	ctx := context.TODO()
	repo := keys.New(testredis.MakeClient(t))
	keyfactory.Create(ctx, repo)

	collector := metrics.New()
	logger := zerolog.Nop()
	uc := recoverindicator.New(repo, clockwork.NewFakeClock(), collector, &logger, opts)
	return uc, collector
}

func TestRecoverIndicatorUseCase_Stream(t *testing.T) {
	ctx := context.TODO()
	uc, collector := makeUseCase(t, recoverindicator.UseCaseOpts{Workers: 2})

	req := recoverindicator.NewStreamRequest("reference", tu.ReferenceStream).
		WithKnown(3, 2).
		WithKnown(4, 3).
		WithKnown(5, 0).
		WithKnown(6, 0)
	found, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.Equal(t, tu.ReferenceIndicator, found[0].String())

	assert.Equal(t, float64(1), testutil.ToFloat64(collector.WheelsetSearches))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.WheelsetMatches))
	assert.Equal(t, float64(0), testutil.ToFloat64(collector.WheelsetErrors))
}

func TestRecoverIndicatorUseCase_Crib(t *testing.T) {
	ctx := context.TODO()
	uc, _ := makeUseCase(t, recoverindicator.UseCaseOpts{})

	req := recoverindicator.NewCribRequest("reference", tu.ReferencePlaintext[:12], tu.ReferenceCiphertext[:12]).
		WithKnown(1, 0).
		WithKnown(2, 1).
		WithKnown(3, 2)
	found, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []indicator.Indicator{indicator.MustParse(tu.ReferenceIndicator)}, found)
}

func TestRecoverIndicatorUseCase_CandidateSets(t *testing.T) {
	ctx := context.TODO()
	uc, _ := makeUseCase(t, recoverindicator.UseCaseOpts{})

	req := recoverindicator.NewStreamRequest("reference", tu.ReferenceStream).
		WithKnown(3, 0, 1, 2).
		WithKnown(4, 3, 4).
		WithKnown(5, 0).
		WithKnown(6, 0, 23)
	found, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []indicator.Indicator{indicator.MustParse(tu.ReferenceIndicator)}, found)
}

func TestRecoverIndicatorUseCase_WithKnownDoesNotShareState(t *testing.T) {
	ctx := context.TODO()
	uc, _ := makeUseCase(t, recoverindicator.UseCaseOpts{})

	base := recoverindicator.NewStreamRequest("reference", tu.ReferenceStream).
		WithKnown(3, 2).
		WithKnown(4, 3).
		WithKnown(5, 0)
	matching := base.WithKnown(6, 0)
	_ = base.WithKnown(6, 1)

	found, err := uc.Execute(ctx, matching)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestRecoverIndicatorUseCase_NoMatches(t *testing.T) {
	ctx := context.TODO()
	uc, collector := makeUseCase(t, recoverindicator.UseCaseOpts{})

	req := recoverindicator.NewStreamRequest("reference", tu.ReferenceStream).
		WithKnown(1, 5).
		WithKnown(2, 5).
		WithKnown(3, 5).
		WithKnown(4, 5)
	found, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.Empty(t, found)
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.WheelsetSearches))
	assert.Equal(t, float64(0), testutil.ToFloat64(collector.WheelsetMatches))
}

func TestRecoverIndicatorUseCase_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		req     recoverindicator.Request
		wantErr error
	}{
		{
			"crib lengths differ",
			recoverindicator.NewCribRequest("reference", "ABC", "ABCD"),
			recoverindicator.ErrInvalidCrib,
		},
		{
			"crib is empty",
			recoverindicator.NewCribRequest("reference", "", ""),
			recoverindicator.ErrInvalidCrib,
		},
		{
			"crib has invalid characters",
			recoverindicator.NewCribRequest("reference", "abc", "ABC"),
			recoverindicator.ErrInvalidCrib,
		},
		{
			"stream is empty",
			recoverindicator.NewStreamRequest("reference", []int{}),
			recoverindicator.ErrInvalidStream,
		},
		{
			"stream digit out of range",
			recoverindicator.NewStreamRequest("reference", []int{6, 26, 2}),
			recoverindicator.ErrInvalidStream,
		},
		{
			"unknown wheel",
			recoverindicator.NewStreamRequest("reference", tu.ReferenceStream).WithKnown(7, 0),
			recoverindicator.ErrInvalidPosition,
		},
		{
			"position beyond wheel size",
			recoverindicator.NewStreamRequest("reference", tu.ReferenceStream).WithKnown(3, 23),
			recoverindicator.ErrInvalidPosition,
		},
		{
			"no positions",
			recoverindicator.NewStreamRequest("reference", tu.ReferenceStream).WithKnown(1),
			recoverindicator.ErrInvalidPosition,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()
			uc, _ := makeUseCase(t, recoverindicator.UseCaseOpts{})

			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecoverIndicatorUseCase_Timeout(t *testing.T) {
	ctx := context.TODO()
	uc, collector := makeUseCase(t, recoverindicator.UseCaseOpts{Workers: 1, Timeout: time.Millisecond})

	_, err := uc.Execute(ctx, recoverindicator.NewStreamRequest("reference", tu.ReferenceStream))
	assert.ErrorIs(t, err, recoverindicator.ErrSearchTimeout)

	assert.Equal(t, float64(1), testutil.ToFloat64(collector.WheelsetErrors))
	assert.Equal(t, float64(0), testutil.ToFloat64(collector.WheelsetSearches))
}

func TestRecoverIndicatorUseCase_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.TODO())
	uc, _ := makeUseCase(t, recoverindicator.UseCaseOpts{})

	cancel()
	_, err := uc.Execute(ctx, recoverindicator.NewStreamRequest("reference", tu.ReferenceStream))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecoverIndicatorUseCase_KeyErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{
			"not found",
			repositories.ErrKeyNotFound,
			recoverindicator.ErrKeyNotFound,
		},
		{
			"unexpected error",
			errors.New("connection reset"),
			recoverindicator.ErrUnableToObtainKey,
		},
		{
			"context cancelled",
			fmt.Errorf("failed to get key: %w", context.Canceled),
			context.Canceled,
		},
		{
			"deadline exceeded",
			fmt.Errorf("failed to get key: %w", context.DeadlineExceeded),
			context.DeadlineExceeded,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()
			logger := zerolog.Nop()

			mockRepo := new(MockKeyRepository)
			mockRepo.On("Get", ctx, "reference").Return(key.Blank, tt.repoErr)

			uc := recoverindicator.New(
				mockRepo, clockwork.NewFakeClock(), metrics.New(), &logger, recoverindicator.UseCaseOpts{},
			)
			_, err := uc.Execute(ctx, recoverindicator.NewStreamRequest("reference", tu.ReferenceStream))
			assert.ErrorIs(t, err, tt.wantErr)

			mockRepo.AssertExpectations(t)
		})
	}
}
