package recoverindicator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/sg41/internal/core/entities/indicator"
	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/metrics"
	"github.com/sergeii/sg41/pkg/sg41/machine"
	"github.com/sergeii/sg41/pkg/sg41/wheelset"
)

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrUnableToObtainKey = errors.New("unable to obtain key from repository")
	ErrInvalidCrib       = errors.New("invalid crib")
	ErrInvalidStream     = errors.New("invalid keystream")
	ErrInvalidPosition   = errors.New("invalid known wheel position")
	ErrSearchTimeout     = errors.New("wheelsetting search took too long")
	ErrSearchFailed      = errors.New("wheelsetting search failed")
)

type UseCaseOpts struct {
	Workers int
	Timeout time.Duration
}

type UseCase struct {
	keyRepo repositories.KeyRepository
	clock   clockwork.Clock
	metrics *metrics.Collector
	logger  *zerolog.Logger
	opts    UseCaseOpts
}

func New(
	keyRepo repositories.KeyRepository,
	clock clockwork.Clock,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
	opts UseCaseOpts,
) UseCase {
	return UseCase{
		keyRepo: keyRepo,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
		opts:    opts,
	}
}

type Request struct {
	keySlug    string
	stream     []int
	plaintext  string
	ciphertext string
	known      map[int][]int
}

// NewStreamRequest searches for the indicators that produce the given printer offsets.
func NewStreamRequest(keySlug string, stream []int) Request {
	return Request{
		keySlug: keySlug,
		stream:  stream,
	}
}

// NewCribRequest searches for the indicators that turn plaintext into ciphertext.
func NewCribRequest(keySlug string, plaintext, ciphertext string) Request {
	return Request{
		keySlug:    keySlug,
		plaintext:  plaintext,
		ciphertext: ciphertext,
	}
}

// WithKnown narrows the search for a wheel (numbered 1 to 6) to the given positions.
func (r Request) WithKnown(wheelNo int, positions ...int) Request {
	known := make(map[int][]int, len(r.known)+1)
	for k, v := range r.known {
		known[k] = v
	}
	known[wheelNo] = positions
	r.known = known
	return r
}

func (uc UseCase) Execute(ctx context.Context, req Request) ([]indicator.Indicator, error) {
	stream, err := uc.makeStream(req)
	if err != nil {
		return nil, err
	}

	k, err := uc.keyRepo.Get(ctx, req.keySlug)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrKeyNotFound):
			return nil, ErrKeyNotFound
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		default:
			uc.logger.Error().Err(err).Str("key", req.keySlug).Msg("Unable to obtain key")
			return nil, ErrUnableToObtainKey
		}
	}

	opts := make([]wheelset.Option, 0, len(req.known)+1)
	if uc.opts.Workers > 0 {
		opts = append(opts, wheelset.WithWorkers(uc.opts.Workers))
	}
	for wheelNo, positions := range req.known {
		opts = append(opts, wheelset.WithPosition(wheelNo, positions...))
	}

	if uc.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.opts.Timeout)
		defer cancel()
	}

	started := uc.clock.Now()
	found, err := wheelset.Search(ctx, k.Pins, stream, opts...)
	uc.metrics.WheelsetDurations.Observe(uc.clock.Since(started).Seconds())
	if err != nil {
		uc.metrics.WheelsetErrors.Inc()
		return nil, uc.translateSearchError(err)
	}

	uc.metrics.WheelsetSearches.Inc()
	uc.metrics.WheelsetMatches.Add(float64(len(found)))

	indicators := make([]indicator.Indicator, 0, len(found))
	for _, positions := range found {
		ind, indErr := indicator.New(positions)
		if indErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrSearchFailed, indErr)
		}
		indicators = append(indicators, ind)
	}

	uc.logger.Info().
		Stringer("key", k).Int("length", len(stream)).Int("found", len(indicators)).
		Dur("took", uc.clock.Since(started)).
		Msg("Completed wheelsetting search")

	return indicators, nil
}

func (uc UseCase) makeStream(req Request) ([]int, error) {
	if req.stream != nil {
		return req.stream, nil
	}
	stream, err := wheelset.StreamFromCrib(req.plaintext, req.ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCrib, err)
	}
	if len(stream) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCrib, wheelset.ErrEmptyStream)
	}
	return stream, nil
}

func (uc UseCase) translateSearchError(err error) error {
	switch {
	case errors.Is(err, wheelset.ErrEmptyStream), errors.Is(err, wheelset.ErrInvalidDigit):
		return fmt.Errorf("%w: %w", ErrInvalidStream, err)
	case errors.Is(err, wheelset.ErrInvalidPosition):
		return fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	case errors.Is(err, context.DeadlineExceeded):
		uc.logger.Warn().Dur("timeout", uc.opts.Timeout).Msg("Wheelsetting search timed out")
		return ErrSearchTimeout
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, machine.ErrInvalidArgument):
		uc.logger.Error().Err(err).Msg("Stored key cannot be searched")
		return ErrSearchFailed
	default:
		uc.logger.Error().Err(err).Msg("Wheelsetting search failed")
		return ErrSearchFailed
	}
}
