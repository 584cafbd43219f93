package cryptmessage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/sg41/internal/core/entities/indicator"
	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/entities/message"
	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/metrics"
	"github.com/sergeii/sg41/pkg/sg41/keyboard"
	"github.com/sergeii/sg41/pkg/sg41/machine"
)

var (
	ErrKeyNotFound            = errors.New("key not found")
	ErrUnableToObtainKey      = errors.New("unable to obtain key from repository")
	ErrUnknownDirection       = errors.New("unknown direction")
	ErrInvalidText            = errors.New("text contains characters the machine cannot process")
	ErrUnableToSetUpMachine   = errors.New("unable to set up machine")
	ErrUnableToJournalMessage = errors.New("unable to journal message")
)

type UseCaseOpts struct {
	KeyboardShift string
}

type UseCase struct {
	keyRepo     repositories.KeyRepository
	messageRepo repositories.MessageRepository
	keyboard    *keyboard.Keyboard
	clock       clockwork.Clock
	metrics     *metrics.Collector
	logger      *zerolog.Logger
}

func New(
	keyRepo repositories.KeyRepository,
	messageRepo repositories.MessageRepository,
	clock clockwork.Clock,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
	opts UseCaseOpts,
) (UseCase, error) {
	kbOpts := make([]keyboard.Option, 0, 1)
	if opts.KeyboardShift != "" {
		kbOpts = append(kbOpts, keyboard.WithShift(opts.KeyboardShift))
	}
	kb, err := keyboard.New(kbOpts...)
	if err != nil {
		return UseCase{}, err
	}
	return UseCase{
		keyRepo:     keyRepo,
		messageRepo: messageRepo,
		keyboard:    kb,
		clock:       clock,
		metrics:     metrics,
		logger:      logger,
	}, nil
}

type Request struct {
	keySlug   string
	direction message.Direction
	indicator indicator.Indicator
	text      string
	keyboard  bool
}

// NewRequest describes a message to be processed with the key at the given indicator.
// With typed set, plaintext is passed through the keyboard: free text is typed
// before encryption, and printed text is read back after decryption.
func NewRequest(
	keySlug string,
	direction message.Direction,
	ind indicator.Indicator,
	text string,
	typed bool,
) Request {
	return Request{
		keySlug:   keySlug,
		direction: direction,
		indicator: ind,
		text:      text,
		keyboard:  typed,
	}
}

type Response struct {
	Message message.Message
	// wheel positions after the last character
	Final indicator.Indicator
}

func (uc UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.direction != message.Encrypt && req.direction != message.Decrypt {
		return Response{}, ErrUnknownDirection
	}

	k, err := uc.getKey(ctx, req.keySlug)
	if err != nil {
		return Response{}, err
	}

	m, err := k.Machine(req.indicator)
	if err != nil {
		uc.logger.Error().
			Err(err).Stringer("key", k).Stringer("indicator", req.indicator).
			Msg("Unable to set up machine with stored key")
		return Response{}, ErrUnableToSetUpMachine
	}

	output, err := uc.run(m, req)
	if err != nil {
		uc.metrics.CryptErrors.WithLabelValues(req.direction.String()).Inc()
		return Response{}, err
	}

	final, err := indicator.New(m.Positions())
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrUnableToSetUpMachine, err)
	}

	msg := message.New(k.Slug, req.direction, req.indicator, req.text, output, uc.clock.Now())
	if err = uc.messageRepo.Add(ctx, msg); err != nil {
		uc.logger.Error().
			Err(err).Stringer("key", k).Stringer("direction", req.direction).
			Msg("Unable to journal message")
		return Response{}, ErrUnableToJournalMessage
	}

	uc.logger.Debug().
		Str("id", msg.ID).Stringer("key", k).Stringer("direction", req.direction).
		Stringer("indicator", req.indicator).Int("length", len(output)).
		Msg("Processed message")

	return Response{
		Message: msg,
		Final:   final,
	}, nil
}

func (uc UseCase) getKey(ctx context.Context, slug string) (key.Key, error) {
	k, err := uc.keyRepo.Get(ctx, slug)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrKeyNotFound):
			return key.Blank, ErrKeyNotFound
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return key.Blank, err
		default:
			uc.logger.Error().Err(err).Str("key", slug).Msg("Unable to obtain key")
			return key.Blank, ErrUnableToObtainKey
		}
	}
	return k, nil
}

func (uc UseCase) run(m *machine.SG41, req Request) (string, error) {
	direction := req.direction.String()
	timer := uc.clock.Now()
	defer func() {
		uc.metrics.CryptDurations.WithLabelValues(direction).Observe(uc.clock.Since(timer).Seconds())
	}()

	input := req.text
	if req.keyboard && req.direction == message.Encrypt {
		input = uc.keyboard.Encode(input)
	}

	var output string
	var err error
	if req.direction == message.Encrypt {
		output, err = m.Encrypt(input)
	} else {
		output, err = m.Decrypt(input)
	}
	if err != nil {
		if errors.Is(err, machine.ErrInvalidCharacter) {
			return "", fmt.Errorf("%w: %w", ErrInvalidText, err)
		}
		return "", err
	}

	if req.keyboard && req.direction == message.Decrypt {
		output = uc.keyboard.Decode(output)
	}

	uc.metrics.CryptRequests.WithLabelValues(direction).Inc()
	uc.metrics.CryptCharacters.WithLabelValues(direction).Add(float64(len(input)))

	return output, nil
}
