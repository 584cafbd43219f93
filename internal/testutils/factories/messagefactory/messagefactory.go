package messagefactory

import (
	"context"
	"time"

	"github.com/sergeii/sg41/internal/core/entities/indicator"
	"github.com/sergeii/sg41/internal/core/entities/message"
	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/testutils"
)

type BuildParams struct {
	KeySlug   string
	Direction message.Direction
	Indicator string
	Input     string
	Output    string
	CreatedAt time.Time
}

type BuildOption func(*BuildParams)

func WithKey(slug string) BuildOption {
	return func(p *BuildParams) {
		p.KeySlug = slug
	}
}

func WithDirection(direction message.Direction) BuildOption {
	return func(p *BuildParams) {
		p.Direction = direction
	}
}

func WithIndicator(ind string) BuildOption {
	return func(p *BuildParams) {
		p.Indicator = ind
	}
}

func WithText(input, output string) BuildOption {
	return func(p *BuildParams) {
		p.Input = input
		p.Output = output
	}
}

func WithCreatedAt(createdAt time.Time) BuildOption {
	return func(p *BuildParams) {
		p.CreatedAt = createdAt
	}
}

func Build(opts ...BuildOption) message.Message {
	params := BuildParams{
		KeySlug:   "reference",
		Direction: message.Encrypt,
		Indicator: testutils.ReferenceIndicator,
		Input:     testutils.ReferencePlaintext,
		Output:    testutils.ReferenceCiphertext,
		CreatedAt: time.Date(1944, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	for _, opt := range opts {
		opt(&params)
	}

	return message.New(
		params.KeySlug,
		params.Direction,
		indicator.MustParse(params.Indicator),
		params.Input,
		params.Output,
		params.CreatedAt,
	)
}

func Create(
	ctx context.Context,
	repo repositories.MessageRepository,
	opts ...BuildOption,
) message.Message {
	msg := Build(opts...)
	if err := repo.Add(ctx, msg); err != nil {
		panic(err)
	}
	return msg
}
