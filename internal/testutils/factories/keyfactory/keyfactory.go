package keyfactory

import (
	"context"
	"fmt"
	"time"

	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/testutils"
	"github.com/sergeii/sg41/pkg/random"
	"github.com/sergeii/sg41/pkg/sg41/machine"
	"github.com/sergeii/sg41/pkg/sg41/wheel"
)

type BuildParams struct {
	Name      string
	Patterns  []string
	CreatedAt time.Time
}

type BuildOption func(*BuildParams)

func WithName(name string) BuildOption {
	return func(p *BuildParams) {
		p.Name = name
	}
}

func WithRandomName() BuildOption {
	return func(p *BuildParams) {
		p.Name = fmt.Sprintf("key %d", random.RandInt(1, 1_000_000))
	}
}

func WithPatterns(patterns []string) BuildOption {
	return func(p *BuildParams) {
		p.Patterns = patterns
	}
}

func WithRandomPatterns() BuildOption {
	return func(p *BuildParams) {
		patterns := make([]string, machine.Wheels)
		for i, size := range machine.WheelSizes {
			patterns[i] = wheel.FormatPattern(random.RandBits(size))
		}
		p.Patterns = patterns
	}
}

func WithCreatedAt(createdAt time.Time) BuildOption {
	return func(p *BuildParams) {
		p.CreatedAt = createdAt
	}
}

func Build(opts ...BuildOption) key.Key {
	params := BuildParams{
		Name:      "Reference",
		Patterns:  testutils.ReferencePatterns,
		CreatedAt: time.Date(1944, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	for _, opt := range opts {
		opt(&params)
	}

	return key.MustNew(params.Name, params.Patterns, params.CreatedAt)
}

func Save(
	ctx context.Context,
	repo repositories.KeyRepository,
	k key.Key,
) key.Key {
	saved, err := repo.Add(ctx, k)
	if err != nil {
		panic(err)
	}
	return saved
}

func Create(
	ctx context.Context,
	repo repositories.KeyRepository,
	opts ...BuildOption,
) key.Key {
	k := Build(opts...)
	return Save(ctx, repo, k)
}
