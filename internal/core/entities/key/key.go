package key

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"

	"github.com/sergeii/sg41/internal/core/entities/indicator"
	"github.com/sergeii/sg41/pkg/sg41/machine"
	"github.com/sergeii/sg41/pkg/sg41/wheel"
)

var (
	ErrInvalidName     = errors.New("key name must contain at least one letter or digit")
	ErrInvalidPatterns = errors.New("invalid cam patterns")
)

// Key is the internal key of the machine, the cam patterns of the six wheels.
// A key is identified by the slug of its name.
type Key struct {
	Name      string
	Slug      string
	Pins      [][]bool
	CreatedAt time.Time
}

var Blank Key // nolint: gochecknoglobals

func New(name string, patterns []string, createdAt time.Time) (Key, error) {
	keySlug := slug.Make(name)
	if keySlug == "" {
		return Blank, ErrInvalidName
	}
	pins, err := ParsePatterns(patterns)
	if err != nil {
		return Blank, err
	}
	return Key{
		Name:      name,
		Slug:      keySlug,
		Pins:      pins,
		CreatedAt: createdAt,
	}, nil
}

func MustNew(name string, patterns []string, createdAt time.Time) Key {
	k, err := New(name, patterns, createdAt)
	if err != nil {
		panic(err)
	}
	return k
}

// ParsePatterns reads six strings of 0 and 1, one per wheel.
func ParsePatterns(patterns []string) ([][]bool, error) {
	if len(patterns) != machine.Wheels {
		return nil, fmt.Errorf("%w: expected %d patterns, got %d", ErrInvalidPatterns, machine.Wheels, len(patterns))
	}
	pins := make([][]bool, machine.Wheels)
	for i, pattern := range patterns {
		wheelPins, err := wheel.ParsePattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: wheel %d: %w", ErrInvalidPatterns, i+1, err)
		}
		if len(wheelPins) != machine.WheelSizes[i] {
			return nil, fmt.Errorf(
				"%w: wheel %d has %d cams, got %d",
				ErrInvalidPatterns, i+1, machine.WheelSizes[i], len(wheelPins),
			)
		}
		pins[i] = wheelPins
	}
	return pins, nil
}

func (k Key) Patterns() []string {
	patterns := make([]string, len(k.Pins))
	for i, pins := range k.Pins {
		patterns[i] = wheel.FormatPattern(pins)
	}
	return patterns
}

// Machine sets up a fresh machine with this key at the given indicator.
func (k Key) Machine(ind indicator.Indicator) (*machine.SG41, error) {
	return machine.New(k.Pins, ind.Positions())
}

func (k Key) String() string {
	return k.Slug
}
