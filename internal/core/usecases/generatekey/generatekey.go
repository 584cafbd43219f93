package generatekey

import (
	"context"

	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/usecases/addkey"
	"github.com/sergeii/sg41/pkg/random"
	"github.com/sergeii/sg41/pkg/sg41/machine"
	"github.com/sergeii/sg41/pkg/sg41/wheel"
)

type UseCase struct {
	addKey addkey.UseCase
}

func New(addKey addkey.UseCase) UseCase {
	return UseCase{
		addKey: addKey,
	}
}

// Execute stores a key with random cam patterns under the given name.
// The errors are those of addkey.
func (uc UseCase) Execute(ctx context.Context, name string) (key.Key, error) {
	return uc.addKey.Execute(ctx, addkey.NewRequest(name, RandomPatterns()))
}

// RandomPatterns draws cam patterns for the six wheels.
// A wheel with all cams in the same state is drawn again.
func RandomPatterns() []string {
	patterns := make([]string, machine.Wheels)
	for i, size := range machine.WheelSizes {
		var pins []bool
		for pins == nil || isUniform(pins) {
			pins = random.RandBits(size)
		}
		patterns[i] = wheel.FormatPattern(pins)
	}
	return patterns
}

func isUniform(pins []bool) bool {
	for _, pin := range pins[1:] {
		if pin != pins[0] {
			return false
		}
	}
	return true
}
