package indicator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sergeii/sg41/pkg/sg41/machine"
)

// wheels 1-4 are lettered without J
const letters = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

var ErrInvalidIndicator = errors.New("invalid indicator")

// Indicator is a Grundstellung, the starting positions of the six wheels.
type Indicator [machine.Wheels]int

var Blank Indicator // nolint: gochecknoglobals

func New(positions []int) (Indicator, error) {
	var ind Indicator
	if len(positions) != machine.Wheels {
		return Blank, fmt.Errorf("%w: expected %d positions, got %d", ErrInvalidIndicator, machine.Wheels, len(positions))
	}
	for i, pos := range positions {
		if pos < 0 || pos >= machine.WheelSizes[i] {
			return Blank, fmt.Errorf("%w: wheel %d cannot be set to position %d", ErrInvalidIndicator, i+1, pos)
		}
		ind[i] = pos
	}
	return ind, nil
}

func MustNew(positions []int) Indicator {
	ind, err := New(positions)
	if err != nil {
		panic(err)
	}
	return ind
}

// Parse reads the labels printed on the wheels, e.g. "A B C D 01 00".
// Labels can be separated with spaces, commas or dashes.
func Parse(value string) (Indicator, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == ',' || r == '-'
	})
	if len(fields) != machine.Wheels {
		return Blank, fmt.Errorf("%w: expected %d labels, got %d", ErrInvalidIndicator, machine.Wheels, len(fields))
	}
	var ind Indicator
	for i, field := range fields {
		pos, ok := position(i, strings.ToUpper(field))
		if !ok {
			return Blank, fmt.Errorf("%w: wheel %d has no label %q", ErrInvalidIndicator, i+1, field)
		}
		ind[i] = pos
	}
	return ind, nil
}

func MustParse(value string) Indicator {
	ind, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return ind
}

func (ind Indicator) Positions() []int {
	return ind[:]
}

func (ind Indicator) Labels() []string {
	labels := make([]string, machine.Wheels)
	for i, pos := range ind {
		labels[i] = Label(i, pos)
	}
	return labels
}

func (ind Indicator) String() string {
	return strings.Join(ind.Labels(), " ")
}

// Label returns the mark printed on the wheel (numbered from 0) at the given position.
func Label(wheelIdx int, pos int) string {
	switch wheelIdx {
	case 4:
		return fmt.Sprintf("%02d", pos+1)
	case 5:
		// marked in steps of 2.5
		return fmt.Sprintf("%02d", pos*5/2)
	default:
		return string(letters[pos])
	}
}

func position(wheelIdx int, label string) (int, bool) {
	for pos := range machine.WheelSizes[wheelIdx] {
		if Label(wheelIdx, pos) == label {
			return pos, true
		}
	}
	return 0, false
}
