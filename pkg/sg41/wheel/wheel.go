package wheel

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidArgument = errors.New("wheel: invalid argument")

// Wheel is a single cam wheel: a fixed ring of pins and the current
// rotational position. The zero value is not usable, use New.
type Wheel struct {
	pins     []bool
	position int
}

func New(pins []bool, position int) (Wheel, error) {
	if len(pins) == 0 {
		return Wheel{}, fmt.Errorf("%w: no pins", ErrInvalidArgument)
	}
	if position < 0 || position >= len(pins) {
		return Wheel{}, fmt.Errorf("%w: position %d out of range [0, %d)", ErrInvalidArgument, position, len(pins))
	}
	cams := make([]bool, len(pins))
	copy(cams, pins)
	return Wheel{pins: cams, position: position}, nil
}

func MustNew(pins []bool, position int) Wheel {
	w, err := New(pins, position)
	if err != nil {
		panic(err)
	}
	return w
}

// FromInts accepts 0/1 pin values, anything else is rejected.
func FromInts(values []int, position int) (Wheel, error) {
	pins := make([]bool, len(values))
	for i, v := range values {
		switch v {
		case 0:
			pins[i] = false
		case 1:
			pins[i] = true
		default:
			return Wheel{}, fmt.Errorf("%w: pin %d has non-boolean value %d", ErrInvalidArgument, i, v)
		}
	}
	return New(pins, position)
}

// ParsePattern reads a cam pattern written as a string of '0' and '1'.
func ParsePattern(pattern string) ([]bool, error) {
	pins := make([]bool, 0, len(pattern))
	for i, ch := range pattern {
		switch ch {
		case '0':
			pins = append(pins, false)
		case '1':
			pins = append(pins, true)
		default:
			return nil, fmt.Errorf("%w: pin %d has non-boolean value %q", ErrInvalidArgument, i, ch)
		}
	}
	return pins, nil
}

func Parse(pattern string, position int) (Wheel, error) {
	pins, err := ParsePattern(pattern)
	if err != nil {
		return Wheel{}, err
	}
	return New(pins, position)
}

// FormatPattern is the inverse of ParsePattern.
func FormatPattern(pins []bool) string {
	var b strings.Builder
	b.Grow(len(pins))
	for _, pin := range pins {
		if pin {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Peek returns the pin at the given offset from the current position.
// Negative offsets wrap around the wheel.
func (w *Wheel) Peek(offset int) bool {
	size := len(w.pins)
	idx := (w.position + offset) % size
	if idx < 0 {
		idx += size
	}
	return w.pins[idx]
}

func (w *Wheel) Step() {
	w.position = (w.position + 1) % len(w.pins)
}

func (w *Wheel) Position() int {
	return w.position
}

func (w *Wheel) SetPosition(position int) error {
	if position < 0 || position >= len(w.pins) {
		return fmt.Errorf("%w: position %d out of range [0, %d)", ErrInvalidArgument, position, len(w.pins))
	}
	w.position = position
	return nil
}

func (w *Wheel) Size() int {
	return len(w.pins)
}

func (w *Wheel) Pins() []bool {
	pins := make([]bool, len(w.pins))
	copy(pins, w.pins)
	return pins
}

func (w *Wheel) Pattern() string {
	return FormatPattern(w.pins)
}
