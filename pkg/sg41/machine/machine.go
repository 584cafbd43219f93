package machine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sergeii/sg41/pkg/sg41/wheel"
)

/*
Simulation of the Schluesselgeraet 41 as described by Kopacz and Reuvers.

Every key press runs four phases over the six cam wheels:

	I/II    if wheel 6 senses an active cam five below the window, every wheel
	        steps once, and once more when its left neighbour senses an active cam
	III/IV  same as above regardless of wheel 6

Between the two halves the printer offset is sensed eight above the window.
Wheel 6 inverts the other five pins which are then weighted 1, 2, 4, 8 and 10.
The last weight is a property of the printer wiring and produces values in 0..25.
*/

const (
	Wheels   = 6
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	innerRing = "PAKRHFIDZQNXMTBWJVGSOCLYUE"
	outerRing = "FHRKAPEUYLCOSGVJWBTMXNQZDI"

	senseOffset = -5 // stepping cams
	printOffset = 8  // printer cams
)

var WheelSizes = [Wheels]int{25, 25, 23, 23, 24, 24} // nolint: gochecknoglobals

var prnWeights = [Wheels - 1]int{1, 2, 4, 8, 10} // nolint: gochecknoglobals

var (
	ErrInvalidArgument  = errors.New("sg41: invalid argument")
	ErrInvalidCharacter = errors.New("sg41: invalid character")
)

var innerIndex = func() [26]int { // nolint: gochecknoglobals
	var idx [26]int
	for i := range len(innerRing) {
		idx[innerRing[i]-'A'] = i
	}
	return idx
}()

// SG41 owns six wheels and nothing else.
// An instance must not be used from several goroutines at once.
type SG41 struct {
	wheels [Wheels]wheel.Wheel
}

// New validates the internal key (cam patterns) and the external key
// (starting positions) together. Nothing is built if either is wrong.
func New(pins [][]bool, positions []int) (*SG41, error) {
	if len(pins) != Wheels {
		return nil, fmt.Errorf("%w: expected %d cam patterns, got %d", ErrInvalidArgument, Wheels, len(pins))
	}
	if len(positions) != Wheels {
		return nil, fmt.Errorf("%w: expected %d wheel positions, got %d", ErrInvalidArgument, Wheels, len(positions))
	}
	m := &SG41{}
	for i := range Wheels {
		if len(pins[i]) != WheelSizes[i] {
			return nil, fmt.Errorf(
				"%w: wheel %d contains %d pins, but %d were specified",
				ErrInvalidArgument, i+1, WheelSizes[i], len(pins[i]),
			)
		}
		w, err := wheel.New(pins[i], positions[i])
		if err != nil {
			return nil, fmt.Errorf("%w: wheel %d cannot be set to position %d: %w", ErrInvalidArgument, i+1, positions[i], err)
		}
		m.wheels[i] = w
	}
	return m, nil
}

func MustNew(pins [][]bool, positions []int) *SG41 {
	m, err := New(pins, positions)
	if err != nil {
		panic(err)
	}
	return m
}

// SetPositions moves all six wheels to an explicit Grundstellung.
// The positions are validated as a whole before any wheel is moved.
func (m *SG41) SetPositions(positions []int) error {
	if len(positions) != Wheels {
		return fmt.Errorf("%w: expected %d wheel positions, got %d", ErrInvalidArgument, Wheels, len(positions))
	}
	for i, pos := range positions {
		if pos < 0 || pos >= WheelSizes[i] {
			return fmt.Errorf("%w: wheel %d cannot be set to position %d", ErrInvalidArgument, i+1, pos)
		}
	}
	for i, pos := range positions {
		if err := m.wheels[i].SetPosition(pos); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
	}
	return nil
}

func (m *SG41) Positions() []int {
	positions := make([]int, Wheels)
	for i := range m.wheels {
		positions[i] = m.wheels[i].Position()
	}
	return positions
}

// Pins returns a copy of the internal key.
func (m *SG41) Pins() [][]bool {
	pins := make([][]bool, Wheels)
	for i := range m.wheels {
		pins[i] = m.wheels[i].Pins()
	}
	return pins
}

// Clone returns an independent machine in the same state.
func (m *SG41) Clone() *SG41 {
	clone := *m
	return &clone
}

func (m *SG41) Encrypt(plaintext string) (string, error) {
	if err := validate(plaintext); err != nil {
		return "", fmt.Errorf("plaintext: %w", err)
	}
	return m.process(plaintext), nil
}

// Decrypt is the same transformation as Encrypt, the printer rings are reciprocal.
func (m *SG41) Decrypt(ciphertext string) (string, error) {
	if err := validate(ciphertext); err != nil {
		return "", fmt.Errorf("ciphertext: %w", err)
	}
	return m.process(ciphertext), nil
}

// Keystream advances the machine by n key presses and returns the printer offsets.
func (m *SG41) Keystream(n int) []int {
	stream := make([]int, 0, max(n, 0))
	for range n {
		stream = append(stream, m.next())
	}
	return stream
}

// Produces reports whether the next key presses yield exactly the given printer offsets.
// The machine is advanced up to and including the first mismatch.
func (m *SG41) Produces(stream []int) bool {
	for _, want := range stream {
		if m.next() != want {
			return false
		}
	}
	return true
}

func (m *SG41) process(stream string) string {
	var out strings.Builder
	out.Grow(len(stream))
	for i := range len(stream) {
		out.WriteByte(Substitute(stream[i], m.next()))
	}
	return out.String()
}

// next runs one full key press and returns the printer offset used for it.
func (m *SG41) next() int {
	if m.wheels[5].Peek(senseOffset) {
		m.advance()
	}
	prn := m.prn()
	m.advance()
	return prn
}

// advance steps wheels right to left, each with an extra step
// when the wheel to its left senses an active cam.
func (m *SG41) advance() {
	for i := Wheels - 1; i >= 0; i-- {
		if i > 0 && m.wheels[i-1].Peek(senseOffset) {
			m.wheels[i].Step()
		}
		m.wheels[i].Step()
	}
}

func (m *SG41) prn() int {
	invert := m.wheels[5].Peek(printOffset)
	prn := 0
	for i, weight := range prnWeights {
		if invert != m.wheels[i].Peek(printOffset) {
			prn += weight
		}
	}
	return prn
}

// Substitute prints c shifted by prn positions between the two printer rings.
// c must be an upper case latin letter.
func Substitute(c byte, prn int) byte {
	return outerRing[(innerIndex[c-'A']+prn)%len(outerRing)]
}

// Offset is the printer offset that turns plain into cipher.
func Offset(plain, cipher byte) (int, error) {
	if !isLetter(plain) || !isLetter(cipher) {
		return 0, ErrInvalidCharacter
	}
	n := len(outerRing)
	return (strings.IndexByte(outerRing, cipher) - innerIndex[plain-'A'] + n) % n, nil
}

func validate(text string) error {
	for i := range len(text) {
		if !isLetter(text[i]) {
			return fmt.Errorf("%w %q at %d", ErrInvalidCharacter, text[i], i)
		}
	}
	return nil
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
