package wheelset

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sergeii/sg41/pkg/sg41/machine"
	"github.com/sergeii/sg41/pkg/sg41/wheel"
)

/*
Wheelsetting recovers the starting positions of the six wheels
given the cam patterns and a fragment of the printer offset stream,
for instance one obtained from a crib.

All 25*25*23*23*24*24 settings are simulated until the first mismatch.
Before that, pairs of positions for wheels 1 and 2 are discarded
when they cannot produce the first offset. The first two printer bits are
both inverted by wheel 6, so whether they are equal depends only on
wheels 1 and 2. Wheel 6 either triggers the phase I stepping or it doesn't,
and a pair is kept if any of the two outcomes fits.
*/

const maxDigit = 25

var (
	ErrEmptyStream     = errors.New("wheelset: keystream is empty")
	ErrInvalidDigit    = errors.New("wheelset: keystream digit is out of range")
	ErrCribMismatch    = errors.New("wheelset: plaintext and ciphertext lengths differ")
	ErrInvalidOption   = errors.New("wheelset: invalid option")
	ErrInvalidPosition = errors.New("wheelset: invalid wheel position")
)

// bitParity[d] holds which values of (bit1 != bit2) can make up printer offset d.
var bitParity = func() [maxDigit + 1][2]bool { // nolint: gochecknoglobals
	var table [maxDigit + 1][2]bool
	weights := []int{1, 2, 4, 8, 10}
	for bits := range 1 << len(weights) {
		digit := 0
		for i, w := range weights {
			if bits&(1<<i) != 0 {
				digit += w
			}
		}
		differ := (bits&1 != 0) != (bits&2 != 0)
		if differ {
			table[digit][1] = true
		} else {
			table[digit][0] = true
		}
	}
	return table
}()

type searchOpts struct {
	workers    int
	candidates [machine.Wheels][]int
}

type Option func(*searchOpts) error

func WithWorkers(workers int) Option {
	return func(o *searchOpts) error {
		if workers < 1 {
			return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidOption, workers)
		}
		o.workers = workers
		return nil
	}
}

// WithPosition limits the search for the given wheel (numbered 1 to 6) to known positions.
func WithPosition(wheelNo int, positions ...int) Option {
	return func(o *searchOpts) error {
		if wheelNo < 1 || wheelNo > machine.Wheels {
			return fmt.Errorf("%w: there is no wheel %d", ErrInvalidPosition, wheelNo)
		}
		if len(positions) == 0 {
			return fmt.Errorf("%w: no positions for wheel %d", ErrInvalidPosition, wheelNo)
		}
		size := machine.WheelSizes[wheelNo-1]
		for _, pos := range positions {
			if pos < 0 || pos >= size {
				return fmt.Errorf("%w: wheel %d cannot be set to position %d", ErrInvalidPosition, wheelNo, pos)
			}
		}
		o.candidates[wheelNo-1] = slices.Clone(positions)
		return nil
	}
}

// Search returns every Grundstellung whose keystream starts with stream,
// in lexicographic order.
func Search(ctx context.Context, pins [][]bool, stream []int, opts ...Option) ([][]int, error) {
	if len(stream) == 0 {
		return nil, ErrEmptyStream
	}
	for i, digit := range stream {
		if digit < 0 || digit > maxDigit {
			return nil, fmt.Errorf("%w: %d at %d", ErrInvalidDigit, digit, i)
		}
	}

	m, err := machine.New(pins, make([]int, machine.Wheels))
	if err != nil {
		return nil, err
	}

	o := searchOpts{workers: runtime.GOMAXPROCS(0)}
	for i, size := range machine.WheelSizes {
		o.candidates[i] = seq(size)
	}
	for _, opt := range opts {
		if optErr := opt(&o); optErr != nil {
			return nil, optErr
		}
	}

	pairs := prunePairs(pins, o.candidates[0], o.candidates[1], stream[0])

	var mutex sync.Mutex
	found := make([][]int, 0)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for _, pair := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			matches, searchErr := searchPair(gctx, m.Clone(), pair, o.candidates, stream)
			if searchErr != nil {
				return searchErr
			}
			if len(matches) > 0 {
				mutex.Lock()
				found = append(found, matches...)
				mutex.Unlock()
			}
			return nil
		})
	}
	if waitErr := g.Wait(); waitErr != nil {
		return nil, waitErr
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	slices.SortFunc(found, func(a, b []int) int {
		return slices.Compare(a, b)
	})
	return found, nil
}

// StreamFromCrib derives the printer offsets from a matching plaintext and ciphertext.
func StreamFromCrib(plaintext, ciphertext string) ([]int, error) {
	if len(plaintext) != len(ciphertext) {
		return nil, fmt.Errorf("%w: %d != %d", ErrCribMismatch, len(plaintext), len(ciphertext))
	}
	stream := make([]int, len(plaintext))
	for i := range len(plaintext) {
		offset, err := machine.Offset(plaintext[i], ciphertext[i])
		if err != nil {
			return nil, fmt.Errorf("crib at %d: %w", i, err)
		}
		stream[i] = offset
	}
	return stream, nil
}

func searchPair(
	ctx context.Context,
	m *machine.SG41,
	pair [2]int,
	candidates [machine.Wheels][]int,
	stream []int,
) ([][]int, error) {
	var matches [][]int
	positions := []int{pair[0], pair[1], 0, 0, 0, 0}
	for _, r3 := range candidates[2] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		positions[2] = r3
		for _, r4 := range candidates[3] {
			positions[3] = r4
			for _, r5 := range candidates[4] {
				positions[4] = r5
				for _, r6 := range candidates[5] {
					positions[5] = r6
					if err := m.SetPositions(positions); err != nil {
						return nil, err
					}
					if m.Produces(stream) {
						matches = append(matches, slices.Clone(positions))
					}
				}
			}
		}
	}
	return matches, nil
}

func prunePairs(pins [][]bool, first, second []int, digit int) [][2]int {
	allowed := bitParity[digit]
	pairs := make([][2]int, 0, len(first)*len(second))
	for _, r1 := range first {
		w1 := wheel.MustNew(pins[0], r1)
		for _, r2 := range second {
			w2 := wheel.MustNew(pins[1], r2)
			if allowed[parityAtRest(w1, w2)] || allowed[parityAfterStep(w1, w2)] {
				pairs = append(pairs, [2]int{r1, r2})
			}
		}
	}
	return pairs
}

// wheel 6 did not trigger the first half of the key press
func parityAtRest(w1, w2 wheel.Wheel) int {
	return b2i(w1.Peek(8) != w2.Peek(8))
}

// wheel 6 did trigger it: wheel 1 stepped once,
// wheel 2 once more if wheel 1 sensed an active cam
func parityAfterStep(w1, w2 wheel.Wheel) int {
	if w1.Peek(-5) {
		w2.Step()
	}
	w2.Step()
	w1.Step()
	return b2i(w1.Peek(8) != w2.Peek(8))
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
