package wheel_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/sg41/pkg/sg41/wheel"
)

func randomPins(n int) []bool {
	pins := make([]bool, n)
	for i := range pins {
		pins[i] = rand.IntN(2) == 1 // nolint: gosec
	}
	return pins
}

func TestWheel_New(t *testing.T) {
	w, err := wheel.New([]bool{false, true, false, false, true, true, false, true}, 4)
	require.NoError(t, err)
	assert.Equal(t, 8, w.Size())
	assert.Equal(t, 4, w.Position())
	assert.Equal(t, "01001101", w.Pattern())
}

func TestWheel_New_CopiesPins(t *testing.T) {
	pins := []bool{true, false, true}
	w := wheel.MustNew(pins, 0)
	pins[0] = false
	assert.True(t, w.Peek(0))
}

func TestWheel_New_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		pins     []bool
		position int
	}{
		{"no pins", nil, 0},
		{"empty pins", []bool{}, 0},
		{"negative position", make([]bool, 24), -1},
		{"position equals size", make([]bool, 24), 24},
		{"position beyond size", make([]bool, 24), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wheel.New(tt.pins, tt.position)
			assert.ErrorIs(t, err, wheel.ErrInvalidArgument)
		})
	}
}

func TestWheel_FromInts(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		wantErr bool
	}{
		{"valid", []int{0, 1, 0, 0, 1, 1, 0, 1}, false},
		{"non-boolean value", []int{0, 0, 1, 8, 1}, true},
		{"negative value", []int{1, -1, 0}, true},
		{"empty", []int{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := wheel.FromInts(tt.values, 0)
			if tt.wantErr {
				assert.ErrorIs(t, err, wheel.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.values), w.Size())
		})
	}
}

func TestWheel_Parse(t *testing.T) {
	w, err := wheel.Parse("0001101011000100010001101", 3)
	require.NoError(t, err)
	assert.Equal(t, 25, w.Size())
	assert.Equal(t, 3, w.Position())
	assert.True(t, w.Peek(0))
	assert.Equal(t, "0001101011000100010001101", w.Pattern())

	_, err = wheel.Parse("01a0", 0)
	assert.ErrorIs(t, err, wheel.ErrInvalidArgument)

	_, err = wheel.Parse("z", 0)
	assert.ErrorIs(t, err, wheel.ErrInvalidArgument)
}

func TestWheel_Step(t *testing.T) {
	pins := randomPins(25)
	w := wheel.MustNew(pins, 0)
	for i := range 25 {
		assert.Equal(t, i, w.Position())
		assert.Equal(t, pins[i], w.Peek(0))
		w.Step()
	}
	assert.Equal(t, 0, w.Position())
}

func TestWheel_Peek(t *testing.T) {
	for _, size := range []int{23, 24, 25} {
		pins := randomPins(size)
		w := wheel.MustNew(pins, 0)
		for i := range size {
			assert.Equal(t, pins[(i+8)%size], w.Peek(8))
			assert.Equal(t, pins[((i-5)%size+size)%size], w.Peek(-5))
			w.Step()
		}
		assert.Equal(t, 0, w.Position())
	}
}

func TestWheel_Peek_LargeOffsets(t *testing.T) {
	w := wheel.MustNew([]bool{true, false, false}, 0)
	assert.True(t, w.Peek(3))
	assert.True(t, w.Peek(-3))
	assert.True(t, w.Peek(-300))
	assert.False(t, w.Peek(-1))
	assert.False(t, w.Peek(-2))
}

func TestWheel_SetPosition(t *testing.T) {
	w := wheel.MustNew(make([]bool, 23), 0)
	require.NoError(t, w.SetPosition(22))
	assert.Equal(t, 22, w.Position())
	w.Step()
	assert.Equal(t, 0, w.Position())

	assert.ErrorIs(t, w.SetPosition(23), wheel.ErrInvalidArgument)
	assert.ErrorIs(t, w.SetPosition(-1), wheel.ErrInvalidArgument)
	assert.Equal(t, 0, w.Position())
}

func TestWheel_Pins_ReturnsCopy(t *testing.T) {
	w := wheel.MustNew([]bool{true, true}, 0)
	pins := w.Pins()
	pins[0] = false
	assert.True(t, w.Peek(0))
}
