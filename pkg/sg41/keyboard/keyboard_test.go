package keyboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/sg41/pkg/sg41/keyboard"
	"github.com/sergeii/sg41/pkg/sg41/machine"
)

func TestKeyboard_Encode(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{
			"Schlusselgerat Forty-One",
			"SCHLUSSELGERATJFORTYONE",
		},
		{
			"Schlusselgerat 41",
			"SCHLUSSELGERATJJJRQ",
		},
		{
			"Schlusselgerat 41 Cipher Machine",
			"SCHLUSSELGERATJJJRQJJJCIPHERJMACHINE",
		},
		{
			"Jolly Jack and joyful Jill, jumping down the jagged hill.",
			"IOLLYJIACKJANDJIOYFULJIILLJIUMPINGJDOWNJTHEJIAGGEDJHILL",
		},
		{
			"Schlüsselgerät 41",
			"SCHLUSSELGERATJJJRQ",
		},
		{
			"Straße 12",
			"STRASSEJJJQW",
		},
		{
			"Grüße aus Gießen",
			"GRUSSEJAUSJGIESSEN",
		},
		{
			"1234567890",
			"JJQWERTZUIOP",
		},
		{
			"",
			"",
		},
		{
			"!?,.-",
			"",
		},
	}
	kb := keyboard.MustNew()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, kb.Encode(tt.text))
		})
	}
}

func TestKeyboard_Decode(t *testing.T) {
	tests := []struct {
		printed string
		want    string
	}{
		{
			"SCHLUSSELGERATJFORTYONE",
			"SCHLUSSELGERAT FORTYONE",
		},
		{
			"SCHLUSSELGERATJJJRQ",
			"SCHLUSSELGERAT 41",
		},
		{
			"SCHLUSSELGERATJJJRQJJJCIPHERJMACHINE",
			"SCHLUSSELGERAT 41 CIPHER MACHINE",
		},
		{
			"IOLLYJIACKJANDJIOYFULJIILLJIUMPINGJDOWNJTHEJIAGGEDJHILL",
			"IOLLY IACK AND IOYFUL IILL IUMPING DOWN THE IAGGED HILL",
		},
		{
			"JJQWERTZUIOP",
			"1234567890",
		},
		{
			"JJQAXP",
			"1??0",
		},
		{
			"J",
			" ",
		},
		{
			"",
			"",
		},
	}
	kb := keyboard.MustNew()
	for _, tt := range tests {
		t.Run(tt.printed, func(t *testing.T) {
			assert.Equal(t, tt.want, kb.Decode(tt.printed))
		})
	}
}

func TestKeyboard_CustomShift(t *testing.T) {
	kb, err := keyboard.New(keyboard.WithShift("XY"))
	require.NoError(t, err)
	assert.Equal(t, "XY", kb.Shift())

	assert.Equal(t, "AXYQ", kb.Encode("a1"))
	assert.Equal(t, "XYQXYA", kb.Encode("1a"))
	assert.Equal(t, "A1", kb.Decode("AXYQ"))
	assert.Equal(t, "1A", kb.Decode("XYQXYA"))
	assert.Equal(t, "RUN 2 A", kb.Decode(kb.Encode("run 2 a")))
}

func TestKeyboard_DefaultShift(t *testing.T) {
	kb := keyboard.MustNew()
	assert.Equal(t, keyboard.DefaultShift, kb.Shift())
	assert.Equal(t, "JJ", kb.Shift())
}

func TestKeyboard_InvalidShift(t *testing.T) {
	for _, seq := range []string{"", "jj", "J1", "J J", "Ü"} {
		t.Run(seq, func(t *testing.T) {
			_, err := keyboard.New(keyboard.WithShift(seq))
			assert.ErrorIs(t, err, keyboard.ErrInvalidShift)
		})
	}
}

func TestKeyboard_EncodeProducesMachineAlphabet(t *testing.T) {
	kb := keyboard.MustNew()
	encoded := kb.Encode("Über 9000 Funksprüche, café & crème brûlée: 12.05.1942")
	for i := range len(encoded) {
		assert.Contains(t, machine.Alphabet, string(encoded[i]))
	}
}
