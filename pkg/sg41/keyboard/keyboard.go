package keyboard

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultShift = "JJ"

	// digits 0-9 share keys with the top letter row
	figures = "PQWERTZUIO"
	space   = 'J'
)

var ErrInvalidShift = errors.New("keyboard: shift sequence must be a non-empty sequence of letters A-Z")

// Keyboard adapts free text to the 26 letters the machine accepts and back.
// Spaces are typed as J (J itself becomes I), and digits are typed
// on the top letter row between two shift sequences.
type Keyboard struct {
	shift string
}

type Option func(*Keyboard) error

func WithShift(seq string) Option {
	return func(k *Keyboard) error {
		if !isValidShift(seq) {
			return ErrInvalidShift
		}
		k.shift = seq
		return nil
	}
}

func New(opts ...Option) (*Keyboard, error) {
	k := &Keyboard{shift: DefaultShift}
	for _, opt := range opts {
		if err := opt(k); err != nil {
			return nil, err
		}
	}
	return k, nil
}

func MustNew(opts ...Option) *Keyboard {
	k, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return k
}

func (k *Keyboard) Shift() string {
	return k.shift
}

// Encode types text on the machine keyboard.
// Characters that have no key are dropped.
func (k *Keyboard) Encode(text string) string {
	var out strings.Builder
	shifted := false
	for _, ch := range upper(fold(text)) {
		switch ch {
		case 'J':
			ch = 'I'
		case ' ':
			ch = space
		}
		switch {
		case ch >= 'A' && ch <= 'Z':
			if shifted {
				out.WriteString(k.shift)
				shifted = false
			}
			out.WriteRune(ch)
		case ch >= '0' && ch <= '9':
			if !shifted {
				out.WriteString(k.shift)
				shifted = true
			}
			out.WriteByte(figures[ch-'0'])
		}
	}
	return out.String()
}

// Decode turns printed machine text back into readable text.
// Shifted letters that have no figure are shown as '?'.
func (k *Keyboard) Decode(printed string) string {
	var out strings.Builder
	shifted := false
	for i := 0; i < len(printed); {
		if strings.HasPrefix(printed[i:], k.shift) {
			shifted = !shifted
			i += len(k.shift)
			continue
		}
		ch := printed[i]
		switch {
		case ch == space:
			out.WriteByte(' ')
		case shifted:
			if digit := strings.IndexByte(figures, ch); digit >= 0 {
				out.WriteByte(byte('0' + digit))
			} else {
				out.WriteByte('?')
			}
		default:
			out.WriteByte(ch)
		}
		i++
	}
	return out.String()
}

// fold strips diacritics so that e.g. "ü" is typed as "u".
func fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}

// upper follows German casing rules, so "ß" becomes "SS".
func upper(text string) string {
	return cases.Upper(language.German).String(text)
}

func isValidShift(seq string) bool {
	if seq == "" {
		return false
	}
	for i := range len(seq) {
		if seq[i] < 'A' || seq[i] > 'Z' {
			return false
		}
	}
	return true
}
