// Package offline holds the commands that drive the machine directly from the command line,
// without the key store and the journal.
package offline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/sergeii/sg41/internal/core/entities/indicator"
	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/usecases/generatekey"
	"github.com/sergeii/sg41/pkg/sg41/keyboard"
	"github.com/sergeii/sg41/pkg/sg41/machine"
	"github.com/sergeii/sg41/pkg/sg41/wheelset"
)

var ErrNoIndicator = errors.New("either --indicator or --positions is required")

type CryptFlags struct {
	Pins      []string `help:"Cam patterns of the six wheels, strings of 0 and 1"                required:""`
	Indicator string   `help:"Wheel labels to start from, e.g. \"A B C D 01 00\""                xor:"start"`
	Positions []int    `help:"Wheel positions to start from, e.g. 0,1,2,3,0,0"                   xor:"start"`
	Keyboard  bool     `help:"Type free text on the machine keyboard, spaces and digits included"`
	Shift     string   `default:"JJ" help:"Letters typed to switch the keyboard between letters and figures"`
	Final     bool     `help:"Also print the wheel labels after the last character"`

	Text string `arg:"" help:"Text to process"`
}

func (f CryptFlags) setUp() (*machine.SG41, *keyboard.Keyboard, error) {
	pins, err := key.ParsePatterns(f.Pins)
	if err != nil {
		return nil, nil, err
	}

	var ind indicator.Indicator
	switch {
	case f.Indicator != "":
		ind, err = indicator.Parse(f.Indicator)
	case f.Positions != nil:
		ind, err = indicator.New(f.Positions)
	default:
		err = ErrNoIndicator
	}
	if err != nil {
		return nil, nil, err
	}

	m, err := machine.New(pins, ind.Positions())
	if err != nil {
		return nil, nil, err
	}

	var kb *keyboard.Keyboard
	if f.Keyboard {
		if kb, err = keyboard.New(keyboard.WithShift(f.Shift)); err != nil {
			return nil, nil, err
		}
	}

	return m, kb, nil
}

func (f CryptFlags) printResult(w io.Writer, m *machine.SG41, output string) error {
	if _, err := fmt.Fprintln(w, output); err != nil {
		return err
	}
	if f.Final {
		final, err := indicator.New(m.Positions())
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w, final); err != nil {
			return err
		}
	}
	return nil
}

type EncryptCmd struct {
	CryptFlags
}

func (c *EncryptCmd) Run() error {
	return c.Execute(os.Stdout)
}

func (c *EncryptCmd) Execute(w io.Writer) error {
	m, kb, err := c.setUp()
	if err != nil {
		return err
	}
	text := c.Text
	if kb != nil {
		text = kb.Encode(text)
	}
	output, err := m.Encrypt(text)
	if err != nil {
		return err
	}
	return c.printResult(w, m, output)
}

type DecryptCmd struct {
	CryptFlags
}

func (c *DecryptCmd) Run() error {
	return c.Execute(os.Stdout)
}

func (c *DecryptCmd) Execute(w io.Writer) error {
	m, kb, err := c.setUp()
	if err != nil {
		return err
	}
	output, err := m.Decrypt(c.Text)
	if err != nil {
		return err
	}
	if kb != nil {
		output = kb.Decode(output)
	}
	return c.printResult(w, m, output)
}

type KeygenCmd struct {
	Joined bool `help:"Print the patterns on a single line, ready to be passed to --pins"`
}

func (c *KeygenCmd) Run() error {
	return c.Execute(os.Stdout)
}

func (c *KeygenCmd) Execute(w io.Writer) error {
	patterns := generatekey.RandomPatterns()
	sep := "\n"
	if c.Joined {
		sep = ","
	}
	_, err := fmt.Fprintln(w, strings.Join(patterns, sep))
	return err
}

type WheelsetCmd struct {
	Pins       []string      `help:"Cam patterns of the six wheels, strings of 0 and 1"             required:""`
	Stream     []int         `help:"Printer offsets, 0 to 25 each"                                  xor:"source"`
	Plaintext  string        `help:"Known plaintext of the crib"                                    xor:"source"`
	Ciphertext string        `help:"Ciphertext of the crib"`
	Known      map[int]int   `help:"Known position of a wheel, e.g. 3=2 for the third wheel at C"`
	Workers    int           `default:"0"   help:"Number of goroutines to search on, 0 uses every CPU"`
	Timeout    time.Duration `default:"10m" help:"Aborts the search after this long"`
}

func (c *WheelsetCmd) Run() error {
	return c.Execute(context.Background(), os.Stdout)
}

func (c *WheelsetCmd) Execute(ctx context.Context, w io.Writer) error {
	pins, err := key.ParsePatterns(c.Pins)
	if err != nil {
		return err
	}

	stream := c.Stream
	if stream == nil {
		if stream, err = wheelset.StreamFromCrib(c.Plaintext, c.Ciphertext); err != nil {
			return err
		}
	}

	opts := make([]wheelset.Option, 0, len(c.Known)+1)
	if c.Workers > 0 {
		opts = append(opts, wheelset.WithWorkers(c.Workers))
	}
	wheels := make([]int, 0, len(c.Known))
	for wheelNo := range c.Known {
		wheels = append(wheels, wheelNo)
	}
	slices.Sort(wheels)
	for _, wheelNo := range wheels {
		opts = append(opts, wheelset.WithPosition(wheelNo, c.Known[wheelNo]))
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	found, err := wheelset.Search(ctx, pins, stream, opts...)
	if err != nil {
		return err
	}

	for _, positions := range found {
		ind, indErr := indicator.New(positions)
		if indErr != nil {
			return indErr
		}
		if _, err = fmt.Fprintln(w, ind); err != nil {
			return err
		}
	}
	return nil
}
