package message

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sergeii/sg41/internal/core/entities/indicator"
)

type Direction uint8

const (
	Encrypt Direction = iota + 1
	Decrypt
)

var ErrUnknownDirection = errors.New("unknown direction")

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

func ParseDirection(value string) (Direction, error) {
	switch value {
	case "encrypt":
		return Encrypt, nil
	case "decrypt":
		return Decrypt, nil
	default:
		return 0, ErrUnknownDirection
	}
}

// Message is a journal entry for a single encryption or decryption.
type Message struct {
	ID        string
	KeySlug   string
	Direction Direction
	Indicator indicator.Indicator
	Input     string
	Output    string
	CreatedAt time.Time
}

var Blank Message // nolint: gochecknoglobals

func New(
	keySlug string,
	direction Direction,
	ind indicator.Indicator,
	input, output string,
	createdAt time.Time,
) Message {
	return Message{
		ID:        uuid.NewString(),
		KeySlug:   keySlug,
		Direction: direction,
		Indicator: ind,
		Input:     input,
		Output:    output,
		CreatedAt: createdAt,
	}
}
