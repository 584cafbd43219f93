package settings

import (
	"time"
)

type Settings struct {
	// the sequence typed to switch the keyboard between letters and figures
	KeyboardShift string `validate:"required,shift"`

	KeyCacheTTL time.Duration `validate:"gte=0"`

	JournalSize  int `validate:"gte=0"`
	JournalLimit int `validate:"gte=0"`

	WheelsetWorkers int           `validate:"gte=0"`
	WheelsetTimeout time.Duration `validate:"gte=0"`
}
