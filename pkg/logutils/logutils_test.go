package logutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergeii/sg41/pkg/logutils"
)

func TestShortCallerFormatter(t *testing.T) {
	tests := []struct {
		file string
		line int
		want string
	}{
		{"/home/sg41/internal/core/usecases/cryptmessage/cryptmessage.go", 42, "cryptmessage.go:42"},
		{"relative/path/main.go", 1, "main.go:1"},
		{"main.go", 7, "main.go:7"},
		{"", 0, ":0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, logutils.ShortCallerFormatter(0, tt.file, tt.line))
		})
	}
}
