package logutils

import (
	"strconv"
	"strings"
)

// ShortCallerFormatter keeps the file name and drops the directories from a caller path.
func ShortCallerFormatter(_ uintptr, file string, line int) string {
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		file = file[idx+1:]
	}
	return file + ":" + strconv.Itoa(line)
}
