package testutils

import (
	"github.com/sergeii/sg41/pkg/sg41/wheel"
)

// Cam patterns and message pair published by Kopacz and Reuvers (p. 22).
var ReferencePatterns = []string{ // nolint: gochecknoglobals
	"0001101011000100010001101",
	"0110100100001011100101100",
	"11001001000100100100010",
	"01001000111010001110010",
	"001001001010000101011010",
	"011001100110001011010100",
}

var ReferencePositions = []int{0, 1, 2, 3, 0, 0} // nolint: gochecknoglobals

const (
	ReferenceIndicator  = "A B C D 01 00"
	ReferencePlaintext  = "SCHLUESSELGERAETVIEREINSWANDERER"
	ReferenceCiphertext = "IHEPLRETQSDSNDCWHPIVVGLYMHOWSJQS"
)

// ReferenceStream is the keystream of the reference key at ReferencePositions.
var ReferenceStream = []int{ // nolint: gochecknoglobals
	6, 6, 2, 9, 11, 3, 13, 25, 23, 16, 6, 13, 18, 23, 11, 3,
	10, 25, 0, 11, 15, 7, 25, 15, 4, 0, 1, 9, 13, 12, 23, 9,
}

func ReferencePins() [][]bool {
	pins := make([][]bool, 0, len(ReferencePatterns))
	for _, pattern := range ReferencePatterns {
		pins = append(pins, Must(wheel.ParsePattern(pattern)))
	}
	return pins
}

func ReferencePositionsCopy() []int {
	positions := make([]int, len(ReferencePositions))
	copy(positions, ReferencePositions)
	return positions
}
