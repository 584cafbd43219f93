package random

import (
	crand "crypto/rand"
	mrand "math/rand"
)

func RandInt(min, max int) int {
	return mrand.Intn(max-min) + min // nolint: gosec
}

func RandBytes(sz int) []byte {
	data := make([]byte, sz)
	if _, err := crand.Read(data); err != nil {
		panic(err)
	}
	return data
}

// RandBits returns n bits from a cryptographically secure source.
func RandBits(n int) []bool {
	data := RandBytes((n + 7) / 8)
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = data[i/8]&(1<<(i%8)) != 0
	}
	return bits
}
