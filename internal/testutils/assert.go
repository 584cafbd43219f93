package testutils

import (
	"fmt"
	"os"
)

// Must unwraps a value produced by test setup, where any error means a broken fixture.
func Must[T any](v T, err error) T {
	MustNoErr(err)
	return v
}

func MustNoErr(err error) {
	if err != nil {
		panic(fmt.Sprintf("test setup failed: %v", err))
	}
}

// Ignore reports a teardown error without failing the test.
func Ignore(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "teardown error ignored: %v\n", err) // nolint:forbidigo
	}
}
