package scratchlog

import (
	"os"
	"testing"
)

// chdir replicates testing.TB.Chdir (Go 1.24+) for older toolchains.
func chdir(tb testing.TB, dir string) {
	tb.Helper()
	old, err := os.Getwd()
	if err != nil {
		tb.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		tb.Fatal(err)
	}
	tb.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			tb.Error(err)
		}
	})
}
