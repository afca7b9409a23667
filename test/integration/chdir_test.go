package integration

import (
	"os"
	"testing"
)

// chdirForTest changes the working directory to dir and restores it when
// the test finishes. It stands in for testing.T.Chdir, which is not
// available in the Go toolchain this module builds with.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("chdir: %v", err)
		}
	})
}
