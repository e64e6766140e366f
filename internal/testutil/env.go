package testutil

import (
	"os"
	"testing"
)

// WithEnv sets env var to val for the duration of the test scope.
// Returns a cleanup func to restore previous value.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}

// TempHome points the maraos config directory at a fresh temp dir and
// returns it. The previous value is restored when the test ends.
func TempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(WithEnv(t, "MARAOS_HOME", dir))
	return dir
}
