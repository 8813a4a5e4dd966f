// Package envtest ties envscope scopes to the lifetime of a test.
//
// Helpers register their restore step with t.Cleanup, so the environment is
// put back after the test body, its subtests and any earlier-registered
// cleanups have finished, whether the test passed, failed or was skipped.
// The process environment is shared, so the helpers refuse to run in
// parallel tests.
package envtest

import (
	"os"
	"testing"

	"envscope/internal/envscope"
)

// guardKey is re-set through t.Setenv so the testing package rejects
// parallel use. Its value is left as found.
const guardKey = "ENVSCOPE_TEST_GUARD"

func guard(t testing.TB) {
	t.Helper()
	if v, ok := os.LookupEnv(guardKey); ok {
		t.Setenv(guardKey, v)
		return
	}
	t.Setenv(guardKey, "")
	_ = os.Unsetenv(guardKey)
}

func cleanup(t testing.TB, kind string, restore envscope.Restore) {
	t.Cleanup(func() {
		if err := restore(); err != nil {
			t.Errorf("envtest: restore %s: %v", kind, err)
		}
	})
}

// Patch applies vars until the end of the test.
func Patch(t testing.TB, vars map[string]any) {
	t.Helper()
	guard(t)
	restore, err := envscope.Patch(vars)
	if err != nil {
		t.Fatalf("envtest: patch: %v", err)
	}
	cleanup(t, "patch", restore)
}

// Clear empties the environment until the end of the test.
func Clear(t testing.TB) {
	t.Helper()
	guard(t)
	restore, err := envscope.Clear()
	if err != nil {
		t.Fatalf("envtest: clear: %v", err)
	}
	cleanup(t, "clear", restore)
}

// Purge reverts, at the end of the test, every variable starting with
// prefix that the test added or changed.
func Purge(t testing.TB, prefix string) {
	t.Helper()
	guard(t)
	purge(t, prefix)
}

func purge(t testing.TB, prefix string) {
	t.Helper()
	restore, err := envscope.Purge(prefix)
	if err != nil {
		t.Fatalf("envtest: purge: %v", err)
	}
	cleanup(t, "purge", restore)
}
