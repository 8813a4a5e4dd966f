package testutil

import (
	"testing"

	"envscope/internal/envtest"
)

// ConfigHome points the user config base at a fresh temp dir for the
// duration of the test and neutralizes envscope's own overrides.
// Returns the temp dir.
func ConfigHome(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	envtest.Patch(t, map[string]any{
		"XDG_CONFIG_HOME":     tmp,
		"HOME":                tmp, // fallback
		"ENVSCOPE_CONFIG_DIR": "",
		"ENVSCOPE_PREFIX":     "",
		"ENVSCOPE_LOG_LEVEL":  "",
	})
	return tmp
}
