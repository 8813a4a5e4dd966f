package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DirEnv overrides the config directory when set.
const DirEnv = "ENVSCOPE_CONFIG_DIR"

// Dir returns the envscope config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/envscope; on macOS
// to ~/Library/Application Support/envscope; and on Windows to %AppData%/envscope.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	if d := strings.TrimSpace(os.Getenv(DirEnv)); d != "" {
		return d, nil
	}
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "envscope"), nil
}

// Path returns the config.yaml location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
