package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// HomeEnv overrides the config directory when set.
const HomeEnv = "MARAOS_HOME"

// Dir returns the maraos config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/maraos; on macOS
// to ~/Library/Application Support/maraos; and on Windows to %AppData%/maraos.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(HomeEnv)); v != "" {
		return v, nil
	}
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "maraos"), nil
}

// File returns the path of name inside the config directory.
func File(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
