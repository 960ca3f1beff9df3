// Package paths resolves the configuration directory and the records file
// location from flags, config.yaml, environment, and platform defaults.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user configuration directory.
const appName = "adboard"

// Environment variable names for location overrides.
const (
	EnvConfigDir   = "ADBOARD_CONFIG_DIR"
	EnvRecordsFile = "ADBOARD_RECORDS_FILE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/adboard (fallback ~/.config/adboard)
// macOS:   ~/Library/Application Support/adboard
// Windows: %APPDATA%/adboard
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > ADBOARD_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveRecordsFile returns the JSONL records file following the precedence
// chain: flag > configYAMLValue > ADBOARD_RECORDS_FILE env. An empty result
// means the built-in sample records are used.
func ResolveRecordsFile(flag, configYAMLValue string) (string, error) {
	for _, candidate := range []string{flag, configYAMLValue, os.Getenv(EnvRecordsFile)} {
		if candidate != "" {
			return filepath.Abs(candidate)
		}
	}
	return "", nil
}
