// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory component appended to every platform base dir.
const appDirName = "sitedesk"

// CWD-relative directory names used when no override is active.
const (
	DefaultConfigDirName = ".sitedesk"
	DefaultDataDirName   = ".sitedesk-data"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "SITEDESK_CONFIG_DIR"
	EnvDataDir   = "SITEDESK_DATA_DIR"
)

// DefaultConfigDir returns the platform default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/sitedesk (fallback ~/.config/sitedesk)
// macOS:   ~/Library/Application Support/sitedesk
// Windows: %APPDATA%/sitedesk
func DefaultConfigDir() (string, error) {
	return platformDefault("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform default data directory.
//
// Linux:   $XDG_DATA_HOME/sitedesk (fallback ~/.local/share/sitedesk)
// macOS and Windows share the configuration location.
func DefaultDataDir() (string, error) {
	return platformDefault("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// platformDefault resolves the app directory under the named XDG base dir on
// Linux, with a home-relative fallback when the variable is unset. Other
// platforms use os.UserConfigDir for both roles.
func platformDefault(xdgVar, homeFallback string) (string, error) {
	if runtime.GOOS != "linux" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, appDirName), nil
	}
	if base := os.Getenv(xdgVar); base != "" {
		return filepath.Join(base, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeFallback, appDirName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SITEDESK_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	for _, dir := range []string{flag, os.Getenv(EnvConfigDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > config.yaml value > SITEDESK_DATA_DIR env > CWD-relative default.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	for _, dir := range []string{flag, configYAMLValue, os.Getenv(EnvDataDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
