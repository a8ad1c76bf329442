package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	EnvConfigDir = "SMART_ROM_SYNC_CONFIG_DIR"
	EnvStateDir  = "SMART_ROM_SYNC_STATE_DIR"
	EnvTempDir   = "SMART_ROM_SYNC_TEMP_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under the XDG base dirs
	AppDirName = "smart-rom-sync"

	ConfigFileName = "config.toml"
	LogFileName    = "smart-rom-sync.log"
	LockFileName   = "sync.lock"
)

// ConfigDir returns the directory holding the default config file
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory for the log file and the sync lock.
// XDG_STATE_HOME is read on every call so tests can redirect it.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// TempDir returns where transient rsync file lists are written
func TempDir() string {
	if dir := os.Getenv(EnvTempDir); dir != "" {
		return ExpandHome(dir)
	}
	return os.TempDir()
}

// DefaultConfigPath is used when no config file is given on the command line
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// LogFilePath returns the path of the persistent log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// LockFilePath returns the path of the lock taken for the duration of a sync
func LockFilePath() string {
	return filepath.Join(StateDir(), LockFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
