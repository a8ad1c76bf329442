// Package paths provides centralized path handling for smart-rom-sync.
//
// It implements the XDG Base Directory specification for the few files the
// tool owns itself: the default configuration file, the log file and the
// sync lock.
//
// # Environment Variables
//
//   - SMART_ROM_SYNC_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/smart-rom-sync)
//   - SMART_ROM_SYNC_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/smart-rom-sync)
//   - SMART_ROM_SYNC_TEMP_DIR: Override where rsync file lists are written (default: os.TempDir())
//
// # Layout
//
//   - Config: <config dir>/config.toml
//   - Log:    <state dir>/smart-rom-sync.log
//   - Lock:   <state dir>/sync.lock
package paths
