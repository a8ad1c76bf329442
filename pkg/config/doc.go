// Package config handles configuration management for smart-rom-sync.
// It loads TOML (or YAML) files on top of embedded defaults, applies
// SMART_ROM_SYNC_ environment overrides, validates the result and can write
// a configuration back to disk.
package config
