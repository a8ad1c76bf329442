package config

import (
	"path"

	"github.com/kism/smart-rom-sync/pkg/classify"
)

// Target types
const (
	TargetLocal = "local"
	TargetRsync = "rsync"
)

// Target is where systems are synced to
type Target struct {
	Type       string `koanf:"type" toml:"type" yaml:"type"`
	RemoteHost string `koanf:"remote_host" toml:"remote_host" yaml:"remote_host"`
	Path       string `koanf:"path" toml:"path" yaml:"path"`
}

// System maps one local ROM folder to a remote subdirectory
type System struct {
	LocalDir           string   `koanf:"local_dir" toml:"local_dir" yaml:"local_dir"`
	RemoteDir          string   `koanf:"remote_dir" toml:"remote_dir" yaml:"remote_dir"`
	RegionListInclude  []string `koanf:"region_list_include" toml:"region_list_include" yaml:"region_list_include"`
	RegionListExclude  []string `koanf:"region_list_exclude" toml:"region_list_exclude" yaml:"region_list_exclude"`
	SpecialListInclude []string `koanf:"special_list_include" toml:"special_list_include" yaml:"special_list_include"`
	SpecialListExclude []string `koanf:"special_list_exclude" toml:"special_list_exclude" yaml:"special_list_exclude"`
}

// Config is the whole configuration file
type Config struct {
	Target  Target   `koanf:"target" toml:"target" yaml:"target"`
	Systems []System `koanf:"systems" toml:"systems" yaml:"systems"`
}

// FilterRule returns the include/exclude lists of the system
func (s System) FilterRule() classify.FilterRule {
	return classify.FilterRule{
		RegionInclude:  s.RegionListInclude,
		RegionExclude:  s.RegionListExclude,
		SpecialInclude: s.SpecialListInclude,
		SpecialExclude: s.SpecialListExclude,
	}
}

// RemoteBase is target.path joined with the system's remote_dir
func (c *Config) RemoteBase(s System) string {
	return path.Join(c.Target.Path, s.RemoteDir)
}
