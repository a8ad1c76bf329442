package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kism/smart-rom-sync/pkg/classify"
	"github.com/kism/smart-rom-sync/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTOML = `
[target]
type = "rsync"
remote_host = "mister.local"
path = "/media/fat/games"

[[systems]]
local_dir = "/roms/snes"
remote_dir = "SNES"
region_list_include = ["USA", "Europe"]
special_list_exclude = ["Proto"]

[[systems]]
local_dir = "/roms/md"
remote_dir = "/Genesis"
region_list_exclude = "Japan, Korea"
`

const testYAML = `
target:
  type: local
  path: /mnt/sdcard
systems:
  - local_dir: /roms/gb
    remote_dir: GB
    special_list_include: [Rev]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, TargetLocal, cfg.Target.Type)
	assert.Empty(t, cfg.Target.Path)
	assert.Empty(t, cfg.Systems)
}

func TestLoad_TOML(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.toml", testTOML))
	require.NoError(t, err)

	assert.Equal(t, Target{Type: TargetRsync, RemoteHost: "mister.local", Path: "/media/fat/games"}, cfg.Target)
	require.Len(t, cfg.Systems, 2)

	snes := cfg.Systems[0]
	assert.Equal(t, "/roms/snes", snes.LocalDir)
	assert.Equal(t, "SNES", snes.RemoteDir)
	assert.Equal(t, []string{"USA", "Europe"}, snes.RegionListInclude)
	assert.Nil(t, snes.RegionListExclude)
	assert.Equal(t, []string{"Proto"}, snes.SpecialListExclude)

	md := cfg.Systems[1]
	assert.Equal(t, "Genesis", md.RemoteDir, "leading slash is stripped")
	assert.Equal(t, []string{"Japan", "Korea"}, md.RegionListExclude, "comma separated string becomes a list")
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.yaml", testYAML))
	require.NoError(t, err)

	assert.Equal(t, TargetLocal, cfg.Target.Type)
	assert.Equal(t, "/mnt/sdcard", cfg.Target.Path)
	require.Len(t, cfg.Systems, 1)
	assert.Equal(t, []string{"Rev"}, cfg.Systems[0].SpecialListInclude)
}

func TestLoad_EnvOverridesTarget(t *testing.T) {
	t.Setenv("SMART_ROM_SYNC_TARGET_TYPE", "RSYNC")
	t.Setenv("SMART_ROM_SYNC_TARGET_REMOTE_HOST", "nas")
	t.Setenv("SMART_ROM_SYNC_TARGET_PATH", "/volume1/roms")
	t.Setenv("SMART_ROM_SYNC_STATE_DIR", t.TempDir())

	cfg, err := Load(writeFile(t, "config.toml", testTOML))
	require.NoError(t, err)

	assert.Equal(t, TargetRsync, cfg.Target.Type)
	assert.Equal(t, "nas", cfg.Target.RemoteHost)
	assert.Equal(t, "/volume1/roms", cfg.Target.Path)
	assert.Len(t, cfg.Systems, 2)
}

func TestLoad_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	cfg, err := Load(writeFile(t, "config.toml", `
[target]
path = "/dest"
[[systems]]
local_dir = "~/roms/nes"
remote_dir = "NES"
`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "roms", "nes"), cfg.Systems[0].LocalDir)
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(writeFile(t, "config.toml", "[target\ntype = "))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "target.type", envKey("SMART_ROM_SYNC_TARGET_TYPE"))
	assert.Equal(t, "target.remote_host", envKey("SMART_ROM_SYNC_TARGET_REMOTE_HOST"))
	assert.Equal(t, "", envKey("SMART_ROM_SYNC_STATE_DIR"))
	assert.Equal(t, "", envKey("SMART_ROM_SYNC_TARGET"))
	assert.Equal(t, "", envKey("SMART_ROM_SYNC_TARGET_"))
}

func TestSystem_FilterRule(t *testing.T) {
	s := System{
		RegionListInclude:  []string{"USA"},
		RegionListExclude:  []string{"Japan"},
		SpecialListInclude: []string{"Rev"},
		SpecialListExclude: []string{"Proto"},
	}

	assert.Equal(t, classify.FilterRule{
		RegionInclude:  []string{"USA"},
		RegionExclude:  []string{"Japan"},
		SpecialInclude: []string{"Rev"},
		SpecialExclude: []string{"Proto"},
	}, s.FilterRule())
}

func TestConfig_RemoteBase(t *testing.T) {
	cfg := &Config{Target: Target{Path: "/dest"}}
	assert.Equal(t, "/dest/snes", cfg.RemoteBase(System{RemoteDir: "snes"}))
	assert.Equal(t, "/dest/a/b", cfg.RemoteBase(System{RemoteDir: "a/b/"}))
}

func TestLoadWithOverrides(t *testing.T) {
	t.Setenv("SMART_ROM_SYNC_TARGET_PATH", "/from/env")

	cfg, err := LoadWithOverrides(writeFile(t, "config.toml", testTOML), map[string]interface{}{
		"target.path":        "/from/flag",
		"target.remote_host": "",
	})
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", cfg.Target.Path, "flags win over env")
	assert.Equal(t, "mister.local", cfg.Target.RemoteHost, "empty overrides are ignored")
}
