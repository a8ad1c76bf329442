package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Target: Target{Type: TargetRsync, RemoteHost: "mister", Path: "/media/fat/games"},
		Systems: []System{
			{LocalDir: "/roms/snes", RemoteDir: "SNES", RegionListInclude: []string{"USA"}},
			{LocalDir: "/roms/md", RemoteDir: "Genesis", SpecialListExclude: []string{"Proto", "Beta"}},
		},
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "nested", name)

			require.NoError(t, Write(p, testConfig()))

			content, err := os.ReadFile(p)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(content), "# Configuration file for smart-rom-sync"))

			loaded, err := Load(p)
			require.NoError(t, err)
			assert.Equal(t, testConfig(), loaded)
		})
	}
}

func TestWrite_BacksUpChangedFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(p, []byte("# old content\n"), 0644))

	fixed := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	require.NoError(t, Write(p, testConfig()))

	backup := filepath.Join(dir, "config_2024-03-09_140507.toml.bak")
	assert.Equal(t, backup, BackupPath(p, fixed))
	old, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "# old content\n", string(old))
}

func TestWrite_NoBackupWhenUnchanged(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.toml")

	require.NoError(t, Write(p, testConfig()))
	require.NoError(t, Write(p, testConfig()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(testConfig(), "ini")
	assert.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("a.yml"))
	assert.Equal(t, FormatYAML, FormatFor("a.YAML"))
	assert.Equal(t, FormatTOML, FormatFor("a.toml"))
	assert.Equal(t, FormatTOML, FormatFor("config"))
}

func TestSummary(t *testing.T) {
	s := Summary(testConfig())
	assert.Contains(t, s, "Target Type: rsync")
	assert.Contains(t, s, "Remote Host: mister")
	assert.Contains(t, s, "Remote base path: /media/fat/games")
	assert.Contains(t, s, "Systems: 2")
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[target]")
	assert.Contains(t, content, "# [[systems]]")
	assert.Contains(t, content, `# local_dir = "~/roms/snes"`)

	// Everything is commented out, so loading it yields the defaults
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteContent(p, content))
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Empty(t, cfg.Systems)
	assert.Equal(t, TargetLocal, cfg.Target.Type)
}

func TestSampleConfigIsValid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteContent(p, GetSampleConfigContent()))

	cfg, err := Load(p)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Systems, 1)
	assert.Equal(t, []string{"Proto", "Beta"}, cfg.Systems[0].SpecialListExclude)
}
