package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateDir(t *testing.T) {
	t.Run("explicit override wins", func(t *testing.T) {
		t.Setenv(EnvStateDir, "/custom/state")
		t.Setenv("XDG_STATE_HOME", "/xdg/state")
		assert.Equal(t, "/custom/state", StateDir())
	})

	t.Run("XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv(EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", "/xdg/state")
		assert.Equal(t, filepath.Join("/xdg/state", AppDirName), StateDir())
		assert.Equal(t, filepath.Join("/xdg/state", AppDirName, LogFileName), LogFilePath())
		assert.Equal(t, filepath.Join("/xdg/state", AppDirName, LockFileName), LockFilePath())
	})
}

func TestConfigDir(t *testing.T) {
	t.Run("explicit override wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/custom/config")
		assert.Equal(t, filepath.Join("/custom/config", ConfigFileName), DefaultConfigPath())
	})

	t.Run("XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
		assert.Equal(t, filepath.Join("/xdg/config", AppDirName), ConfigDir())
	})
}

func TestTempDir(t *testing.T) {
	t.Setenv(EnvTempDir, "")
	assert.Equal(t, os.TempDir(), TempDir())

	t.Setenv(EnvTempDir, "/scratch")
	assert.Equal(t, "/scratch", TempDir())
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", homeDir},
		{"~/roms/snes", filepath.Join(homeDir, "roms", "snes")},
		{"~other/roms", "~other/roms"},
		{"/abs/path", "/abs/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}
