package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kism/smart-rom-sync/internal/version"
	"github.com/kism/smart-rom-sync/pkg/errors"
	"github.com/kism/smart-rom-sync/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats for Encode
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// now is replaced in tests
var now = time.Now

// FormatFor picks the output format from a file extension
func FormatFor(configPath string) string {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Header is the comment line written at the top of generated files
func Header() string {
	return fmt.Sprintf("# Configuration file for %s %s %s\n", version.ProgramName, version.Version, version.URL)
}

// Encode serializes cfg in the given format, prefixed with Header
func Encode(cfg *Config, format string) ([]byte, error) {
	var (
		body []byte
		err  error
	)
	switch format {
	case FormatTOML:
		body, err = toml.Marshal(cfg)
	case FormatYAML:
		body, err = yaml.Marshal(cfg)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to encode config as %s", format)
	}

	var buf bytes.Buffer
	buf.WriteString(Header())
	buf.Write(body)
	return buf.Bytes(), nil
}

// Write saves cfg to configPath. An existing file with different content is
// first copied to a timestamped backup next to it.
func Write(configPath string, cfg *Config) error {
	content, err := Encode(cfg, FormatFor(configPath))
	if err != nil {
		return err
	}
	return writeWithBackup(configPath, content)
}

// WriteContent saves raw content to configPath with the same backup rules as Write
func WriteContent(configPath string, content string) error {
	return writeWithBackup(configPath, []byte(content))
}

func writeWithBackup(configPath string, content []byte) error {
	logger := logging.GetLogger("config")

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to create config directory for %s", configPath)
	}

	existing, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if len(existing) > 0 && !bytes.Equal(existing, content) {
			backup := BackupPath(configPath, now())
			logger.Warn().
				Str("backup", backup).
				Msg("Config file content has changed, backing up the old one")
			if err := os.WriteFile(backup, existing, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write backup %s", backup)
			}
		}
	case os.IsNotExist(err):
		logger.Warn().Str("path", configPath).Msg("Config file does not exist, creating it")
	default:
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read existing config %s", configPath)
	}

	logger.Info().Str("path", configPath).Msg("Writing config")
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write config %s", configPath)
	}
	return nil
}

// BackupPath returns <dir>/<stem>_<YYYY-mm-dd_HHMMSS><ext>.bak
func BackupPath(configPath string, t time.Time) string {
	ext := filepath.Ext(configPath)
	stem := strings.TrimSuffix(filepath.Base(configPath), ext)
	return filepath.Join(filepath.Dir(configPath),
		fmt.Sprintf("%s_%s%s.bak", stem, t.Format("2006-01-02_150405"), ext))
}

// Summary describes the configuration in a few lines
func Summary(cfg *Config) string {
	return fmt.Sprintf(`%s %s %s
Current configuration:
  Target Type: %s
  Remote Host: %s
  Remote base path: %s
  Systems: %d`,
		version.ProgramName, version.Version, version.URL,
		cfg.Target.Type, cfg.Target.RemoteHost, cfg.Target.Path, len(cfg.Systems))
}
