package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/kism/smart-rom-sync/pkg/errors"
	"github.com/kism/smart-rom-sync/pkg/logging"
	"github.com/kism/smart-rom-sync/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. SMART_ROM_SYNC_TARGET_PATH
const EnvPrefix = "SMART_ROM_SYNC_"

// Load reads the configuration at configPath on top of the embedded defaults
// and applies environment overrides. A missing file is not an error: the
// defaults are returned with no systems.
func Load(configPath string) (*Config, error) {
	return LoadWithOverrides(configPath, nil)
}

// LoadWithOverrides is Load with a final layer of dotted keys, such as
// "target.path", taken from command line flags. Empty values are ignored.
func LoadWithOverrides(configPath string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config
	if configPath != "" {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			if err := k.Load(file.Provider(configPath), parserFor(configPath)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to load config from %s", configPath).WithDetail("path", configPath)
			}
			logger.Debug().Str("path", configPath).Msg("Loaded config file")
		case os.IsNotExist(err):
			logger.Warn().Str("path", configPath).Msg("Config file does not exist, using defaults")
		default:
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to stat config %s", configPath).WithDetail("path", configPath)
		}
	}

	// 3. Env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flags
	if flags := nonEmpty(overrides); len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToTrimmedSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Post-process
	normalize(&cfg)

	logger.Debug().
		Str("targetType", cfg.Target.Type).
		Str("targetPath", cfg.Target.Path).
		Int("systems", len(cfg.Systems)).
		Msg("Configuration loaded")

	return &cfg, nil
}

func nonEmpty(overrides map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(overrides))
	for key, value := range overrides {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		if value == nil {
			continue
		}
		out[key] = value
	}
	return out
}

// parserFor picks the koanf parser from the file extension
func parserFor(configPath string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps SMART_ROM_SYNC_TARGET_REMOTE_HOST to target.remote_host.
// Only target keys can be overridden; other variables are ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(key, "_")
	if !ok || section != "target" || field == "" {
		return ""
	}
	return section + "." + field
}

// stringToTrimmedSliceHookFunc lets list fields be written as "USA, Europe"
func stringToTrimmedSliceHookFunc(sep string) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.String {
			return data, nil
		}
		raw, ok := data.(string)
		if !ok {
			return data, nil
		}
		if strings.TrimSpace(raw) == "" {
			return []string{}, nil
		}
		parts := strings.Split(raw, sep)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
}

// normalize cleans up values that are valid but inconvenient downstream
func normalize(cfg *Config) {
	logger := logging.GetLogger("config")

	cfg.Target.Type = strings.ToLower(strings.TrimSpace(cfg.Target.Type))

	for i := range cfg.Systems {
		s := &cfg.Systems[i]
		s.LocalDir = paths.ExpandHome(s.LocalDir)

		if trimmed := strings.TrimLeft(s.RemoteDir, "/"+string(os.PathSeparator)); trimmed != s.RemoteDir {
			logger.Warn().
				Str("remoteDir", s.RemoteDir).
				Str("using", trimmed).
				Msg("remote_dir is absolute, treating it as relative to target.path")
			s.RemoteDir = trimmed
		}

		s.RegionListInclude = nilIfEmpty(s.RegionListInclude)
		s.RegionListExclude = nilIfEmpty(s.RegionListExclude)
		s.SpecialListInclude = nilIfEmpty(s.SpecialListInclude)
		s.SpecialListExclude = nilIfEmpty(s.SpecialListExclude)
	}
}

func nilIfEmpty(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	return list
}
