package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/ansiout/pkg/errors"
	"github.com/arthur-debert/ansiout/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment variables read by Load.
const EnvPrefix = "ANSIOUT_"

// configNames are searched, in order, under $XDG_CONFIG_HOME/ansiout.
var configNames = []string{"config.toml", "config.yaml", "config.yml"}

// LoadOptions controls where Load reads from.
type LoadOptions struct {
	// Path is an explicit config file. When empty the XDG config
	// directories are searched and a missing file is not an error.
	Path string
	// Overrides are applied last, keyed by dotted path ("color", "log.verbosity").
	Overrides map[string]interface{}
}

// Load reads and validates the layered configuration.
func Load(opts LoadOptions) (*Config, error) {
	log := logging.GetLogger("config.Load")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	path, err := resolveConfigPath(opts.Path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment variables
	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("color", cfg.Color).
		Int("styles", len(cfg.Styles)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// envKey maps ANSIOUT_LOG_VERBOSITY to log.verbosity. Everything after
// ANSIOUT_STYLES_ is a single style name, so ANSIOUT_STYLES_SECTION_TITLE
// maps to styles.section_title.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if name, ok := strings.CutPrefix(key, "styles_"); ok {
		return "styles." + name
	}
	return strings.ReplaceAll(key, "_", ".")
}

// resolveConfigPath returns the explicit path if it exists, or the first
// config file found in the XDG config directories, or "".
func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}
	for _, name := range configNames {
		if path, err := xdg.SearchConfigFile(filepath.Join("ansiout", name)); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// parserFor picks a koanf parser from the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}
