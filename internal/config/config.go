package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/mutker/errschema/internal/errors"
	"codeberg.org/mutker/errschema/internal/logger"
	"codeberg.org/mutker/errschema/schema"
	"codeberg.org/mutker/errschema/web"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel  = LogLevelWarning
	DefaultTarget    = web.TargetBackend
	DefaultEnvPrefix = "ERRSCHEMA"

	configName = "errschema"
)

// Config holds the settings shared by the CLI and embedding programs.
type Config struct {
	LogLevel LogLevel       `mapstructure:"log_level"`
	LogJSON  bool           `mapstructure:"log_json"`
	Target   web.Target     `mapstructure:"target"`
	Web      bool           `mapstructure:"web"`
	Fallback string         `mapstructure:"fallback"`
	Mapping  []MappingEntry `mapstructure:"mapping"`
}

// MappingEntry maps a dynamic error type name, as printed by %T, to a
// category. Entries are a list because viper lowercases map keys.
type MappingEntry struct {
	Type     string `mapstructure:"type"`
	Category string `mapstructure:"category"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"log-level": "log_level",
	"log-json":  "log_json",
	"target":    "target",
	"web":       "web",
	"fallback":  "fallback",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a configuration file")
	fs.String("log-level", string(DefaultLogLevel), "Log level (debug, info, warning, error)")
	fs.Bool("log-json", false, "Log as JSON instead of console output")
	fs.String("target", string(DefaultTarget), "Web record view (backend, frontend)")
	fs.Bool("web", false, "Render web records")
	fs.String("fallback", "", "Category for unclassified errors")
}

// Load reads configuration from, in increasing precedence, defaults, the
// config file, the environment and the flags in fs. fs may be nil.
func Load(fs *pflag.FlagSet, opts ...Option) (*Config, error) {
	o := options{envPrefix: DefaultEnvPrefix, log: logger.Default()}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetDefault("log_level", string(DefaultLogLevel))
	v.SetDefault("log_json", false)
	v.SetDefault("target", string(DefaultTarget))
	v.SetDefault("web", false)
	v.SetDefault("fallback", "")
	v.SetDefault("mapping", []map[string]any{})

	v.SetEnvPrefix(o.envPrefix)
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.New().Wrap(errors.ErrBindFlags, err)
			}
		}
	}

	if err := readConfigFile(v, configPath(fs, o), o.log); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New().Wrap(errors.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o.log.Debug().
		Str("log_level", cfg.LogLevel.String()).
		Str("target", cfg.Target.String()).
		Int("mapping_entries", len(cfg.Mapping)).
		Msg("Config loaded")

	return &cfg, nil
}

// configPath picks the explicit file: the option, then --config, then the
// <PREFIX>_CONFIG environment variable.
func configPath(fs *pflag.FlagSet, o options) string {
	if o.configPath != "" {
		return o.configPath
	}
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			return f.Value.String()
		}
	}
	return os.Getenv(o.envPrefix + "_CONFIG")
}

func readConfigFile(v *viper.Viper, path string, log logger.Logger) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.New().Wrap(errors.ErrReadConfig, err)
		}
		log.Info().Str("file", path).Msg("Using config file")
		return nil
	}

	v.SetConfigName(configName)
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, configName))
	}
	v.AddConfigPath("/etc/" + configName)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No config file found, using defaults")
			return nil
		}
		return errors.New().Wrap(errors.ErrReadConfig, err)
	}
	log.Info().Str("file", v.ConfigFileUsed()).Msg("Using config file")
	return nil
}

// Validate normalizes case and rejects unknown levels, targets and
// categories.
func (c *Config) Validate() error {
	c.LogLevel = LogLevel(strings.ToLower(string(c.LogLevel)))
	if !c.LogLevel.IsValid() {
		return errors.New().WithData(errors.ErrInvalidLogLevel, string(c.LogLevel))
	}

	target, err := web.ParseTarget(string(c.Target))
	if err != nil {
		return errors.New().Wrap(errors.ErrInvalidConfig, err)
	}
	c.Target = target

	if c.Fallback != "" {
		fallback, err := schema.ParseCategory(c.Fallback)
		if err != nil {
			return errors.New().Wrap(errors.ErrInvalidConfig, err)
		}
		c.Fallback = string(fallback)
	}

	for i, e := range c.Mapping {
		if strings.TrimSpace(e.Type) == "" {
			return errors.New().WithData(errors.ErrInvalidMapping, fmt.Sprintf("mapping[%d]: empty type", i))
		}
		category, err := schema.ParseCategory(e.Category)
		if err != nil {
			return errors.New().WithData(errors.ErrInvalidMapping, fmt.Sprintf("mapping[%d]: %v", i, err))
		}
		c.Mapping[i].Category = string(category)
	}
	return nil
}

// Level converts the configured level for the logger.
func (c *Config) Level() logger.LogLevel {
	level, _ := logger.ParseLevel(string(c.LogLevel))
	return level
}

// Apply registers the configured mapping and fallback on m.
func (c *Config) Apply(m *schema.Mapper) error {
	if len(c.Mapping) > 0 {
		entries := make(map[string]schema.Category, len(c.Mapping))
		for _, e := range c.Mapping {
			entries[e.Type] = schema.Category(e.Category)
		}
		if err := m.RegisterAll(entries); err != nil {
			return err
		}
	}
	if c.Fallback != "" {
		return m.SetFallback(schema.Category(c.Fallback))
	}
	return nil
}

func errInvalidOption(reason string) error {
	return errors.New().WithData(errors.ErrInvalidConfig, reason)
}
