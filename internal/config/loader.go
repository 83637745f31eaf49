package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variables read by newcrate.
const (
	envPrefix = "NEWCRATE"

	EnvConfig = "NEWCRATE_CONFIG"
)

// Config keys.
const (
	KeyNames         = "names"
	KeyReadme        = "readme"
	KeyVersion       = "package.version"
	KeyEdition       = "package.edition"
	KeyLogTimestamps = "log.timestamps"
)

var keys = []string{KeyNames, KeyReadme, KeyVersion, KeyEdition, KeyLogTimestamps}

// EnvVar returns the environment variable bound to a config key.
func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Loader handles loading and merging configuration from file and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, k := range keys {
		_ = v.BindEnv(k, EnvVar(k))
	}

	return &Loader{v: v}
}

// Load loads configuration from configFile, or the default config file when
// empty. Environment variables take precedence over file values. A missing
// file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}
	return cfg.WithDefaults(), nil
}

// Origin reports where the loaded value for key came from: env, config or
// default. Flags are handled by the resolver. An empty environment variable
// is ignored by viper and so does not count as a source.
func (l *Loader) Origin(key string) ConfigSource {
	if os.Getenv(EnvVar(key)) != "" {
		return SourceEnv
	}
	if l.v.InConfig(key) {
		return SourceConfig
	}
	return SourceDefault
}

// ConfigFileUsed returns the config file the loader read from.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}
