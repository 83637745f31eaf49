package config

import (
	"github.com/newcrate/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records the outcome of resolving one key.
type ResolvedValue struct {
	Key    string
	Value  any
	Source ConfigSource
}

// FlagValues carries the command-line values that take part in resolution.
// The *Set fields report whether the user passed the flag explicitly.
type FlagValues struct {
	Names     string
	NamesSet  bool
	Readme    bool
	ReadmeSet bool
}

// Resolved is the outcome of resolving flags, environment, config file and defaults.
type Resolved struct {
	// Generation is handed to the package generator.
	Generation Generation

	// Timestamps is the log timestamp preference, nil when unset.
	Timestamps *bool

	// Values lists every resolved key with its source.
	Values []ResolvedValue
}

// Resolve applies precedence flag > env > config > default to every
// setting. cfg must come from loader.Load so Origin reflects it.
func Resolve(loader *Loader, cfg *Config, flags FlagValues) *Resolved {
	cfg = cfg.WithDefaults()
	r := &Resolved{Timestamps: cfg.Log.Timestamps}

	// names
	switch {
	case flags.NamesSet:
		r.Generation.Names = flags.Names
		r.record(KeyNames, flags.Names, SourceFlag)
	case cfg.Names != "":
		r.Generation.Names = cfg.Names
		r.record(KeyNames, cfg.Names, loader.Origin(KeyNames))
	default:
		r.Generation.Names = NoLicenseNames
		r.record(KeyNames, NoLicenseNames, SourceDefault)
	}

	// readme
	if flags.ReadmeSet {
		r.Generation.Readme = flags.Readme
		r.record(KeyReadme, flags.Readme, SourceFlag)
	} else {
		r.Generation.Readme = cfg.Readme
		r.record(KeyReadme, cfg.Readme, loader.Origin(KeyReadme))
	}

	r.Generation.Version = cfg.Package.Version
	r.record(KeyVersion, cfg.Package.Version, loader.Origin(KeyVersion))

	r.Generation.Edition = cfg.Package.Edition
	r.record(KeyEdition, cfg.Package.Edition, loader.Origin(KeyEdition))

	return r
}

func (r *Resolved) record(key string, value any, source ConfigSource) {
	r.Values = append(r.Values, ResolvedValue{Key: key, Value: value, Source: source})
}

// Lookup returns the resolved value for key.
func (r *Resolved) Lookup(key string) (ResolvedValue, bool) {
	for _, v := range r.Values {
		if v.Key == key {
			return v, true
		}
	}
	return ResolvedValue{}, false
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
	}
}
