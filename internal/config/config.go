// Package config provides configuration loading and resolution for newcrate.
package config

import "strings"

// NoLicenseNames is the default --names value. It means no license is generated.
const NoLicenseNames = "<copyright holders>"

// Default manifest values.
const (
	DefaultVersion = "0.1.0"
	DefaultEdition = "2021"
)

// Editions accepted in the generated manifest.
var Editions = []string{"2015", "2018", "2021", "2024"}

// PackageConfig holds defaults for the generated manifest.
type PackageConfig struct {
	// Version is the initial crate version.
	// Env: NEWCRATE_PACKAGE_VERSION, Default: 0.1.0
	Version string `mapstructure:"version" yaml:"version"`

	// Edition is the Rust edition.
	// Env: NEWCRATE_PACKAGE_EDITION, Default: 2021
	Edition string `mapstructure:"edition" yaml:"edition"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown below debug verbosity.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the newcrate configuration file (~/.newcrate/config.yaml).
type Config struct {
	// Names are the default copyright holders. Empty means no license.
	// Env: NEWCRATE_NAMES
	Names string `mapstructure:"names" yaml:"names"`

	// Readme makes README generation the default.
	// Env: NEWCRATE_README
	Readme bool `mapstructure:"readme" yaml:"readme"`

	// Package contains manifest defaults.
	Package PackageConfig `mapstructure:"package" yaml:"package"`

	// Log contains logging settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `newcrate config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Package: PackageConfig{
			Version: DefaultVersion,
			Edition: DefaultEdition,
		},
	}
}

// WithDefaults returns a copy of c with empty fields set to defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Package.Version == "" {
		out.Package.Version = DefaultVersion
	}
	if out.Package.Edition == "" {
		out.Package.Edition = DefaultEdition
	}
	return &out
}

// Generation is the validated configuration handed to the package generator.
type Generation struct {
	// Names are the copyright holders for the MIT license.
	Names string

	// Readme requests a README.md.
	Readme bool

	// Version is the initial crate version.
	Version string

	// Edition is the Rust edition.
	Edition string
}

// WantsLicense reports whether Names requests a license: it is neither
// empty nor the NoLicenseNames sentinel.
func (g Generation) WantsLicense() bool {
	n := strings.TrimSpace(g.Names)
	return n != "" && n != NoLicenseNames
}
