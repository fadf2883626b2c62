// Package config holds the compiler settings that can be read from a YAML
// file and then overridden on the command line.
package config

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// DefaultFile is the settings file picked up from the working directory
// when no explicit path is given.
const DefaultFile = ".tamc.yaml"

// Config is the set of compiler settings.
type Config struct {
	// Lenient silences the parser's missing-token reports.
	Lenient bool `yaml:"lenient"`

	// MaxErrors is the number of syntax errors after which parsing stops.
	// Zero selects the parser's default.
	MaxErrors int `yaml:"maxErrors"`

	// Listing makes compile print the instruction listing to stdout in
	// addition to any output file.
	Listing bool `yaml:"listing"`

	// Verbose is the glog verbosity level.
	Verbose int `yaml:"verbose"`
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		MaxErrors: 10,
		Listing:   true,
	}
}

// Load reads the settings at path over the defaults. An empty path loads
// DefaultFile if it exists and the defaults otherwise.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.UnmarshalStrict(b, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks that the settings are within range.
func (c *Config) Validate() error {
	if c.MaxErrors < 0 {
		return errors.Errorf("maxErrors must not be negative, got %d", c.MaxErrors)
	}
	if c.Verbose < 0 {
		return errors.Errorf("verbose must not be negative, got %d", c.Verbose)
	}
	return nil
}
