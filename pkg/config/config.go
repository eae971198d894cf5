// Package config loads the pinpoint tool configuration from
// .pinpoint.yaml. Configuration covers tool plumbing only — the
// naming rules themselves are fixed and not configurable.
package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/pinpoint/pkg/errors"
)

// DefaultConfigFile is the config file searched for in the working
// directory when no --config flag is given.
const DefaultConfigFile = ".pinpoint.yaml"

// Default configuration values exported for documentation and validation
const (
	DefaultManifest  = "pinpoint.yaml"
	DefaultGoFile    = "locators/locators.go"
	DefaultGoPackage = "locators"
	DefaultLogDir    = ".pinpoint/logs"
	DefaultDebounce  = 250 * time.Millisecond
)

// Config represents the complete pinpoint configuration
type Config struct {
	Manifest string       `yaml:"manifest"`
	Output   OutputConfig `yaml:"output"`
	Watch    WatchConfig  `yaml:"watch"`
	LogDir   string       `yaml:"log_dir"`
}

// OutputConfig controls what gen writes and where.
type OutputConfig struct {
	GoFile    string `yaml:"go_file"`
	GoPackage string `yaml:"go_package"`
	// JSONFile is optional; empty disables the JSON listing.
	JSONFile string `yaml:"json_file"`
}

// WatchConfig controls watch-mode behavior.
type WatchConfig struct {
	Debounce Duration `yaml:"debounce"`
}

// Duration is a time.Duration that decodes YAML strings like "250ms"
// as well as plain nanosecond integers.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err == nil {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns a config populated with defaults.
func Default() *Config {
	return &Config{
		Manifest: DefaultManifest,
		Output: OutputConfig{
			GoFile:    DefaultGoFile,
			GoPackage: DefaultGoPackage,
		},
		Watch: WatchConfig{
			Debounce: Duration(DefaultDebounce),
		},
		LogDir: DefaultLogDir,
	}
}

// Load reads path and merges it over defaults. An empty path falls
// back to DefaultConfigFile; a missing default file is not an error,
// a missing explicit file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigLoad, "reading config").
			WithContext("path", path)
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigParse, "parsing config YAML").
			WithContext("path", path)
	}
	merge(cfg, &override)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge copies set fields from override into base.
func merge(base, override *Config) {
	if override.Manifest != "" {
		base.Manifest = override.Manifest
	}
	if override.Output.GoFile != "" {
		base.Output.GoFile = override.Output.GoFile
	}
	if override.Output.GoPackage != "" {
		base.Output.GoPackage = override.Output.GoPackage
	}
	if override.Output.JSONFile != "" {
		base.Output.JSONFile = override.Output.JSONFile
	}
	if override.Watch.Debounce != 0 {
		base.Watch.Debounce = override.Watch.Debounce
	}
	if override.LogDir != "" {
		base.LogDir = override.LogDir
	}
}

// Validate checks config invariants.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Manifest) == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "manifest path must not be empty")
	}
	if strings.TrimSpace(c.Output.GoFile) == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "output go_file must not be empty")
	}
	if !validGoPackage(c.Output.GoPackage) {
		return errors.New(errors.ErrCodeConfigInvalid, "output go_package is not a valid package name").
			WithContext("go_package", c.Output.GoPackage)
	}
	if c.Watch.Debounce <= 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "watch debounce must be positive").
			WithContext("debounce", c.Watch.Debounce.Std())
	}
	return nil
}

func validGoPackage(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		lower := r >= 'a' && r <= 'z'
		digit := r >= '0' && r <= '9'
		if !lower && r != '_' && !(digit && i > 0) {
			return false
		}
	}
	return true
}
