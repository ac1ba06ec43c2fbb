package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigVersion = 1
	defaultConfigRelPath = "dbglog/config.yaml"
)

var ErrInvalidConfig = errors.New("invalid config")

// Output names the stream debug lines are written to.
type Output string

const (
	OutputStderr Output = "stderr"
	OutputStdout Output = "stdout"
)

// Config is the top-level configuration schema.
//
// Category states are not configurable here; every process starts with all
// categories enabled.
type Config struct {
	Version int `yaml:"version"`

	Output     Output `yaml:"output"`
	Color      bool   `yaml:"color"`
	Timestamps bool   `yaml:"timestamps"`

	Debug Debug `yaml:"debug"`
}

// Debug holds the master switch and tool diagnostics.
type Debug struct {
	Enabled bool `yaml:"enabled"`
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the canonical default configuration.
func DefaultConfig() Config {
	return Config{
		Version:    DefaultConfigVersion,
		Output:     OutputStderr,
		Color:      true,
		Timestamps: false,
		Debug: Debug{
			Enabled: true,
			Verbose: false,
		},
	}
}

// Writer returns the stream selected by Output.
func (c Config) Writer() *os.File {
	if c.Output == OutputStdout {
		return os.Stdout
	}
	return os.Stderr
}

// DefaultPath returns the default config path.
func DefaultPath() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, defaultConfigRelPath), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", defaultConfigRelPath), nil
}

// Parse parses YAML config content, applying defaults.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads config from disk, applying defaults when missing.
// The boolean return indicates whether a config file was found.
func Load(pathOverride string) (Config, bool, error) {
	path := strings.TrimSpace(pathOverride)
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, false, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), false, nil
		}
		return Config{}, false, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// Validate enforces the supported configuration schema.
func (c Config) Validate() error {
	var errs []string
	if c.Version != DefaultConfigVersion {
		errs = append(errs, fmt.Sprintf("version must be %d", DefaultConfigVersion))
	}
	if !validOutput(c.Output) {
		errs = append(errs, fmt.Sprintf("output must be one of: %s", strings.Join(validOutputs(), ", ")))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

func validOutput(out Output) bool {
	switch out {
	case OutputStderr, OutputStdout:
		return true
	default:
		return false
	}
}

func validOutputs() []string {
	return []string{string(OutputStderr), string(OutputStdout)}
}
