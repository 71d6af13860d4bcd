// Package config loads canteenco2 settings from ~/.canteenco2/config.yaml,
// an optional project-local .canteenco2/config.yaml overlay, and
// CANTEENCO2_* environment variables, in that order of precedence (lowest
// first).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidConfig is returned by Validate and wraps every field problem.
const ErrInvalidConfig = constError("invalid configuration")

// Output formats understood by the CLI.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const (
	configFileName = "config.yaml"
	maxPort        = 65535
)

// Config is the full canteenco2 configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Data    DataConfig    `yaml:"data"`
	Server  ServerConfig  `yaml:"server"`
	Output  OutputConfig  `yaml:"output"`

	configPath string
}

// LoggingConfig controls the zerolog logger built at startup.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
	Caller bool   `yaml:"caller,omitempty"`
}

// DataConfig locates the reference datasets.
type DataConfig struct {
	// FactorsDB is the SQLite file holding emission factors. Empty means an
	// in-memory database seeded from the built-in data.
	FactorsDB string `yaml:"factors_db,omitempty"`
	// AutoSeed seeds FactorsDB with the built-in data when it has no schema.
	AutoSeed bool `yaml:"auto_seed"`
	// SourcingFile is a sourcing JSON document. Empty means the built-in
	// Danish produce calendar.
	SourcingFile string `yaml:"sourcing_file,omitempty"`
}

// ServerConfig is the listen address of `canteenco2 serve`.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// Default returns a Config with built-in defaults only; no file or
// environment is consulted.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Data: DataConfig{
			AutoSeed: true,
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080, //nolint:mnd // default listen port
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
	}
}

// New returns the effective configuration: defaults, then the user config
// file when it exists and parses, then environment overrides. Problems with
// the file are ignored here; use Load to surface them.
func New() *Config {
	path, err := DefaultConfigPath()
	if err == nil {
		if cfg, loadErr := Load(path); loadErr == nil {
			return cfg
		}
	}
	cfg := Default()
	cfg.ApplyEnvOverrides()
	return cfg
}

// DefaultConfigPath returns the location of the user config file.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the YAML file at path on top of the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML to path, or to the path it was
// loaded from when path is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		path = c.configPath
	}
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	c.configPath = path
	return nil
}

// Path returns the file the configuration was loaded from or saved to.
func (c *Config) Path() string {
	return c.configPath
}

// ApplyEnvOverrides copies CANTEENCO2_* variables onto the configuration.
// Unparseable numeric or boolean values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CANTEENCO2_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CANTEENCO2_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("CANTEENCO2_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("CANTEENCO2_FACTORS_DB"); v != "" {
		c.Data.FactorsDB = v
	}
	if v := os.Getenv("CANTEENCO2_AUTO_SEED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Data.AutoSeed = b
		}
	}
	if v := os.Getenv("CANTEENCO2_SOURCING_FILE"); v != "" {
		c.Data.SourcingFile = v
	}
	if v := os.Getenv("CANTEENCO2_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("CANTEENCO2_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("CANTEENCO2_OUTPUT_FORMAT"); v != "" {
		c.Output.DefaultFormat = v
	}
}

// Validate checks the values that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	var problems []string

	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
			problems = append(problems, fmt.Sprintf("logging.level %q is not a log level", c.Logging.Level))
		}
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q must be console or json", c.Logging.Format))
	}
	if c.Server.Port < 1 || c.Server.Port > maxPort {
		problems = append(problems, fmt.Sprintf("server.port %d out of range", c.Server.Port))
	}
	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON:
	default:
		problems = append(problems,
			fmt.Sprintf("output.default_format %q must be %s or %s", c.Output.DefaultFormat, FormatTable, FormatJSON))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Addr returns the host:port the API server listens on.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}
