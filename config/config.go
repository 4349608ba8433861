// Package config loads lalg settings from a TOML file and LALG_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// ErrInvalid reports a configuration that fails validation.
var ErrInvalid = errors.New("invalid configuration")

// DefaultFile is looked up in the user config directory when no path is
// given.
const DefaultFile = "lalg.toml"

type Config struct {
	Output Output `toml:"output"`
	Log    Log    `toml:"log"`
	LSP    LSP    `toml:"lsp"`
}

type Output struct {
	Format string `toml:"format" validate:"oneof=text json yaml"`
	Trace  bool   `toml:"trace"`
}

type Log struct {
	Verbosity int    `toml:"verbosity" validate:"gte=0,lte=5"`
	Path      string `toml:"path"`
}

type LSP struct {
	Name string `toml:"name" validate:"required"`
}

func Default() *Config {
	return &Config{
		Output: Output{Format: "text"},
		LSP:    LSP{Name: "lalg"},
	}
}

// DefaultPath returns the config file path under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lalg", DefaultFile)
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path means DefaultPath, which may be
// missing.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		_, err := toml.DecodeFile(path, cfg)
		switch {
		case err == nil:
		case !explicit && errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults without consulting the
// environment.
func Parse(text string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(text, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Output.Format = getEnv("LALG_FORMAT", c.Output.Format)
	c.Log.Path = getEnv("LALG_LOG", c.Log.Path)
	c.LSP.Name = getEnv("LALG_LSP_NAME", c.LSP.Name)

	if v, ok := os.LookupEnv("LALG_TRACE"); ok {
		trace, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: LALG_TRACE: %v", ErrInvalid, err)
		}
		c.Output.Trace = trace
	}
	if v, ok := os.LookupEnv("LALG_VERBOSITY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: LALG_VERBOSITY: %v", ErrInvalid, err)
		}
		c.Log.Verbosity = n
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
