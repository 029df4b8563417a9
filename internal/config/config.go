// Package config loads the tgdemo configuration.
//
// Values start from Defaults, are overlaid by an optional YAML file and
// finally by TINYGFX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoggingConfig selects the log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// RenderConfig describes the frame the scene is rendered into.
type RenderConfig struct {
	Width      uint32 `yaml:"width"`
	Height     uint32 `yaml:"height"`
	Scale      int    `yaml:"scale"`
	Background string `yaml:"background"`
}

// Config is the complete tgdemo configuration.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
	Preview bool          `yaml:"preview"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Render:  RenderConfig{Width: 128, Height: 64, Scale: 1, Background: "black"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Environment variables overriding file values.
const (
	EnvWidth      = "TINYGFX_WIDTH"
	EnvHeight     = "TINYGFX_HEIGHT"
	EnvScale      = "TINYGFX_SCALE"
	EnvBackground = "TINYGFX_BACKGROUND"
	EnvPreview    = "TINYGFX_PREVIEW"
	EnvLogLevel   = "TINYGFX_LOG_LEVEL"
	EnvLogFormat  = "TINYGFX_LOG_FORMAT"
	EnvLogSource  = "TINYGFX_LOG_SOURCE"
	EnvLogFile    = "TINYGFX_LOG_FILE"
)

// Configuration errors.
var (
	ErrInvalidSize  = errors.New("config: render size must be positive")
	ErrInvalidScale = errors.New("config: scale must be at least 1")
)

// Load returns the defaults overlaid by the YAML file at path and by the
// environment. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Save writes cfg as YAML to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate checks the render settings.
func (c Config) Validate() error {
	if c.Render.Width == 0 || c.Render.Height == 0 {
		return ErrInvalidSize
	}
	if c.Render.Scale < 1 {
		return ErrInvalidScale
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if err := envUint(EnvWidth, &cfg.Render.Width); err != nil {
		return err
	}
	if err := envUint(EnvHeight, &cfg.Render.Height); err != nil {
		return err
	}
	if v := env(EnvScale); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvScale, err)
		}
		cfg.Render.Scale = n
	}
	if v := env(EnvBackground); v != "" {
		cfg.Render.Background = v
	}
	if v := env(EnvPreview); v != "" {
		cfg.Preview = truthy(v)
	}
	if v := env(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := env(EnvLogFormat); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := env(EnvLogSource); v != "" {
		cfg.Logging.Source = truthy(v)
	}
	if v := env(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
	return nil
}

func env(key string) string { return strings.TrimSpace(os.Getenv(key)) }

func envUint(key string, dst *uint32) error {
	v := env(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = uint32(n)
	return nil
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
