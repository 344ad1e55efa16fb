package solarsystem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the runtime options. Zero values are not meaningful, start from
// DefaultConfig.
type Config struct {
	TimeScale       float64 `toml:"time_scale" yaml:"time_scale"`
	Paused          bool    `toml:"paused" yaml:"paused"`
	StarCount       int     `toml:"star_count" yaml:"star_count"`
	LightIntensity  float64 `toml:"light_intensity" yaml:"light_intensity"`
	OrbitVisibility float64 `toml:"orbit_visibility" yaml:"orbit_visibility"`

	// Acceleration multiplies real seconds before TimeScale is applied.
	Acceleration  float64 `toml:"acceleration" yaml:"acceleration"`
	AsteroidCount int     `toml:"asteroid_count" yaml:"asteroid_count"`
	Tier          string  `toml:"tier" yaml:"tier"`
	Seed          int64   `toml:"seed" yaml:"seed"`
	LogLevel      string  `toml:"log_level" yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		TimeScale:       1,
		StarCount:       2000,
		LightIntensity:  1,
		OrbitVisibility: 0.5,
		Acceleration:    10,
		AsteroidCount:   100,
		Tier:            "auto",
		Seed:            1,
		LogLevel:        "info",
	}
}

func (c Config) Validate() error {
	if c.TimeScale < 0 {
		return fmt.Errorf("time_scale %v is negative: %w", c.TimeScale, ErrInvalidConfig)
	}
	if c.Acceleration < 0 {
		return fmt.Errorf("acceleration %v is negative: %w", c.Acceleration, ErrInvalidConfig)
	}
	if c.StarCount < 0 {
		return fmt.Errorf("star_count %d is negative: %w", c.StarCount, ErrInvalidConfig)
	}
	if c.AsteroidCount < 0 {
		return fmt.Errorf("asteroid_count %d is negative: %w", c.AsteroidCount, ErrInvalidConfig)
	}
	if c.LightIntensity < 0 {
		return fmt.Errorf("light_intensity %v is negative: %w", c.LightIntensity, ErrInvalidConfig)
	}
	if c.OrbitVisibility < 0 || c.OrbitVisibility > 1 {
		return fmt.Errorf("orbit_visibility %v outside [0,1]: %w", c.OrbitVisibility, ErrInvalidConfig)
	}
	if _, err := DetectTier(Capabilities{}, c.Tier); err != nil {
		return err
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %v: %w", err, ErrInvalidConfig)
		}
	}
	return nil
}

// DecodeConfig overlays data on top of the defaults. format is "toml" or "yaml".
func DecodeConfig(data []byte, format string) (Config, error) {
	cfg := DefaultConfig()
	switch format {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("decoding toml: %w", err)
		}
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q: %w", format, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig reads a .toml, .yaml or .yml file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("reading config: %w", err)
	}
	cfg, err := DecodeConfig(data, formatOf(path))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	}
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
