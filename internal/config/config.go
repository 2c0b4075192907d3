package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/fraudsim/internal/logger"
)

// EnvStatsURL overrides Stats.BaseURL when set.
const EnvStatsURL = "FRAUDSIM_STATS_URL"

var ErrInvalid = errors.New("config: invalid")

var validate = validator.New()

type Config struct {
	Variant    string           `yaml:"variant"`
	Theme      string           `yaml:"theme" default:"neon" validate:"oneof=neon cyberpunk retro minimal ocean sunset"`
	Seed       int64            `yaml:"seed"`
	Simulation SimulationConfig `yaml:"simulation"`
	Insight    InsightConfig    `yaml:"insight"`
	Arena      ArenaConfig      `yaml:"arena"`
	Stats      StatsConfig      `yaml:"stats"`
	Server     ServerConfig     `yaml:"server"`
	Log        logger.Config    `yaml:"log"`
}

type SimulationConfig struct {
	Step    int           `yaml:"step" default:"2" validate:"gt=0"`
	Ceiling int           `yaml:"ceiling" default:"100" validate:"gt=0"`
	Period  time.Duration `yaml:"period" default:"100ms" validate:"gt=0"`
	FPS     int           `yaml:"fps" default:"30" validate:"gt=0,lte=120"`
}

type InsightConfig struct {
	Interval time.Duration `yaml:"interval" default:"5s" validate:"gt=0"`
}

type ArenaConfig struct {
	Points           int     `yaml:"points" default:"80" validate:"gte=0"`
	FlagPoints       int     `yaml:"flag_points" default:"40" validate:"gte=0"`
	Width            float64 `yaml:"width" default:"460" validate:"gt=0"`
	Height           float64 `yaml:"height" default:"260" validate:"gt=0"`
	FraudProbability float64 `yaml:"fraud_probability" default:"0.15" validate:"gte=0,lte=1"`
}

type StatsConfig struct {
	BaseURL string        `yaml:"base_url" default:"http://127.0.0.1:8000" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"` // zero: no timeout
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" default:":8000" validate:"required"`
	Fail            bool          `yaml:"fail"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"5s" validate:"gt=0"`
}

func DefaultConfig() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic(fmt.Sprintf("config: defaults: %v", err))
	}
	return cfg
}

// Load reads path over the defaults, applies the environment override and
// validates. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		// keys absent from the file keep their defaults; explicit zeros stay zero
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) ApplyEnv() {
	if url := os.Getenv(EnvStatsURL); url != "" {
		c.Stats.BaseURL = url
	}
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// FrameInterval is the animation tick period.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Simulation.FPS)
}
