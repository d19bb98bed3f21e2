package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/2beens/fitprogress/pkg"
)

const (
	DefaultWorkoutsPath      = "./data/workouts.csv"
	DefaultHealthMetricsPath = "./data/health-metrics.json"
	DefaultLogLevel          = "info"
)

type Config struct {
	Environment string `toml:"-"`
	// Source is the file the config was read from, empty when defaults were used.
	Source string `toml:"-"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStderr   bool   `toml:"log_to_stderr"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// inputs
	WorkoutsPath      string `toml:"workouts_path"`
	HealthMetricsPath string `toml:"health_metrics_path"`
	// telemetry
	MetricsTextfile string `toml:"metrics_textfile"`
	TracingEnabled  bool   `toml:"tracing_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
		env = "development"
	case "prod", "production":
		cfg = t.Production
		env = "production"
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in config", env)
	}
	cfg.Environment = env
	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the config used when no config file is present.
func Default(env string) (*Config, error) {
	t := &Toml{
		Development: &Config{},
		Production:  &Config{},
	}
	return t.Get(env)
}

// Load reads the TOML config at path and picks the section for env.
// A missing file is not an error, the defaults are used instead.
func Load(env, path string) (*Config, error) {
	exists, err := pkg.PathExists(path, false)
	if err != nil {
		return nil, fmt.Errorf("check config path %s: %w", path, err)
	}
	if !exists {
		return Default(env)
	}

	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Source = path

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.WorkoutsPath == "" {
		c.WorkoutsPath = DefaultWorkoutsPath
	}
	if c.HealthMetricsPath == "" {
		c.HealthMetricsPath = DefaultHealthMetricsPath
	}
}
