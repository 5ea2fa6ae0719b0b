package config

import (
	"ctchen222/tictactoe-engine/internal/validator"
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Telemetry struct {
	Enabled      bool   `yaml:"enabled" env:"TICTACTOE_TELEMETRY_ENABLED" env-default:"false"`
	Endpoint     string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"otel-collector:4317" validate:"required_if=Enabled true,omitempty,hostname_port"`
	ServiceName  string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe" validate:"required"`
	StdoutTraces bool   `yaml:"stdout-traces" env:"TICTACTOE_STDOUT_TRACES" env-default:"false"`
}

// Load reads configuration from the YAML file at path, with environment overrides.
// An empty path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := validator.Check(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load configuration or panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Level converts LogLevel to a slog level.
func (that *Config) Level() slog.Level {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
