package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Storage drivers understood by database.Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the runtime settings of the service.
type Config struct {
	AppName string `mapstructure:"APP_NAME" validate:"required"`
	Env     string `mapstructure:"APP_ENV" validate:"required"`
	Port    string `mapstructure:"APP_PORT" validate:"required"`

	DatabaseDriver string `mapstructure:"DATABASE_DRIVER" validate:"oneof=sqlite postgres memory"`
	DatabaseDSN    string `mapstructure:"DATABASE_DSN" validate:"required_unless=DatabaseDriver memory"`

	// RabbitMQURL is optional; product events are not published when it is empty.
	RabbitMQURL   string `mapstructure:"RABBITMQ_URL"`
	RabbitMQQueue string `mapstructure:"RABBITMQ_QUEUE" validate:"required_with=RabbitMQURL"`

	LogLevel string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "Smart Inventory API")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", ":8000")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "inventory.db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "product_events")
	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads configuration from the environment and, when present, from a
// config.yaml in the working directory. Environment variables win.
func Load() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper decodes and validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "local"
}
