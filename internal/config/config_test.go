package config_test

import (
	"testing"

	"inventory/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Smart Inventory API", cfg.AppName)
	assert.Equal(t, ":8000", cfg.Port)
	assert.Equal(t, config.DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "inventory.db", cfg.DatabaseDSN)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "product_events", cfg.RabbitMQQueue)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, config.DriverMemory, cfg.DatabaseDriver)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.IsDevelopment())
}

func TestFromViper_Invalid(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("DATABASE_DRIVER", "mysql")

	_, err := config.FromViper(v)
	assert.Error(t, err)

	v = viper.New()
	config.SetDefaults(v)
	v.Set("DATABASE_DSN", "")

	_, err = config.FromViper(v)
	assert.Error(t, err)

	v.Set("DATABASE_DRIVER", "memory")
	_, err = config.FromViper(v)
	assert.NoError(t, err)
}
