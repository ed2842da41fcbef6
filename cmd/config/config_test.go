package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/e-commerce-orders/cmd/config"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "SERVER_PORT", "DB_HOST", "DB_PORT", "REDIS_ENABLED", "CACHE_ORDER_TTL"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Cache.OrderTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("CACHE_ORDER_TTL", "30s")
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-duration")

	cfg := config.Load()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.OrderTTL)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Host:     "db",
			Port:     3306,
			User:     "app",
			Password: "secret",
			Name:     "shop",
		},
	}

	assert.Equal(t, "app:secret@tcp(db:3306)/shop?parseTime=true&loc=UTC&clientFoundRows=true", cfg.GetDSN())
}

func TestConfig_GetAMQPURL(t *testing.T) {
	cfg := &config.Config{
		RabbitMQ: config.RabbitMQConfig{Host: "mq", Port: 5672, User: "guest", Password: "guest"},
	}

	assert.Equal(t, "amqp://guest:guest@mq:5672/", cfg.GetAMQPURL())
}
