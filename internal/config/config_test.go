package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "portal.invalidate", cfg.KafkaTopic)
	assert.Nil(t, cfg.KafkaBrokers)
	assert.Equal(t, 10, cfg.ReapIntervalMinutes)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("KAFKA_BROKERS", "b1:9092, b2:9092,")
	t.Setenv("REAP_INTERVAL_MINUTES", "3")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, []string{"b1:9092", "b2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 3, cfg.ReapIntervalMinutes)
	assert.Equal(t, 0, cfg.RedisDB, "bad ints fall back to the default")
}

func TestDSN(t *testing.T) {
	cfg := Config{DBHost: "h", DBPort: "5433", DBUser: "u", DBPassword: "p", DBName: "d"}
	assert.Equal(t, "host=h user=u password=p dbname=d port=5433 sslmode=disable", cfg.DSN())
}
