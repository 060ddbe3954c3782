package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("REDIS_DB", "")

	cfg := LoadConfig()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "cafe-pos.db", cfg.DB.SQLitePath)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, "pos:", cfg.Redis.Prefix)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "2")

	cfg := LoadConfig()
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestPostgresDSN(t *testing.T) {
	db := DBConfig{Host: "db", Port: "5432", User: "pos", Password: "pw", Name: "cafe"}
	assert.Equal(t, "host=db user=pos password=pw dbname=cafe port=5432 sslmode=disable TimeZone=Asia/Jakarta", db.PostgresDSN())

	db.URL = "postgres://pos@db/cafe"
	assert.Equal(t, "postgres://pos@db/cafe", db.PostgresDSN())
}
