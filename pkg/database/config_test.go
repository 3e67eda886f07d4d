package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Alijeyrad/agrolytics_backend/config"
)

func TestFromCentralConfig(t *testing.T) {
	c := config.DatabaseConfig{Host: "db", User: "agro", Password: "secret", DBName: "agrolytics"}
	c.Pool.MaxOpenConns = 50

	cfg := FromCentralConfig(c)

	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Equal(t, 50, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime())
	assert.Equal(t,
		"host=db port=5432 user=agro password=secret dbname=agrolytics sslmode=disable",
		cfg.DSN())
}
