package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Alijeyrad/agrolytics_backend/config"
)

func TestFromCentralConfig_Defaults(t *testing.T) {
	got := FromCentralConfig(config.RedisConfig{DB: 2})

	assert.Equal(t, "localhost:6379", got.Addr)
	assert.Equal(t, 2, got.DB)
	assert.Equal(t, 10, got.PoolSize)
	assert.Equal(t, 5*time.Second, got.DialTimeout)
	assert.Equal(t, 3*time.Second, got.ReadTimeout)
}

func TestFromCentralConfig_Overrides(t *testing.T) {
	got := FromCentralConfig(config.RedisConfig{
		Addr:               "cache:6380",
		PoolSize:           25,
		ReadTimeoutSeconds: 1,
	})

	assert.Equal(t, "cache:6380", got.Addr)
	assert.Equal(t, 25, got.PoolSize)
	assert.Equal(t, 2, got.MinIdleConns)
	assert.Equal(t, time.Second, got.ReadTimeout)
}
