package redis

import (
	"time"

	"github.com/Alijeyrad/agrolytics_backend/config"
)

// Config holds Redis connection settings. Zero values are replaced by
// DefaultConfig in FromCentralConfig.
type Config struct {
	Addr     string
	DB       int
	Username string
	Password string

	PoolSize     int
	MinIdleConns int

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Addr:         "localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// FromCentralConfig converts config.RedisConfig, filling unset values from DefaultConfig.
func FromCentralConfig(c config.RedisConfig) Config {
	def := DefaultConfig()
	return Config{
		Addr:         orDefault(c.Addr, def.Addr),
		DB:           c.DB,
		Username:     c.Username,
		Password:     c.Password,
		PoolSize:     orDefault(c.PoolSize, def.PoolSize),
		MinIdleConns: orDefault(c.MinIdleConns, def.MinIdleConns),
		DialTimeout:  orDefault(seconds(c.DialTimeoutSeconds), def.DialTimeout),
		ReadTimeout:  orDefault(seconds(c.ReadTimeoutSeconds), def.ReadTimeout),
		WriteTimeout: orDefault(seconds(c.WriteTimeoutSeconds), def.WriteTimeout),
	}
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
