package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/Alijeyrad/agrolytics_backend/pkg/constants"
)

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(constants.ConfigName)
	viper.SetConfigType(constants.ConfigFormat)
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. AGROLYTICS_DATABASE_HOST overrides database.host
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// Read the config file (optional in Docker environments)
	if err := viper.ReadInConfig(); err != nil {
		// If config file not found but we have env vars, continue with defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only fail if it's not a "file not found" error
			if os.Getenv(constants.EnvPrefix+"_DATABASE_HOST") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults registers every key that may arrive only through the
// environment; AutomaticEnv ignores keys viper has never seen.
func setDefaults() {
	viper.SetDefault("database.host", "")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("report.fetch_timeout_seconds", 15)
	viper.SetDefault("report.fetch_failure_policy", FetchPolicyAbort)
	viper.SetDefault("report.cache_ttl_seconds", 3600)
	viper.SetDefault("report.profit_trend_threshold", 100)
	viper.SetDefault("report.default_list_limit", 20)
	viper.SetDefault("report.max_list_limit", 100)
	viper.SetDefault("archive.enabled", false)
	viper.SetDefault("archive.prefix", "reports")
	viper.SetDefault("nats.url", "")
	viper.SetDefault("s3.bucket", "")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output.stdout", true)
}
