package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Host: "localhost", DBName: "agrolytics"},
		Server:   ServerConfig{Port: 8080},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	c := validConfig()
	c.Database.Host = ""
	c.Server.Port = 70000
	c.Report.FetchFailurePolicy = "retry"
	c.Report.CacheTTLSeconds = -1
	c.Archive.Enabled = true

	err := c.Validate()
	require.Error(t, err)

	for _, want := range []string{
		"database.host is required",
		"server.port 70000 out of range",
		`report.fetch_failure_policy must be "abort" or "degrade", got "retry"`,
		"report.cache_ttl_seconds must not be negative",
		"s3.bucket is required when archive is enabled",
		"nats.url is required when archive is enabled",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestReportConfig_Defaults(t *testing.T) {
	var r ReportConfig

	assert.Equal(t, 15*time.Second, r.FetchTimeout())
	assert.Zero(t, r.CacheTTL())
	assert.False(t, r.DegradeOnFetchError())

	def, maximum := r.ListLimits()
	assert.Equal(t, 20, def)
	assert.Equal(t, 100, maximum)
}

func TestReportConfig_Overrides(t *testing.T) {
	r := ReportConfig{
		FetchTimeoutSeconds: 3,
		FetchFailurePolicy:  FetchPolicyDegrade,
		CacheTTLSeconds:     60,
		DefaultListLimit:    50,
		MaxListLimit:        10,
	}

	assert.Equal(t, 3*time.Second, r.FetchTimeout())
	assert.Equal(t, time.Minute, r.CacheTTL())
	assert.True(t, r.DegradeOnFetchError())

	def, maximum := r.ListLimits()
	assert.Equal(t, 10, def)
	assert.Equal(t, 10, maximum)
}
