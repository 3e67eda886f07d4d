package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/agrolytics_backend/config"
)

func TestConfigFrom(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Environment = "production"
	cfg.Observability.ServiceVersion = "1.2.0"
	cfg.Observability.Tracing = config.TracingConfig{
		Enabled:      false,
		OTLPEndpoint: "collector:4318",
		SamplingRate: 0.5,
	}
	cfg.Observability.Metrics.Enabled = true

	got := ConfigFrom(cfg)

	assert.Equal(t, "agrolytics", got.ServiceName)
	assert.Equal(t, "production", got.Environment)
	assert.Empty(t, got.OTLPEndpoint)
	assert.True(t, got.MetricsEnabled)

	cfg.Observability.Tracing.Enabled = true
	assert.Equal(t, "collector:4318", ConfigFrom(cfg).OTLPEndpoint)
}

func TestInitTelemetry_WithoutMetrics(t *testing.T) {
	p, err := InitTelemetry(context.Background(), Config{ServiceName: "test"})
	require.NoError(t, err)

	assert.NotNil(t, p.TracerProvider)
	assert.Nil(t, p.MeterProvider)
	assert.Nil(t, p.PrometheusExporter)
	assert.NoError(t, p.Shutdown(context.Background()))
}
