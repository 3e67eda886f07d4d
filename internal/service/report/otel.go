package report

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/Alijeyrad/agrolytics_backend/internal/service/report"

var tracer = otel.Tracer(instrumentationName)

type instruments struct {
	generated metric.Int64Counter
	duration  metric.Float64Histogram
	failures  metric.Int64Counter
}

func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	generated, _ := meter.Int64Counter(
		"reports_generated_total",
		metric.WithDescription("Reports durably written, by report type"),
		metric.WithUnit("{report}"),
	)
	duration, _ := meter.Float64Histogram(
		"report_generation_duration_ms",
		metric.WithDescription("End-to-end report generation time in milliseconds"),
		metric.WithUnit("ms"),
	)
	failures, _ := meter.Int64Counter(
		"report_generation_failures_total",
		metric.WithDescription("Failed report generations, by report type and reason"),
		metric.WithUnit("{report}"),
	)

	return instruments{generated: generated, duration: duration, failures: failures}
}
