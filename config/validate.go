package config

import (
	"errors"
	"fmt"
	"time"
)

func (c *Config) Validate() error {
	var errs []error

	if c.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}

	switch c.Report.FetchFailurePolicy {
	case "", FetchPolicyAbort, FetchPolicyDegrade:
	default:
		errs = append(errs, fmt.Errorf("report.fetch_failure_policy must be %q or %q, got %q",
			FetchPolicyAbort, FetchPolicyDegrade, c.Report.FetchFailurePolicy))
	}
	if c.Report.FetchTimeoutSeconds < 0 {
		errs = append(errs, errors.New("report.fetch_timeout_seconds must not be negative"))
	}
	if c.Report.CacheTTLSeconds < 0 {
		errs = append(errs, errors.New("report.cache_ttl_seconds must not be negative"))
	}

	if c.Archive.Enabled {
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("s3.bucket is required when archive is enabled"))
		}
		if c.Nats.URL == "" {
			errs = append(errs, errors.New("nats.url is required when archive is enabled"))
		}
	}

	return errors.Join(errs...)
}

// FetchTimeout is the per-fetch deadline for telemetry queries.
func (r ReportConfig) FetchTimeout() time.Duration {
	if r.FetchTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(r.FetchTimeoutSeconds) * time.Second
}

func (r ReportConfig) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLSeconds) * time.Second
}

// DegradeOnFetchError reports whether failed telemetry domains fall back to
// empty analytics instead of aborting the report.
func (r ReportConfig) DegradeOnFetchError() bool {
	return r.FetchFailurePolicy == FetchPolicyDegrade
}

func (r ReportConfig) ListLimits() (def, maximum int) {
	def, maximum = r.DefaultListLimit, r.MaxListLimit
	if def <= 0 {
		def = 20
	}
	if maximum <= 0 {
		maximum = 100
	}
	return min(def, maximum), maximum
}
