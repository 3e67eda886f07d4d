package report

import (
	"errors"
	"fmt"
)

var (
	ErrUserRequired               = errors.New("userId is required")
	ErrInvalidReportType          = errors.New("invalid report type")
	ErrInvalidDate                = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange           = errors.New("startDate must not be after endDate")
	ErrInvalidFarmID              = errors.New("invalid farm id")
	ErrFarmSummaryRequiresOneFarm = errors.New("farm_summary requires exactly one farm id")
	ErrFarmNotFound               = errors.New("farm not found")
	ErrReportNotFound             = errors.New("report not found")
	ErrTelemetryUnavailable       = errors.New("telemetry unavailable")
	ErrPersistence                = errors.New("failed to persist report")
)

// ValidationError marks a request that was rejected before any computation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
