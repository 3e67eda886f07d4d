package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

// params is a validated Request.
type params struct {
	UserID  string
	Type    ReportType
	From    time.Time
	To      time.Time
	FarmIDs []uuid.UUID
	Title   string
	Options Options
}

func (p params) period() Period {
	return Period{Start: p.From.Format(dateLayout), End: p.To.Format(dateLayout)}
}

// firstFarm is stored alongside the report for filtering.
func (p params) firstFarm() uuid.NullUUID {
	if len(p.FarmIDs) == 0 {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: p.FarmIDs[0], Valid: true}
}

func validate(req Request) (params, error) {
	var p params

	p.UserID = strings.TrimSpace(req.UserID)
	if p.UserID == "" {
		return p, invalid("userId", ErrUserRequired)
	}

	p.Type = ReportType(strings.TrimSpace(req.ReportType))
	if !p.Type.Valid() {
		return p, invalid("reportType", fmt.Errorf("%w: %q", ErrInvalidReportType, req.ReportType))
	}

	var err error
	if p.From, err = parseDate(req.StartDate); err != nil {
		return p, invalid("startDate", err)
	}
	if p.To, err = parseDate(req.EndDate); err != nil {
		return p, invalid("endDate", err)
	}
	if p.From.After(p.To) {
		return p, invalid("startDate", ErrInvalidDateRange)
	}

	if p.Type == TypeFarmSummary && len(req.FarmIDs) != 1 {
		return p, invalid("farmIds", ErrFarmSummaryRequiresOneFarm)
	}

	for _, raw := range req.FarmIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return p, invalid("farmIds", fmt.Errorf("%w: %q", ErrInvalidFarmID, raw))
		}
		p.FarmIDs = append(p.FarmIDs, id)
	}
	p.FarmIDs = lo.Uniq(p.FarmIDs)

	p.Title = strings.TrimSpace(req.Title)
	if p.Title == "" {
		p.Title = DefaultTitle(p.Type, p.From, p.To)
	}
	p.Options = req.Options

	return p, nil
}

// DefaultTitle is "<reportType> Report - <start> to <end>".
func DefaultTitle(t ReportType, from, to time.Time) string {
	return fmt.Sprintf("%s Report - %s to %s", t, from.Format(dateLayout), to.Format(dateLayout))
}

// parseDate accepts a calendar date or an RFC3339 timestamp and returns the
// calendar date at UTC midnight.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
