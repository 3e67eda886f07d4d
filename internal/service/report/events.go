package report

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// NATS subjects. A generated event is published once per durably written report.
const (
	SubjectReportGenerated    = "agrolytics.report.generated.%s"
	SubjectReportGeneratedAll = "agrolytics.report.generated.*"
)

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

type GeneratedEvent struct {
	ReportID   uuid.UUID  `json:"reportId"`
	UserID     string     `json:"userId"`
	ReportType ReportType `json:"reportType"`
}

// publishGenerated is fire-and-forget; the report is already stored.
func publishGenerated(p Publisher, r *Report) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(GeneratedEvent{ReportID: r.ID, UserID: r.UserID, ReportType: r.Type})
	if err != nil {
		slog.Warn("failed to encode report event", "report_id", r.ID, "err", err)
		return
	}

	if err := p.Publish(fmt.Sprintf(SubjectReportGenerated, r.ID), payload); err != nil {
		slog.Warn("failed to publish report event", "report_id", r.ID, "err", err)
	}
}
