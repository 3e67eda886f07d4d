package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/agrolytics_backend/config"
	"github.com/Alijeyrad/agrolytics_backend/internal/service/report"
	s3pkg "github.com/Alijeyrad/agrolytics_backend/pkg/s3"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	NC        *nats.Conn    `optional:"true"`
	S3        *s3pkg.Client `optional:"true"`
	ReportSvc report.Service
}

func RegisterWorkers(p WorkerParams) {
	var subs []*nats.Subscription

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !p.Cfg.Archive.Enabled || p.NC == nil || p.S3 == nil {
				slog.Info("archive_worker: disabled")
				return nil
			}
			w := &archiveWorker{reports: p.ReportSvc, objects: p.S3, prefix: p.Cfg.Archive.Prefix}
			sub, err := startArchiveWorker(p.NC, w)
			if err != nil {
				return err
			}
			subs = append(subs, sub)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			for _, s := range subs {
				_ = s.Unsubscribe()
			}
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// archive_worker
// ---------------------------------------------------------------------------

type objectPutter interface {
	PutJSON(ctx context.Context, key string, body []byte) error
}

type archiveWorker struct {
	reports report.Service
	objects objectPutter
	prefix  string
}

func startArchiveWorker(nc *nats.Conn, w *archiveWorker) (*nats.Subscription, error) {
	sub, err := nc.QueueSubscribe(report.SubjectReportGeneratedAll, "archive_worker", func(msg *nats.Msg) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := w.handle(ctx, msg); err != nil {
			slog.Warn("archive_worker: archive failed", "subject", msg.Subject, "err", err)
		}
	})
	if err != nil {
		slog.Error("archive_worker: subscribe report.generated failed", "err", err)
		return nil, err
	}
	return sub, nil
}

func (w *archiveWorker) handle(ctx context.Context, msg *nats.Msg) error {
	parts := strings.Split(msg.Subject, ".")
	if len(parts) < 4 {
		return fmt.Errorf("unexpected subject %q", msg.Subject)
	}
	reportID, err := uuid.Parse(parts[3])
	if err != nil {
		return fmt.Errorf("invalid report id in subject: %w", err)
	}

	var ev report.GeneratedEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}
	if ev.ReportID != reportID {
		return fmt.Errorf("event report id %s does not match subject", ev.ReportID)
	}

	rep, err := w.reports.Get(ctx, reportID, ev.UserID)
	if err != nil {
		return fmt.Errorf("load report %s: %w", reportID, err)
	}

	body, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report %s: %w", reportID, err)
	}

	key := archiveKey(w.prefix, ev.UserID, reportID)
	if err := w.objects.PutJSON(ctx, key, body); err != nil {
		return err
	}

	slog.Info("archive_worker: report archived", "report_id", reportID, "key", key)
	return nil
}

// archiveKey is {prefix}/{user_id}/{report_id}.json.
func archiveKey(prefix, userID string, reportID uuid.UUID) string {
	return path.Join(prefix, userID, reportID.String()+".json")
}
