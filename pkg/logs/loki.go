package logs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Alijeyrad/agrolytics_backend/config"
)

// lokiWriter pushes each JSON log line to Loki's push API as its own stream entry.
type lokiWriter struct {
	endpoint string
	username string
	password string
	client   *http.Client
	labels   map[string]string
	now      func() time.Time
}

type lokiPush struct {
	Streams []lokiStream `json:"streams"`
}

type lokiStream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"`
}

func newLokiWriter(cfg *config.Config) *lokiWriter {
	return &lokiWriter{
		endpoint: cfg.Logging.Output.Loki.Endpoint + "/loki/api/v1/push",
		username: cfg.Logging.Output.Loki.Username,
		password: cfg.Logging.Output.Loki.Password,
		client:   &http.Client{Timeout: 3 * time.Second},
		labels: map[string]string{
			"service": cfg.Observability.ServiceName,
			"env":     cfg.Server.Environment,
		},
		now: time.Now,
	}
}

func newLokiHandler(cfg *config.Config, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(newLokiWriter(cfg), &slog.HandlerOptions{Level: level})
}

func (lw *lokiWriter) Write(p []byte) (int, error) {
	line := string(bytes.TrimRight(p, "\n"))
	ts := strconv.FormatInt(lw.now().UnixNano(), 10)

	payload, err := json.Marshal(lokiPush{Streams: []lokiStream{{
		Stream: lw.labels,
		Values: [][2]string{{ts, line}},
	}}})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, lw.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if lw.username != "" {
		req.SetBasicAuth(lw.username, lw.password)
	}

	resp, err := lw.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return 0, fmt.Errorf("loki push: unexpected status %d", resp.StatusCode)
	}
	return len(p), nil
}
