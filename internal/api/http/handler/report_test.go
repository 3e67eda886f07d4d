package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/agrolytics_backend/internal/service/report"
	"github.com/Alijeyrad/agrolytics_backend/internal/store"
)

type fakeReportService struct {
	generateErr error
	getErr      error
	calls       int

	lastReq    report.Request
	lastUserID string
	lastLimit  int
	lastOffset int
}

func (f *fakeReportService) Generate(_ context.Context, req report.Request) (*report.Report, error) {
	f.calls++
	f.lastReq = req
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return &report.Report{
		ID:        uuid.MustParse("0b8f5c9e-2f0e-4a35-8f53-6a1f0e3c7a11"),
		UserID:    req.UserID,
		Title:     "t",
		Type:      report.ReportType(req.ReportType),
		Data:      report.Document{ReportType: report.ReportType(req.ReportType)},
		CreatedAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeReportService) Get(_ context.Context, id uuid.UUID, userID string) (*report.Report, error) {
	f.calls++
	f.lastUserID = userID
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &report.Report{ID: id, UserID: userID, Type: report.TypeSoilAnalysis}, nil
}

func (f *fakeReportService) List(_ context.Context, userID string, limit, offset int) ([]store.Summary, error) {
	f.calls++
	f.lastUserID, f.lastLimit, f.lastOffset = userID, limit, offset
	return []store.Summary{{ID: uuid.New(), Title: "a", ReportType: "soil_analysis"}}, nil
}

func newTestApp(svc report.Service) *fiber.App {
	app := fiber.New(fiber.Config{StructValidator: NewValidator()})
	h := NewReportHandler(svc)
	app.Post("/reports", h.Generate)
	app.Get("/reports", h.List)
	app.Get("/reports/:id", h.Get)
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

const validBody = `{"userId":"user-1","reportType":"soil_analysis","startDate":"2024-06-01","endDate":"2024-06-30"}`

func TestReportHandler_Generate(t *testing.T) {
	svc := &fakeReportService{}
	app := newTestApp(svc)

	status, body := do(t, app, http.MethodPost, "/reports", validBody)

	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])
	rep, ok := body["report"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "0b8f5c9e-2f0e-4a35-8f53-6a1f0e3c7a11", rep["id"])
	assert.Equal(t, "soil_analysis", rep["type"])
	assert.NotContains(t, rep, "userId")
	assert.Equal(t, "user-1", svc.lastReq.UserID)
}

func TestReportHandler_GenerateRejectsBadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"userId":`},
		{"missing user", `{"reportType":"soil_analysis","startDate":"2024-06-01","endDate":"2024-06-30"}`},
		{"bad farm id", `{"userId":"u","reportType":"soil_analysis","startDate":"2024-06-01","endDate":"2024-06-30","farmIds":["x"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeReportService{}
			status, body := do(t, newTestApp(svc), http.MethodPost, "/reports", tt.body)

			assert.Equal(t, http.StatusBadRequest, status)
			assert.NotEmpty(t, body["error"])
			assert.Zero(t, svc.calls)
		})
	}
}

func TestReportHandler_GenerateErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   any
	}{
		{"validation", &report.ValidationError{Field: "farmIds", Err: report.ErrFarmSummaryRequiresOneFarm}, http.StatusBadRequest, nil},
		{"farm not found", report.ErrFarmNotFound, http.StatusNotFound, nil},
		{"upstream", fmt.Errorf("%w: soil: %w", report.ErrTelemetryUnavailable, errors.New("timeout")), http.StatusBadGateway, "upstream_error"},
		{"persistence", fmt.Errorf("%w: %w", report.ErrPersistence, errors.New("conn refused")), http.StatusInternalServerError, "persistence_error"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeReportService{generateErr: tt.err}
			status, body := do(t, newTestApp(svc), http.MethodPost, "/reports", validBody)

			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, body["error"])
			assert.Equal(t, tt.wantCode, body["code"])
			assert.NotContains(t, body, "report")
		})
	}
}

func TestReportHandler_Get(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc := &fakeReportService{}
		status, body := do(t, newTestApp(svc), http.MethodGet, "/reports/"+id.String()+"?userId=user-1", "")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "user-1", svc.lastUserID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeReportService{getErr: report.ErrReportNotFound}
		status, _ := do(t, newTestApp(svc), http.MethodGet, "/reports/"+id.String()+"?userId=user-1", "")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("bad id", func(t *testing.T) {
		svc := &fakeReportService{}
		status, _ := do(t, newTestApp(svc), http.MethodGet, "/reports/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Zero(t, svc.calls)
	})
}

func TestReportHandler_List(t *testing.T) {
	svc := &fakeReportService{}
	status, body := do(t, newTestApp(svc), http.MethodGet, "/reports?userId=user-1&limit=5&offset=10", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	reports, ok := body["reports"].([]any)
	require.True(t, ok)
	assert.Len(t, reports, 1)
	assert.Equal(t, "user-1", svc.lastUserID)
	assert.Equal(t, 5, svc.lastLimit)
	assert.Equal(t, 10, svc.lastOffset)
}
