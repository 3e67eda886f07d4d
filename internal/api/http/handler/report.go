package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Alijeyrad/agrolytics_backend/internal/service/report"
	"github.com/Alijeyrad/agrolytics_backend/pkg/reqctx"
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func mapReportError(c fiber.Ctx, err error) error {
	switch {
	case report.IsValidation(err):
		return badRequest(c, err.Error())
	case errors.Is(err, report.ErrReportNotFound), errors.Is(err, report.ErrFarmNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, report.ErrTelemetryUnavailable):
		logFailure(c, err)
		return badGateway(c, "failed to fetch farm data")
	case errors.Is(err, report.ErrPersistence):
		logFailure(c, err)
		return persistenceError(c)
	default:
		logFailure(c, err)
		return internalError(c)
	}
}

func logFailure(c fiber.Ctx, err error) {
	slog.ErrorContext(c.Context(), "report request failed",
		"request_id", reqctx.RequestIDFromContext(c.Context()),
		"method", c.Method(),
		"path", c.Path(),
		"err", err,
	)
}

// POST /reports
func (h *ReportHandler) Generate(c fiber.Ctx) error {
	var body report.Request
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, bindErrorMessage(err))
	}

	r, err := h.svc.Generate(c.Context(), body)
	if err != nil {
		return mapReportError(c, err)
	}

	return created(c, "report", r)
}

// GET /reports/:id?userId=
func (h *ReportHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid report id")
	}

	r, err := h.svc.Get(c.Context(), id, c.Query("userId"))
	if err != nil {
		return mapReportError(c, err)
	}

	return ok(c, "report", r)
}

// GET /reports?userId=&limit=&offset=
func (h *ReportHandler) List(c fiber.Ctx) error {
	var q struct {
		UserID string `query:"userId"`
		Limit  int    `query:"limit"`
		Offset int    `query:"offset"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	reports, err := h.svc.List(c.Context(), q.UserID, q.Limit, q.Offset)
	if err != nil {
		return mapReportError(c, err)
	}

	return ok(c, "reports", reports)
}
