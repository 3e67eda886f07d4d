package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/agrolytics_backend/internal/api/http/handler"
)

func (r *Router) registerReportRoutes(api fiber.Router, rh *handler.ReportHandler) {
	reports := api.Group("/reports")

	reports.Get("/", rh.List)
	reports.Post("/", rh.Generate)
	reports.Get("/:id", rh.Get)
}
