package handler

import "github.com/gofiber/fiber/v3"

const (
	codeUpstream    = "upstream_error"
	codePersistence = "persistence_error"
)

func ok(c fiber.Ctx, key string, data any) error {
	return c.JSON(fiber.Map{"success": true, key: data})
}

func created(c fiber.Ctx, key string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, key: data})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notFound(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

func badGateway(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": msg, "code": codeUpstream})
}

func persistenceError(c fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "failed to save report",
		"code":  codePersistence,
	})
}

func internalError(c fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
