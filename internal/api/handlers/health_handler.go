package handlers

import "github.com/gofiber/fiber/v2"

func RegisterHealthRoutes(app *fiber.App) {
	app.Get("/api/health", getHealth)
}

func getHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
