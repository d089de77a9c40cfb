package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var Version = "v1.0.0"

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": Version,
	})
}

func APIHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"message":   "Lagos Transit Navigator API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func APIIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Lagos Transit Navigator API",
		"version": Version,
		"endpoints": fiber.Map{
			"health":   "GET /core/health",
			"route":    "POST /core/planner/route",
			"plan":     "GET /core/planner/:origin/:destination",
			"stops":    "GET /core/stops?q=query",
			"allStops": "GET /core/stops/all",
			"stop":     "GET /core/stops/:name",
			"traffic":  "GET /core/traffic?from=X&to=Y",
		},
	})
}
