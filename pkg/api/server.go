package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/lagosnav/lagosnav/pkg/api/routes"
)

// NewApp builds the HTTP app, data sources must already be registered with the global aggregator
func NewApp() *fiber.App {
	webApp := fiber.New(fiber.Config{
		AppName:               "lagosnav",
		UnescapePath:          true,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	webApp.Use(requestid.New())
	webApp.Use(NewLogger())
	webApp.Use(recover.New())

	group := webApp.Group("/core")

	group.Get("/", routes.APIIndex)
	group.Get("version", routes.APIVersion)
	group.Get("health", routes.APIHealth)

	routes.StopsRouter(group.Group("/stops"))
	routes.PlannerRouter(group.Group("/planner"))
	routes.TrafficRouter(group.Group("/traffic"))

	webApp.Use(func(c *fiber.Ctx) error {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error":   "Not found",
			"message": fmt.Sprintf("Route %s %s not found", c.Method(), c.Path()),
		})
	})

	return webApp
}

func SetupServer(listen string) error {
	return NewApp().Listen(listen)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		code = fiberError.Code
		message = fiberError.Message
	}

	c.Status(code)
	return c.JSON(fiber.Map{
		"error": message,
	})
}
