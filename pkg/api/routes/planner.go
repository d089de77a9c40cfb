package routes

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/query"
	"github.com/lagosnav/lagosnav/pkg/routeplanner"
)

var validate = validator.New()

type RouteRequest struct {
	Origin      string                   `json:"origin" validate:"required"`
	Destination string                   `json:"destination" validate:"required"`
	Preferences routeplanner.Preferences `json:"preferences"`
}

func PlannerRouter(router fiber.Router) {
	router.Post("/route", postRoute)
	router.Get("/:origin/:destination", getPlanBetweenStops)
}

func postRoute(c *fiber.Ctx) error {
	var request RouteRequest

	if err := c.BodyParser(&request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error":   "Invalid input",
			"message": "Origin and destination must be strings",
		})
	}

	if err := validate.Struct(request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error":   "Missing required fields",
			"message": "Both origin and destination are required",
		})
	}

	return planRoute(c, request)
}

func getPlanBetweenStops(c *fiber.Ctx) error {
	return planRoute(c, RouteRequest{
		Origin:      c.Params("origin"),
		Destination: c.Params("destination"),
		Preferences: routeplanner.Preferences{
			Fastest:  c.QueryBool("fastest"),
			Cheapest: c.QueryBool("cheapest"),
		},
	})
}

func planRoute(c *fiber.Ctx, request RouteRequest) error {
	result, err := dataaggregator.Lookup[*ctdf.RouteResult](c.UserContext(), query.RoutePlan{
		Origin:      request.Origin,
		Destination: request.Destination,
		Preferences: request.Preferences,
	})

	var notFound routeplanner.StopNotFoundError

	switch {
	case errors.As(err, &notFound):
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error":   "Stop not found",
			"message": fmt.Sprintf("Could not resolve %q. Please check the bus stop names and try again.", notFound.Name),
		})
	case errors.Is(err, routeplanner.ErrNoRoute):
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error":   "No route found",
			"message": fmt.Sprintf("No route found from %s to %s.", request.Origin, request.Destination),
		})
	case err != nil:
		return err
	}

	return c.JSON(result)
}
