package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/query"
)

func TrafficRouter(router fiber.Router) {
	router.Get("/", getTraffic)
}

func getTraffic(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")

	if from == "" || to == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error":   "Missing parameters",
			"message": `Both "from" and "to" query parameters are required`,
		})
	}

	sample, err := dataaggregator.Lookup[*ctdf.TrafficSample](c.UserContext(), query.Traffic{
		From: from,
		To:   to,
	})
	if err != nil {
		return err
	}

	return c.JSON(sample)
}
