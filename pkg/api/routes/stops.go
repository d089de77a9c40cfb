package routes

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/query"
	"github.com/lagosnav/lagosnav/pkg/routeplanner"
	"github.com/liip/sheriff"
)

// StopsRouter serves search, listing and exact lookup. "all" is reserved by the listing route, so a stop
// named or aliased "all" is resolved through /?name= instead of /:name.
func StopsRouter(router fiber.Router) {
	router.Get("/", searchStops)
	router.Get("/all", listAllStops)
	router.Get("/:name", getStop)
}

func searchStops(c *fiber.Ctx) error {
	if name := c.Query("name"); name != "" {
		return lookupStop(c, name)
	}

	searchQuery := c.Query("q")
	if searchQuery == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error":   "Missing query parameter",
			"message": `Query parameter "q" is required`,
		})
	}

	limit := 0
	if limitQuery := c.Query("limit"); limitQuery != "" {
		var err error
		limit, err = strconv.Atoi(limitQuery)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter limit should be an integer",
			})
		}
	}

	results, err := dataaggregator.Lookup[*ctdf.StopSearchResults](c.UserContext(), query.StopSearch{
		Query: searchQuery,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(results)
}

func listAllStops(c *fiber.Ctx) error {
	stops, err := dataaggregator.Lookup[[]*ctdf.Stop](c.UserContext(), query.AllStops{})
	if err != nil {
		return err
	}

	groups := []string{"basic"}
	if c.QueryBool("detailed", true) {
		groups = append(groups, "detailed")
	}

	stopsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, stops)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Stops",
		})
	}

	return c.JSON(fiber.Map{
		"stops": stopsReduced,
		"count": len(stops),
	})
}

func getStop(c *fiber.Ctx) error {
	return lookupStop(c, c.Params("name"))
}

func lookupStop(c *fiber.Ctx, name string) error {
	stop, err := dataaggregator.Lookup[*ctdf.Stop](c.UserContext(), query.Stop{
		Name: name,
	})
	if errors.Is(err, routeplanner.ErrStopNotFound) {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Stop matching name or alias",
		})
	} else if err != nil {
		return err
	}

	return c.JSON(stop)
}
