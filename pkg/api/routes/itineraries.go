package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/ar-in0/western-railways-simulator/pkg/reconciler"
	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

func ItinerariesRouter(router fiber.Router, result *reconciler.Result) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listItineraries(c, result)
	})
	router.Get("/:linkname", func(c *fiber.Ctx) error {
		return getItinerary(c, result)
	})
}

func marshalGroups(c *fiber.Ctx, value interface{}) error {
	groups := []string{"basic"}
	if c.QueryBool("detail", false) {
		groups = append(groups, "detailed")
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{Groups: groups}, value)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to marshal response",
		})
	}

	return c.JSON(reduced)
}

func listItineraries(c *fiber.Ctx, result *reconciler.Result) error {
	itineraries := result.Itineraries
	if c.QueryBool("excluded", false) {
		itineraries = append(append([]*wtt.Itinerary{}, itineraries...), result.Excluded...)
	}

	return marshalGroups(c, itineraries)
}

func getItinerary(c *fiber.Ctx, result *reconciler.Result) error {
	linkName := c.Params("linkname")

	for _, itinerary := range append(append([]*wtt.Itinerary{}, result.Itineraries...), result.Excluded...) {
		if itinerary.LinkName == linkName {
			return marshalGroups(c, itinerary)
		}
	}

	c.SendStatus(fiber.StatusNotFound)
	return c.JSON(fiber.Map{
		"error": "Could not find Itinerary matching link name",
	})
}
