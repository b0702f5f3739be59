package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ar-in0/western-railways-simulator/pkg/reconciler"
	"github.com/ar-in0/western-railways-simulator/pkg/renderquery"
)

func QueryRouter(router fiber.Router, result *reconciler.Result) {
	evaluator := renderquery.NewEvaluator()

	router.Post("/", func(c *fiber.Ctx) error {
		query := &renderquery.Query{}
		if err := c.BodyParser(query); err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Could not parse query body",
			})
		}

		// Every query gets its own visibility result; the graph itself is
		// shared read-only across requests.
		visibility, err := evaluator.Evaluate(result.Itineraries, query)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(visibility)
	})
}
