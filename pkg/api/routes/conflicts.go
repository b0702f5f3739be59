package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ar-in0/western-railways-simulator/pkg/reconciler"
	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

func ConflictsRouter(router fiber.Router, result *reconciler.Result) {
	router.Get("/", func(c *fiber.Ctx) error {
		conflicts := result.Conflicts
		if conflicts == nil {
			conflicts = []*wtt.Conflict{}
		}
		return c.JSON(conflicts)
	})
}
