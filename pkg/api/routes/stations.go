package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"

	"github.com/ar-in0/western-railways-simulator/pkg/stations"
)

type stationView struct {
	Name       string  `json:"name"`
	ChainageKm float64 `json:"chainage_km"`
}

func StationsRouter(router fiber.Router, directory *stations.Directory) {
	router.Get("/", func(c *fiber.Ctx) error {
		// Copy out of the shared directory so responses never alias the
		// read-only reference data.
		var views []stationView
		if err := copier.CopyWithOption(&views, directory.All(), copier.Option{DeepCopy: true}); err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Failed to prepare station list",
			})
		}

		return c.JSON(views)
	})
}
