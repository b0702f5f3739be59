// Package api exposes the reconciled graph over HTTP: itineraries, conflicts,
// the station directory and the visibility query interface.
package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ar-in0/western-railways-simulator/pkg/api/routes"
	"github.com/ar-in0/western-railways-simulator/pkg/pipeline"
)

func SetupServer(listen string, output *pipeline.Output) error {
	webApp := fiber.New()

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.ItinerariesRouter(group.Group("/itineraries"), output.Result)
	routes.ConflictsRouter(group.Group("/conflicts"), output.Result)
	routes.StationsRouter(group.Group("/stations"), output.Directory)
	routes.QueryRouter(group.Group("/query"), output.Result)

	return webApp.Listen(listen)
}
