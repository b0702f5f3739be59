package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/ar-in0/western-railways-simulator/pkg/api"
	"github.com/ar-in0/western-railways-simulator/pkg/pipeline"
)

func main() {
	if os.Getenv("WRSIM_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("WRSIM_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "wrsim",
		Description: "Western Railways suburban timetable reconciliation engine",

		Commands: []*cli.Command{
			pipeline.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
