package api

import (
	"github.com/urfave/cli/v2"

	"github.com/ar-in0/western-railways-simulator/pkg/config"
	"github.com/ar-in0/western-railways-simulator/pkg/pipeline"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "reconcile the timetable and serve the result over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yml",
				Usage: "path to the engine configuration file",
			},
			&cli.StringFlag{
				Name:  "listen",
				Usage: "listen target for the web server (overrides config)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			output, err := pipeline.Run(cfg)
			if err != nil {
				return err
			}

			listen := cfg.Server.Listen
			if c.String("listen") != "" {
				listen = c.String("listen")
			}

			return SetupServer(listen, output)
		},
	}
}
