package pipeline

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/ar-in0/western-railways-simulator/pkg/config"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "reconcile",
		Usage: "run the timetable reconciliation batch and report the outcome",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yml",
				Usage: "path to the engine configuration file",
			},
			&cli.BoolFlag{
				Name:  "conflicts",
				Usage: "print the full conflict report",
			},
		},
		Action: func(c *cli.Context) error {
			output, err := runFromConfig(c.String("config"))
			if err != nil {
				return err
			}

			result := output.Result
			pretty.Println(result.Statistics())

			for _, itinerary := range result.Itineraries {
				fmt.Printf("link %-3s %3d services %8.1f km rake: ", itinerary.LinkName, len(itinerary.ServicePath), itinerary.LengthKm)
				if itinerary.Rake.IsAC {
					fmt.Printf("AC\n")
				} else {
					fmt.Printf("%d-car\n", itinerary.Rake.CarCount)
				}
			}

			for _, itinerary := range result.Excluded {
				log.Warn().
					Str("link", itinerary.LinkName).
					Strs("undefined", itinerary.UndefinedIdentifiers).
					Msg("Itinerary excluded")
			}

			if c.Bool("conflicts") {
				pretty.Println(result.Conflicts)
			}

			return nil
		},
	}
}

func runFromConfig(path string) (*Output, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return Run(cfg)
}
