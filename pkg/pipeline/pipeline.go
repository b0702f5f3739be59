// Package pipeline wires the batch transformation together: load the grids
// and summary, extract services, reconcile them into itineraries.
package pipeline

import (
	"github.com/rs/zerolog/log"

	"github.com/ar-in0/western-railways-simulator/pkg/config"
	"github.com/ar-in0/western-railways-simulator/pkg/dataimporter"
	"github.com/ar-in0/western-railways-simulator/pkg/extractor"
	"github.com/ar-in0/western-railways-simulator/pkg/reconciler"
	"github.com/ar-in0/western-railways-simulator/pkg/stations"
	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

// Output bundles everything one reconciliation run produces for the outer
// layers: the directory the run used, the reconciled result and the grids it
// was derived from.
type Output struct {
	Directory *stations.Directory
	Result    *reconciler.Result
	Grids     map[wtt.Direction]*wtt.Grid
}

// Run executes the whole single-pass batch: load, extract, link, reconcile.
func Run(cfg *config.Config) (*Output, error) {
	directory, err := cfg.Directory()
	if err != nil {
		return nil, err
	}

	upGrid, err := dataimporter.LoadGrid(cfg.Data.UpGridPath, wtt.DirectionUp, cfg.Data.GridPreambleRows)
	if err != nil {
		return nil, err
	}
	downGrid, err := dataimporter.LoadGrid(cfg.Data.DownGridPath, wtt.DirectionDown, cfg.Data.GridPreambleRows)
	if err != nil {
		return nil, err
	}
	summary, err := dataimporter.LoadSummary(cfg.Data.SummaryPath, cfg.Data.SummaryPreambleRows)
	if err != nil {
		return nil, err
	}

	grids := map[wtt.Direction]*wtt.Grid{
		wtt.DirectionUp:   upGrid,
		wtt.DirectionDown: downGrid,
	}

	extract := extractor.New(directory)
	services := append(extract.ExtractGrid(upGrid), extract.ExtractGrid(downGrid)...)

	result := reconciler.New(directory).Reconcile(services, summary, grids)

	stats := result.Statistics()
	log.Info().
		Int("services", stats.Services).
		Int("itineraries", stats.Itineraries).
		Float64("total_km", stats.TotalLengthKm).
		Msg("Pipeline complete")

	return &Output{
		Directory: directory,
		Result:    result,
		Grids:     grids,
	}, nil
}
