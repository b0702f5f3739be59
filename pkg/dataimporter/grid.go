// Package dataimporter loads the already-exported tabular inputs of the
// engine: the per-direction schedule grids, the link summary and the station
// table. It owns no spreadsheet parsing; the grids arrive as plain CSV
// exports of the published sheets.
package dataimporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

// The published sheets carry a few decorative rows above the station grid
// and the summary body.
const (
	DefaultGridPreambleRows    = 4
	DefaultSummaryPreambleRows = 2
)

// LoadGrid reads one direction's schedule grid from a CSV export, skipping
// the preamble rows.
func LoadGrid(path string, direction wtt.Direction, preambleRows int) (*wtt.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening grid: %w", err)
	}
	defer file.Close()

	grid, err := ReadGrid(file, direction, preambleRows)
	if err != nil {
		return nil, fmt.Errorf("reading grid %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Str("direction", string(direction)).
		Int("rows", len(grid.Rows)).
		Msg("Loaded schedule grid")

	return grid, nil
}

// ReadGrid decodes a grid from CSV. The published grids are ragged, so the
// reader accepts any record length.
func ReadGrid(r io.Reader, direction wtt.Direction, preambleRows int) (*wtt.Grid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if preambleRows > len(records) {
		preambleRows = len(records)
	}

	return &wtt.Grid{
		Direction: direction,
		Rows:      records[preambleRows:],
	}, nil
}
