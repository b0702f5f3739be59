// Package extractor turns schedule-grid columns into services and walks their
// timed cells into ordered station events.
package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ar-in0/western-railways-simulator/pkg/stations"
	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

// Identifiers, car-count tokens and zone markers all live in the first few
// rows of a service column.
const headerRegionRows = 6

// DefaultCarCount applies when the header region declares no "<N> CAR"
// requirement.
const DefaultCarCount = 15

var (
	carCountPattern      = regexp.MustCompile(`(?i)(10|12|15|20)\s*CAR`)
	centralZonePattern   = regexp.MustCompile(`^[Cc]\.\s*[Rr][Ll][Yy]\.?$`)
	arrivalMarkerPattern = regexp.MustCompile(`(?i)\bARRL?\.?\b`)
	reversedAsPattern    = regexp.MustCompile(`(?i)reversed\s+as`)
)

type Extractor struct {
	Directory *stations.Directory

	// Car count assumed when a column declares none.
	DefaultCarCount int
}

func New(directory *stations.Directory) *Extractor {
	return &Extractor{
		Directory:       directory,
		DefaultCarCount: DefaultCarCount,
	}
}

// ExtractGrid walks every service column of one direction's grid and returns
// the extracted services. Columns that are blank, repeated station headers or
// indicator columns are skipped.
func (e *Extractor) ExtractGrid(grid *wtt.Grid) []*wtt.Service {
	var services []*wtt.Service

	for col := wtt.GridFirstServiceColumn; col < grid.ColumnCount(); col++ {
		cells := grid.Column(col)
		if !isServiceColumn(cells) {
			continue
		}

		service, err := e.extractService(grid, col, cells)
		if err != nil {
			log.Debug().Int("column", col).Str("direction", string(grid.Direction)).Err(err).Msg("Skipping column")
			continue
		}

		services = append(services, service)
	}

	log.Info().
		Str("direction", string(grid.Direction)).
		Int("services", len(services)).
		Msg("Extracted services from grid")

	return services
}

// isServiceColumn filters out the non-service columns the published grid
// interleaves with the workings: fully blank columns, repeated "STATIONS"
// label columns and stray A/D indicator columns.
func isServiceColumn(cells []string) bool {
	var nonEmpty []string
	for _, cell := range cells {
		if cell != "" {
			nonEmpty = append(nonEmpty, strings.ToUpper(cell))
		}
	}

	if len(nonEmpty) == 0 {
		return false
	}
	if nonEmpty[0] == "STATIONS" {
		return false
	}
	for i := 0; i+1 < len(nonEmpty); i++ {
		if nonEmpty[i] == "A" && nonEmpty[i+1] == "D" {
			return false
		}
	}
	return true
}

func (e *Extractor) extractService(grid *wtt.Grid, col int, cells []string) (*wtt.Service, error) {
	service := &wtt.Service{
		Kind:      wtt.ServiceKindRegular,
		Direction: grid.Direction,
		CarCount:  e.DefaultCarCount,
	}

	e.parseHeader(service, cells)
	service.NeedsAC = detectACRequirement(headerRegion(cells))
	service.Successor = e.extractSuccessor(grid, col)

	for row, cell := range cells {
		if wtt.IsClock(cell) {
			service.RawCells = append(service.RawCells, wtt.TimedCell{Row: row, Text: cell})
		}
	}
	if len(service.RawCells) == 0 {
		return nil, fmt.Errorf("column %d has no timed cells", col)
	}

	switch len(service.Identifiers) {
	case 0:
		service.Kind = wtt.ServiceKindStabling
		service.PrimaryIdentifier = fmt.Sprintf("STABLING/%s/%d", strings.ToUpper(string(grid.Direction)), col)
	case 1:
		service.PrimaryIdentifier = service.Identifiers[0]
	default:
		service.Kind = wtt.ServiceKindMultiIdentifier
		service.PrimaryIdentifier = service.Identifiers[0]
	}

	service.FirstStation = e.inferFirstStation(grid, service)
	service.LastStation = e.inferLastStation(grid, col, service)

	return service, nil
}

// parseHeader reads identifiers, the car-count requirement and the zone
// marker from the header region of the column.
func (e *Extractor) parseHeader(service *wtt.Service, cells []string) {
	for _, cell := range headerRegion(cells) {
		if centralZonePattern.MatchString(cell) {
			service.Zone = wtt.ServiceZoneCentral
		}

		if wtt.IsServiceIdentifier(cell) {
			if id, ok := wtt.ExtractIdentifier(cell); ok {
				service.Identifiers = append(service.Identifiers, id)
				if strings.HasPrefix(id, "9") {
					service.Zone = wtt.ServiceZoneSuburban
				}
			}
		}

		if match := carCountPattern.FindStringSubmatch(cell); match != nil {
			service.CarCount, _ = strconv.Atoi(match[1])
		}
	}
}

func headerRegion(cells []string) []string {
	if len(cells) > headerRegionRows {
		return cells[:headerRegionRows]
	}
	return cells
}

// detectACRequirement applies the two-hit rule: a single stray "AC" mention
// only arms detection, a second confirms it.
func detectACRequirement(cells []string) bool {
	armed := false
	for _, cell := range cells {
		if strings.Contains(cell, "Air") || strings.Contains(cell, "Condition") || strings.Contains(cell, "AC") {
			if armed {
				return true
			}
			armed = true
		}
	}
	return false
}

// extractSuccessor reads the identifier adjacent to the "Reversed as" marker
// row. On the up grid the identifier sits in the row below the marker, on the
// down grid in the marker row itself. Anything but a bare 5 digit numeral
// means no successor.
func (e *Extractor) extractSuccessor(grid *wtt.Grid, col int) string {
	markerRow := -1
	for row := range grid.Rows {
		if reversedAsPattern.MatchString(grid.StationLabel(row)) {
			markerRow = row
			break
		}
	}
	if markerRow < 0 {
		return ""
	}

	var successor string
	if grid.Direction == wtt.DirectionUp {
		successor = grid.Cell(markerRow+1, col)
	} else {
		successor = grid.Cell(markerRow, col)
	}

	if !wtt.IsBareIdentifier(successor) {
		return ""
	}
	return strings.TrimSpace(successor)
}

// resolveLabel finds the station label for a row, walking up to two rows past
// blank label cells.
func resolveLabel(grid *wtt.Grid, row int) string {
	for offset := 0; offset <= 2; offset++ {
		if label := grid.StationLabel(row - offset); label != "" {
			return label
		}
	}
	return ""
}

func (e *Extractor) inferFirstStation(grid *wtt.Grid, service *wtt.Service) string {
	first := service.RawCells[0]
	label := resolveLabel(grid, first.Row)
	canonical, ok := e.Directory.Canonicalise(label)
	if !ok {
		log.Debug().Str("label", label).Strs("identifiers", service.Identifiers).Msg("Unresolvable first-station label")
		return ""
	}
	return canonical
}

// inferLastStation prefers an explicit arrival marker cell ("CCG ARR.") over
// the label of the last timed cell.
func (e *Extractor) inferLastStation(grid *wtt.Grid, col int, service *wtt.Service) string {
	for row := range grid.Rows {
		cell := grid.Cell(row, col)
		if cell == "" || !arrivalMarkerPattern.MatchString(cell) {
			continue
		}

		// The station abbreviation lives in or next to the marker cell.
		for _, nearby := range []int{row, row - 1, row + 1} {
			if canonical, ok := e.Directory.MatchAbbreviation(grid.Cell(nearby, col)); ok {
				return canonical
			}
		}
		break
	}

	last := service.RawCells[len(service.RawCells)-1]
	label := resolveLabel(grid, last.Row)
	if strings.Contains(strings.ToUpper(label), "REVERSED") {
		// The reversal row borrows its timing from the station above it.
		label = resolveLabel(grid, last.Row-1)
	}

	canonical, ok := e.Directory.Canonicalise(label)
	if !ok {
		log.Debug().Str("label", label).Strs("identifiers", service.Identifiers).Msg("Unresolvable last-station label")
		return ""
	}
	return canonical
}
