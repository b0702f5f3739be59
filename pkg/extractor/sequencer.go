package extractor

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

// SequenceEvents walks a service's timed cells in row order and emits its
// station events. An "A" indicator row emits an arrival; if the next row is a
// "D" indicator row with a valid time, a paired departure at the same station
// models the dwell and the row is consumed. Rows outside the pairing pattern
// emit a single arrival-kind event (negligible-dwell convention). Events are
// appended in traversal order and never re-sorted.
func (e *Extractor) SequenceEvents(grid *wtt.Grid, service *wtt.Service) {
	if len(service.Events) > 0 {
		return
	}

	cellByRow := make(map[int]wtt.TimedCell, len(service.RawCells))
	for _, cell := range service.RawCells {
		cellByRow[cell.Row] = cell
	}

	consumed := map[int]bool{}

	for _, cell := range service.RawCells {
		if consumed[cell.Row] {
			continue
		}

		minutes, ok := wtt.ParseClock(cell.Text)
		if !ok {
			continue
		}

		station, ok := e.resolveEventStation(grid, service, cell.Row)
		if !ok {
			log.Debug().
				Str("service", service.PrimaryIdentifier).
				Int("row", cell.Row).
				Msg("Skipping timed cell with unresolvable station label")
			continue
		}

		if grid.Indicator(cell.Row) != "A" {
			service.Events = append(service.Events, &wtt.Event{
				Station: station,
				Minutes: minutes,
				Kind:    wtt.EventKindArrival,
			})
			continue
		}

		service.Events = append(service.Events, &wtt.Event{
			Station: station,
			Minutes: minutes,
			Kind:    wtt.EventKindArrival,
		})

		// Dwell pairing: a departure row directly below the arrival.
		if grid.Indicator(cell.Row+1) == "D" {
			if departure, exists := cellByRow[cell.Row+1]; exists {
				if depMinutes, valid := wtt.ParseClock(departure.Text); valid {
					service.Events = append(service.Events, &wtt.Event{
						Station: station,
						Minutes: depMinutes,
						Kind:    wtt.EventKindDeparture,
					})
					consumed[departure.Row] = true
				}
			}
		}
		// No departure row means a terminal arrival; nothing more to emit.
	}
}

// resolveEventStation resolves the station for a timed row. A "REVERSED"
// label means the timing belongs to the station of the previously emitted
// event, not the nominal label.
func (e *Extractor) resolveEventStation(grid *wtt.Grid, service *wtt.Service, row int) (string, bool) {
	label := resolveLabel(grid, row)

	if strings.Contains(strings.ToUpper(label), "REVERSED") {
		if len(service.Events) == 0 {
			return "", false
		}
		return service.Events[len(service.Events)-1].Station, true
	}

	return e.Directory.Canonicalise(label)
}
