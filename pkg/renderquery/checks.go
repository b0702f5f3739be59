package renderquery

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"golang.org/x/exp/slices"

	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

// serviceVisible is the conjunction of every applicable predicate check.
// Each check may only narrow visibility; once one fails the service stays
// hidden for this query.
func serviceVisible(service *wtt.Service, query *Query, program *vm.Program) bool {
	if len(service.Events) == 0 {
		return false
	}

	checks := []func(*wtt.Service, *Query) bool{
		checkExplicitSelection,
		checkStartStation,
		checkEndStation,
		checkDirection,
		checkAC,
		checkPassingThrough,
	}

	for _, check := range checks {
		if !check(service, query) {
			return false
		}
	}

	if program != nil && !checkExpression(service, program) {
		return false
	}

	return true
}

func checkExplicitSelection(service *wtt.Service, query *Query) bool {
	if len(query.ServiceIdentifiers) == 0 {
		return true
	}
	for _, id := range query.ServiceIdentifiers {
		if service.HasIdentifier(id) || service.PrimaryIdentifier == id {
			return true
		}
	}
	return false
}

func checkStartStation(service *wtt.Service, query *Query) bool {
	if query.StartStation == "" {
		return true
	}

	first := service.Events[0]
	if !strings.EqualFold(first.Station, query.StartStation) {
		return false
	}
	return query.windowContains(first.Minutes)
}

func checkEndStation(service *wtt.Service, query *Query) bool {
	if query.EndStation == "" {
		return true
	}

	last := service.Events[len(service.Events)-1]
	if !strings.EqualFold(last.Station, query.EndStation) {
		return false
	}
	return query.windowContains(last.Minutes)
}

func checkDirection(service *wtt.Service, query *Query) bool {
	if len(query.Directions) == 0 {
		return true
	}
	return slices.Contains(query.Directions, service.Direction)
}

func checkAC(service *wtt.Service, query *Query) bool {
	switch query.ACMode {
	case ACModeAC:
		return service.NeedsAC
	case ACModeNonAC:
		return !service.NeedsAC
	default:
		return true
	}
}

// checkPassingThrough requires every queried station to be visited, each
// within the query window. The last visit at a station is the one checked.
func checkPassingThrough(service *wtt.Service, query *Query) bool {
	if len(query.PassingThrough) == 0 {
		return true
	}

	lastVisit := map[string]int{}
	for _, event := range service.Events {
		lastVisit[event.Station] = event.Minutes
	}

	for _, station := range query.PassingThrough {
		minutes, visited := lastVisit[strings.ToUpper(strings.TrimSpace(station))]
		if !visited {
			return false
		}
		if !query.windowContains(minutes) {
			return false
		}
	}
	return true
}

func checkExpression(service *wtt.Service, program *vm.Program) bool {
	env := map[string]any{
		"identifiers":   service.Identifiers,
		"primary_id":    service.PrimaryIdentifier,
		"kind":          string(service.Kind),
		"direction":     string(service.Direction),
		"needs_ac":      service.NeedsAC,
		"car_count":     service.CarCount,
		"first_station": service.FirstStation,
		"last_station":  service.LastStation,
		"length_km":     service.LengthKm,
	}

	visible, err := expr.Run(program, env)
	if err != nil {
		return false
	}
	result, ok := visible.(bool)
	return ok && result
}

func linkNameSelected(itinerary *wtt.Itinerary, query *Query) bool {
	if len(query.LinkNames) == 0 {
		return true
	}
	return slices.Contains(query.LinkNames, itinerary.LinkName)
}
