package renderquery

import (
	"reflect"
	"testing"

	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

func queryTestService(id string, direction wtt.Direction, events ...*wtt.Event) *wtt.Service {
	return &wtt.Service{
		PrimaryIdentifier: id,
		Identifiers:       []string{id},
		Kind:              wtt.ServiceKindRegular,
		Direction:         direction,
		Events:            events,
	}
}

func event(station string, minutes int) *wtt.Event {
	return &wtt.Event{Station: station, Minutes: minutes, Kind: wtt.EventKindDeparture}
}

// testGraph builds two itineraries: "A" with an up and a down leg, and "B"
// with a single up leg departing outside the morning window.
func testGraph() []*wtt.Itinerary {
	up := queryTestService("93001", wtt.DirectionUp,
		event("VIRAR", 200),
		event("BORIVALI", 235),
		event("CHURCHGATE", 290),
	)
	down := queryTestService("93002", wtt.DirectionDown,
		event("CHURCHGATE", 310),
		event("BORIVALI", 365),
		event("VIRAR", 400),
	)
	late := queryTestService("94001", wtt.DirectionUp,
		event("VIRAR", 900),
		event("CHURCHGATE", 990),
	)

	return []*wtt.Itinerary{
		{
			LinkName:    "A",
			Status:      wtt.ItineraryStatusValid,
			ServicePath: []*wtt.Service{up, down},
		},
		{
			LinkName:    "B",
			Status:      wtt.ItineraryStatusValid,
			ServicePath: []*wtt.Service{late},
		},
	}
}

func wideWindow(query *Query) *Query {
	query.WindowStart = 0
	query.WindowEnd = 1700
	return query
}

func TestEvaluateAllVisibleUnderEmptyQuery(t *testing.T) {
	visibility, err := NewEvaluator().Evaluate(testGraph(), wideWindow(&Query{}))
	if err != nil {
		t.Fatal(err)
	}

	for _, link := range []string{"A", "B"} {
		if !visibility.Itineraries[link] {
			t.Errorf("itinerary %s should be visible", link)
		}
	}
	for _, id := range []string{"93001", "93002", "94001"} {
		if !visibility.Services[id] {
			t.Errorf("service %s should be visible", id)
		}
	}
	if got := visibility.Events["93001"]; !reflect.DeepEqual(got, []bool{true, true, true}) {
		t.Errorf("event flags = %v", got)
	}
}

func TestEvaluateStartStationWithinWindow(t *testing.T) {
	query := &Query{
		StartStation: "VIRAR",
		WindowStart:  180,
		WindowEnd:    600,
	}

	visibility, err := NewEvaluator().Evaluate(testGraph(), query)
	if err != nil {
		t.Fatal(err)
	}

	if !visibility.Services["93001"] {
		t.Error("93001 starts at VIRAR inside the window")
	}
	if visibility.Services["93002"] {
		t.Error("93002 starts at CHURCHGATE and should be hidden")
	}
	// 94001 starts at VIRAR but at minute 900, outside the window.
	if visibility.Services["94001"] {
		t.Error("94001 departs outside the window")
	}
	if visibility.Itineraries["B"] {
		t.Error("itinerary B has no visible service")
	}
}

func TestEvaluateEndStationAndDirection(t *testing.T) {
	query := wideWindow(&Query{
		EndStation: "virar",
		Directions: []wtt.Direction{wtt.DirectionDown},
	})

	visibility, err := NewEvaluator().Evaluate(testGraph(), query)
	if err != nil {
		t.Fatal(err)
	}

	if !visibility.Services["93002"] {
		t.Error("93002 is the down leg ending at VIRAR")
	}
	if visibility.Services["93001"] || visibility.Services["94001"] {
		t.Error("up services should be hidden under a down-only query")
	}
}

func TestEvaluateACMode(t *testing.T) {
	graph := testGraph()
	graph[0].ServicePath[0].NeedsAC = true

	visibility, err := NewEvaluator().Evaluate(graph, wideWindow(&Query{ACMode: ACModeAC}))
	if err != nil {
		t.Fatal(err)
	}
	if !visibility.Services["93001"] || visibility.Services["93002"] {
		t.Errorf("ac mode: got %v", visibility.Services)
	}

	visibility, err = NewEvaluator().Evaluate(graph, wideWindow(&Query{ACMode: ACModeNonAC}))
	if err != nil {
		t.Fatal(err)
	}
	if visibility.Services["93001"] || !visibility.Services["93002"] {
		t.Errorf("nonac mode: got %v", visibility.Services)
	}
}

func TestEvaluatePassingThrough(t *testing.T) {
	query := wideWindow(&Query{PassingThrough: []string{"borivali", "VIRAR"}})

	visibility, err := NewEvaluator().Evaluate(testGraph(), query)
	if err != nil {
		t.Fatal(err)
	}

	if !visibility.Services["93001"] || !visibility.Services["93002"] {
		t.Error("both A legs visit Borivali and Virar")
	}
	if visibility.Services["94001"] {
		t.Error("94001 never calls at Borivali")
	}
}

func TestEvaluateExplicitSelection(t *testing.T) {
	query := wideWindow(&Query{ServiceIdentifiers: []string{"94001"}})

	visibility, err := NewEvaluator().Evaluate(testGraph(), query)
	if err != nil {
		t.Fatal(err)
	}

	if !visibility.Services["94001"] {
		t.Error("explicitly selected service should be visible")
	}
	if visibility.Services["93001"] || visibility.Services["93002"] {
		t.Error("unselected services should be hidden")
	}
	if visibility.Itineraries["A"] {
		t.Error("itinerary A should be hidden with no visible service")
	}
}

func TestEvaluateLinkNameSelection(t *testing.T) {
	visibility, err := NewEvaluator().Evaluate(testGraph(), wideWindow(&Query{LinkNames: []string{"B"}}))
	if err != nil {
		t.Fatal(err)
	}

	if visibility.Itineraries["A"] || !visibility.Itineraries["B"] {
		t.Errorf("link selection: got %v", visibility.Itineraries)
	}
	if visibility.Services["93001"] {
		t.Error("services on a deselected itinerary should be hidden")
	}
}

func TestEvaluateExpression(t *testing.T) {
	query := wideWindow(&Query{Expression: `direction == "up" and primary_id startsWith "93"`})

	visibility, err := NewEvaluator().Evaluate(testGraph(), query)
	if err != nil {
		t.Fatal(err)
	}

	if !visibility.Services["93001"] {
		t.Error("93001 matches the expression")
	}
	if visibility.Services["93002"] || visibility.Services["94001"] {
		t.Errorf("expression narrowing failed: %v", visibility.Services)
	}
}

func TestEvaluateInvalidExpressionRejected(t *testing.T) {
	_, err := NewEvaluator().Evaluate(testGraph(), wideWindow(&Query{Expression: "car_count +"}))
	if err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestEvaluateInvalidWindowRejected(t *testing.T) {
	_, err := NewEvaluator().Evaluate(testGraph(), &Query{WindowStart: 500, WindowEnd: 400})
	if err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestEvaluateNonRenderableItineraryHidden(t *testing.T) {
	graph := testGraph()
	graph = append(graph, &wtt.Itinerary{
		LinkName: "X",
		Status:   wtt.ItineraryStatusInvalid,
	})

	visibility, err := NewEvaluator().Evaluate(graph, wideWindow(&Query{}))
	if err != nil {
		t.Fatal(err)
	}

	if visibility.Itineraries["X"] {
		t.Error("invalid itinerary should never be visible")
	}
}

func TestEvaluateDoesNotMutateGraph(t *testing.T) {
	graph := testGraph()
	narrow := &Query{StartStation: "CHURCHGATE", WindowStart: 300, WindowEnd: 320}

	if _, err := NewEvaluator().Evaluate(graph, narrow); err != nil {
		t.Fatal(err)
	}

	// A second, wider query over the same graph sees everything again.
	visibility, err := NewEvaluator().Evaluate(graph, wideWindow(&Query{}))
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"93001", "93002", "94001"} {
		if !visibility.Services[id] {
			t.Errorf("service %s should be visible after re-evaluation", id)
		}
	}
}
