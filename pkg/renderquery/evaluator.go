package renderquery

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/go-playground/validator/v10"
	"github.com/sourcegraph/conc/pool"

	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

const evaluatorMaxGoroutines = 16

type Evaluator struct {
	validate *validator.Validate
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		validate: validator.New(),
	}
}

type itineraryVisibility struct {
	linkName string
	visible  bool
	services map[string]bool
	events   map[string][]bool
}

// Evaluate computes visibility flags for every itinerary, service and event
// under the query. Itineraries are evaluated concurrently; results only land
// in the per-query maps, never on the graph nodes, so repeated evaluation of
// the same query is idempotent and concurrent queries cannot interfere.
func (e *Evaluator) Evaluate(itineraries []*wtt.Itinerary, query *Query) (*Visibility, error) {
	if err := e.validate.Struct(query); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	var program *vm.Program
	if query.Expression != "" {
		compiled, err := expr.Compile(query.Expression, expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("invalid query expression: %w", err)
		}
		program = compiled
	}

	p := pool.NewWithResults[*itineraryVisibility]()
	p.WithMaxGoroutines(evaluatorMaxGoroutines)

	for _, itinerary := range itineraries {
		itinerary := itinerary
		p.Go(func() *itineraryVisibility {
			return evaluateItinerary(itinerary, query, program)
		})
	}

	visibility := &Visibility{
		Itineraries: map[string]bool{},
		Services:    map[string]bool{},
		Events:      map[string][]bool{},
	}

	for _, partial := range p.Wait() {
		visibility.Itineraries[partial.linkName] = partial.visible
		for id, visible := range partial.services {
			visibility.Services[id] = visible
		}
		for id, flags := range partial.events {
			visibility.Events[id] = flags
		}
	}

	return visibility, nil
}

func evaluateItinerary(itinerary *wtt.Itinerary, query *Query, program *vm.Program) *itineraryVisibility {
	partial := &itineraryVisibility{
		linkName: itinerary.LinkName,
		services: map[string]bool{},
		events:   map[string][]bool{},
	}

	// Itineraries without a reconciled path are not renderable at all.
	renderable := itinerary.Renderable() && linkNameSelected(itinerary, query)

	for _, service := range itinerary.ServicePath {
		visible := renderable && serviceVisible(service, query, program)

		partial.services[service.PrimaryIdentifier] = visible
		partial.events[service.PrimaryIdentifier] = eventFlags(service, query, visible)
		if visible {
			partial.visible = true
		}
	}

	return partial
}

// eventFlags narrows each event by its service's flag and the query window.
func eventFlags(service *wtt.Service, query *Query, serviceVisible bool) []bool {
	flags := make([]bool, len(service.Events))
	if !serviceVisible {
		return flags
	}
	for i, event := range service.Events {
		flags[i] = query.windowContains(event.Minutes)
	}
	return flags
}
