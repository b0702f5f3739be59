package reconciler

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/ar-in0/western-railways-simulator/pkg/extractor"
	"github.com/ar-in0/western-railways-simulator/pkg/stations"
	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

type Reconciler struct {
	Directory *stations.Directory
	Extractor *extractor.Extractor
}

// Result is the reconciled domain graph: the participating services, the
// validated itineraries, the itineraries excluded as invalid or conflicting,
// and the conflict report.
type Result struct {
	Services    []*wtt.Service
	Itineraries []*wtt.Itinerary
	Excluded    []*wtt.Itinerary
	Conflicts   []*wtt.Conflict
}

func New(directory *stations.Directory) *Reconciler {
	return &Reconciler{
		Directory: directory,
		Extractor: extractor.New(directory),
	}
}

// Reconcile matches every authored summary entry against the chains derived
// from the linkage graph, applying the trust policy: undefined identifiers
// invalidate the itinerary outright, the summary wins over the graph when the
// chain start is ambiguous, and up to two trailing stabling placeholders are
// tolerated. Per-itinerary failures are contained; they never abort the run.
func (r *Reconciler) Reconcile(services []*wtt.Service, summary []wtt.SummaryEntry, grids map[wtt.Direction]*wtt.Grid) *Result {
	result := &Result{}

	serviceByID := map[string]*wtt.Service{}
	for _, service := range services {
		for _, id := range service.Identifiers {
			if _, exists := serviceByID[id]; !exists {
				serviceByID[id] = service
			}
		}
	}

	// Only services the summary references participate in chain discovery.
	participating := isolateSummaryServices(services, summary, serviceByID)
	result.Services = participating

	chains := BuildChains(participating)
	targets := successorTargets(participating)

	for _, entry := range summary {
		itinerary := &wtt.Itinerary{
			LinkName:            entry.LinkName,
			DeclaredIdentifiers: entry.Identifiers,
			Status:              wtt.ItineraryStatusValid,
		}

		if len(entry.Identifiers) == 0 {
			itinerary.Status = wtt.ItineraryStatusInvalid
			result.Excluded = append(result.Excluded, itinerary)
			continue
		}

		// Undefined identifiers take precedence over everything else.
		for _, id := range entry.Identifiers {
			if _, defined := serviceByID[id]; !defined {
				itinerary.UndefinedIdentifiers = append(itinerary.UndefinedIdentifiers, id)
			}
		}
		if len(itinerary.UndefinedIdentifiers) > 0 {
			log.Debug().
				Str("link", entry.LinkName).
				Strs("undefined", itinerary.UndefinedIdentifiers).
				Msg("Summary declares identifiers absent from the service set")
			itinerary.Status = wtt.ItineraryStatusInvalid
			result.Excluded = append(result.Excluded, itinerary)
			continue
		}

		path, conflict := r.settlePath(itinerary, chains, targets, serviceByID)
		if conflict != nil {
			result.Conflicts = append(result.Conflicts, conflict)
			itinerary.Status = wtt.ItineraryStatusInvalid
			result.Excluded = append(result.Excluded, itinerary)
			continue
		}

		itinerary.ServicePath = path
		r.populate(itinerary, grids)
		itinerary.Rake = AssignRake(itinerary)
		result.Itineraries = append(result.Itineraries, itinerary)
	}

	log.Info().
		Int("valid", len(result.Itineraries)).
		Int("excluded", len(result.Excluded)).
		Int("conflicts", len(result.Conflicts)).
		Msg("Reconciliation complete")

	return result
}

// settlePath resolves the service path for one itinerary, or reports the
// conflict that excludes it.
func (r *Reconciler) settlePath(itinerary *wtt.Itinerary, chains [][]*wtt.Service, targets map[string]bool, serviceByID map[string]*wtt.Service) ([]*wtt.Service, *wtt.Conflict) {
	declared := itinerary.DeclaredIdentifiers
	first := declared[0]

	// The summary is ground truth when its first identifier is some other
	// service's successor: graph-following would bury it mid-chain, so the
	// path is rebuilt by direct per-identifier lookup instead.
	if targets[first] {
		log.Debug().
			Str("link", itinerary.LinkName).
			Str("identifier", first).
			Msg("Chain-start identifier appears as a successor elsewhere; trusting summary")
		return r.lookupPath(itinerary, serviceByID)
	}

	var chain []*wtt.Service
	for _, candidate := range chains {
		if candidate[0].HasIdentifier(first) {
			chain = candidate
			break
		}
	}

	if chain == nil {
		// No chain starts with the declared identifier. Services with no
		// linkage edges at all never appear in a chain; those itineraries
		// are built by direct lookup instead.
		if r.allEdgeless(declared, targets, serviceByID) {
			return r.lookupPath(itinerary, serviceByID)
		}
		return nil, &wtt.Conflict{
			LinkName: itinerary.LinkName,
			Declared: declared,
		}
	}

	derived := make([]string, 0, len(chain))
	for _, service := range chain {
		derived = append(derived, service.PrimaryIdentifier)
	}

	if slices.Equal(derived, declared) {
		return chain, nil
	}

	if matchesWithTrailingPlaceholders(declared, derived) {
		log.Debug().
			Str("link", itinerary.LinkName).
			Strs("declared", declared).
			Strs("derived", derived).
			Msg("Accepting chain; trailing mismatches are stabling placeholders")
		return chain, nil
	}

	return nil, &wtt.Conflict{
		LinkName: itinerary.LinkName,
		Declared: declared,
		Derived:  derived,
	}
}

// matchesWithTrailingPlaceholders accepts a chain that matches the declared
// sequence apart from its final one or two entries, provided every mismatched
// trailing entry is a stabling placeholder. One placeholder and one real
// identifier in the trailing pair stays a conflict.
func matchesWithTrailingPlaceholders(declared, derived []string) bool {
	if len(declared) == len(derived)+1 {
		return slices.Equal(declared[:len(declared)-1], derived) &&
			wtt.IsStablingPlaceholder(declared[len(declared)-1])
	}
	if len(declared) == len(derived)+2 {
		return slices.Equal(declared[:len(declared)-2], derived) &&
			wtt.IsStablingPlaceholder(declared[len(declared)-2]) &&
			wtt.IsStablingPlaceholder(declared[len(declared)-1])
	}
	return false
}

// allEdgeless reports whether none of the declared identifiers take part in
// the linkage graph.
func (r *Reconciler) allEdgeless(declared []string, targets map[string]bool, serviceByID map[string]*wtt.Service) bool {
	for _, id := range declared {
		if targets[id] {
			return false
		}
		if service := serviceByID[id]; service != nil && service.Successor != "" {
			return false
		}
	}
	return true
}

// lookupPath reconstructs the path directly from the declared sequence. A
// valid itinerary is a simple path, so a repeated service is a conflict.
func (r *Reconciler) lookupPath(itinerary *wtt.Itinerary, serviceByID map[string]*wtt.Service) ([]*wtt.Service, *wtt.Conflict) {
	path := make([]*wtt.Service, 0, len(itinerary.DeclaredIdentifiers))
	seen := map[*wtt.Service]bool{}

	for _, id := range itinerary.DeclaredIdentifiers {
		service := serviceByID[id]
		if service == nil || seen[service] {
			return nil, &wtt.Conflict{
				LinkName: itinerary.LinkName,
				Declared: itinerary.DeclaredIdentifiers,
			}
		}
		seen[service] = true
		path = append(path, service)
	}

	return path, nil
}

// populate sequences events for every service on a settled path, fixes each
// service's endpoints from its events and accumulates the itinerary length.
func (r *Reconciler) populate(itinerary *wtt.Itinerary, grids map[wtt.Direction]*wtt.Grid) {
	itinerary.LengthKm = 0

	for _, service := range itinerary.ServicePath {
		grid := grids[service.Direction]
		if grid != nil {
			r.Extractor.SequenceEvents(grid, service)
		}

		if len(service.Events) == 0 {
			log.Warn().
				Str("link", itinerary.LinkName).
				Str("service", service.PrimaryIdentifier).
				Msg("Service on validated path produced no events")
			continue
		}

		service.FirstStation = service.Events[0].Station
		service.LastStation = service.Events[len(service.Events)-1].Station
		itinerary.LengthKm += service.ComputeLength(r.Directory)
	}
}

// isolateSummaryServices keeps only the services whose identifiers the
// summary references; stabling columns with no identifiers never participate.
func isolateSummaryServices(services []*wtt.Service, summary []wtt.SummaryEntry, serviceByID map[string]*wtt.Service) []*wtt.Service {
	referenced := map[*wtt.Service]bool{}
	for _, entry := range summary {
		for _, id := range entry.Identifiers {
			if service, ok := serviceByID[id]; ok {
				referenced[service] = true
			}
		}
	}

	isolated := make([]*wtt.Service, 0, len(referenced))
	for _, service := range services {
		if referenced[service] {
			isolated = append(isolated, service)
		}
	}

	log.Info().
		Int("participating", len(isolated)).
		Int("total", len(services)).
		Msg("Isolated summary-referenced services")

	return isolated
}
