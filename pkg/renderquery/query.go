// Package renderquery evaluates structured visibility queries against the
// reconciled graph. Evaluation never mutates the graph: every call produces a
// fresh per-query visibility result, so the read-only graph can be shared
// across concurrent queries.
package renderquery

import (
	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

const (
	ACModeAll   = "all"
	ACModeAC    = "ac"
	ACModeNonAC = "nonac"
)

// Query is one structured visibility request. The time window is required
// and bounds every per-station time check; everything else is optional and
// only ever narrows visibility.
type Query struct {
	StartStation   string   `json:"start_station" validate:"omitempty"`
	EndStation     string   `json:"end_station" validate:"omitempty"`
	PassingThrough []string `json:"passing_through" validate:"omitempty,dive,min=1"`

	// Time window in minutes since traffic-day start, inclusive.
	WindowStart int `json:"window_start" validate:"min=0"`
	WindowEnd   int `json:"window_end" validate:"gtefield=WindowStart"`

	Directions []wtt.Direction `json:"directions" validate:"omitempty,dive,oneof=up down"`
	ACMode     string          `json:"ac_mode" validate:"omitempty,oneof=all ac nonac"`

	// Explicit selection lists. Empty means no restriction.
	ServiceIdentifiers []string `json:"service_identifiers" validate:"omitempty"`
	LinkNames          []string `json:"link_names" validate:"omitempty"`

	// Optional boolean expression evaluated against each service as an
	// additional narrowing predicate.
	Expression string `json:"expression" validate:"omitempty"`
}

func (q *Query) windowContains(minutes int) bool {
	return q.WindowStart <= minutes && minutes <= q.WindowEnd
}

// Visibility is the per-query evaluation result: a flag per itinerary (by
// link name), per service (by primary identifier) and per event (index
// aligned with the service's event list).
type Visibility struct {
	Itineraries map[string]bool   `json:"itineraries"`
	Services    map[string]bool   `json:"services"`
	Events      map[string][]bool `json:"events"`
}
