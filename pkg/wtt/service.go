package wtt

import "math"

// TimedCell is one raw grid cell that matched the clock pattern, kept with
// its row index so the event sequencer can resolve station labels and
// arrival/departure indicators later.
type TimedCell struct {
	Row  int
	Text string
}

// ChainageSource resolves a canonical station name to its chainage.
type ChainageSource interface {
	Chainage(station string) (float64, bool)
}

// Service is one working of a train, extracted from a single grid column.
type Service struct {
	// First declared identifier, or a synthesised identifier for stabling
	// workings that declare none.
	PrimaryIdentifier string `groups:"basic" json:"primary_identifier"`

	Identifiers []string    `groups:"basic" json:"identifiers,omitempty"`
	Kind        ServiceKind `groups:"basic" json:"kind"`
	Direction   Direction   `groups:"basic" json:"direction"`
	Zone        ServiceZone `groups:"detailed" json:"zone,omitempty"`

	NeedsAC  bool `groups:"basic" json:"needs_ac"`
	CarCount int  `groups:"basic" json:"car_count"`

	// Identifier of the service this physical train becomes after reversing
	// at its terminal station, read from the "Reversed as" row.
	Successor string `groups:"detailed" json:"successor,omitempty"`

	FirstStation string `groups:"basic" json:"first_station,omitempty"`
	LastStation  string `groups:"basic" json:"last_station,omitempty"`

	// Populated only for services that end up on a validated itinerary.
	Events []*Event `groups:"detailed" json:"events,omitempty"`

	LengthKm float64 `groups:"basic" json:"length_km"`

	// Raw timed cells from extraction, consumed by the event sequencer.
	RawCells []TimedCell `groups:"-" json:"-"`
}

// HasIdentifier reports whether id is one of the service's declared
// identifiers.
func (s *Service) HasIdentifier(id string) bool {
	for _, candidate := range s.Identifiers {
		if candidate == id {
			return true
		}
	}
	return false
}

// ComputeLength sums the absolute chainage deltas between consecutive events
// and records the result on the service. Stations the chainage source cannot
// resolve contribute nothing. Zero events means zero length.
func (s *Service) ComputeLength(chainage ChainageSource) float64 {
	if len(s.Events) == 0 {
		s.LengthKm = 0
		return 0
	}

	length := 0.0
	previous, havePrevious := chainage.Chainage(s.Events[0].Station)

	for _, event := range s.Events[1:] {
		current, ok := chainage.Chainage(event.Station)
		if !ok {
			continue
		}
		if havePrevious {
			length += math.Abs(current - previous)
		}
		previous = current
		havePrevious = true
	}

	s.LengthKm = length
	return length
}
