package wtt

import "testing"

type chainageMap map[string]float64

func (m chainageMap) Chainage(station string) (float64, bool) {
	km, ok := m[station]
	return km, ok
}

var testChainage = chainageMap{
	"VIRAR":       60,
	"NALLASOPARA": 56,
	"VASAI ROAD":  52,
	"BORIVALI":    34,
}

func TestComputeLength(t *testing.T) {
	service := &Service{
		Events: []*Event{
			{Station: "VIRAR", Minutes: 370, Kind: EventKindArrival},
			{Station: "NALLASOPARA", Minutes: 375, Kind: EventKindArrival},
			{Station: "VASAI ROAD", Minutes: 380, Kind: EventKindArrival},
			{Station: "VASAI ROAD", Minutes: 382, Kind: EventKindDeparture},
			{Station: "BORIVALI", Minutes: 400, Kind: EventKindArrival},
		},
	}

	if got := service.ComputeLength(testChainage); got != 26 {
		t.Errorf("ComputeLength = %v, want 26", got)
	}
	if service.LengthKm != 26 {
		t.Errorf("LengthKm = %v, want 26", service.LengthKm)
	}
}

func TestComputeLengthSymmetricRoundTrip(t *testing.T) {
	outAndBack := &Service{
		Events: []*Event{
			{Station: "VIRAR", Minutes: 370},
			{Station: "VASAI ROAD", Minutes: 390},
			{Station: "VIRAR", Minutes: 410},
		},
	}
	reversed := &Service{
		Events: []*Event{
			{Station: "VASAI ROAD", Minutes: 370},
			{Station: "VIRAR", Minutes: 390},
			{Station: "VASAI ROAD", Minutes: 410},
		},
	}

	if outAndBack.ComputeLength(testChainage) != reversed.ComputeLength(testChainage) {
		t.Errorf("symmetric round trips should have equal length: %v vs %v",
			outAndBack.LengthKm, reversed.LengthKm)
	}
}

func TestComputeLengthEdgeCases(t *testing.T) {
	empty := &Service{}
	if got := empty.ComputeLength(testChainage); got != 0 {
		t.Errorf("zero events should give zero length, got %v", got)
	}

	unknown := &Service{
		Events: []*Event{
			{Station: "VIRAR", Minutes: 370},
			{Station: "NOWHERE", Minutes: 380},
			{Station: "NALLASOPARA", Minutes: 390},
		},
	}
	// The unresolvable station contributes nothing; the delta is taken
	// between the stations around it.
	if got := unknown.ComputeLength(testChainage); got != 4 {
		t.Errorf("ComputeLength with unknown station = %v, want 4", got)
	}
}

func TestHasIdentifier(t *testing.T) {
	service := &Service{Identifiers: []string{"93001", "93005"}}
	if !service.HasIdentifier("93005") {
		t.Error("expected 93005 to match")
	}
	if service.HasIdentifier("93002") {
		t.Error("did not expect 93002 to match")
	}
}
