package reconciler

import "github.com/ar-in0/western-railways-simulator/pkg/wtt"

// Statistics summarises one reconciliation run.
type Statistics struct {
	Services      int     `json:"services"`
	UpServices    int     `json:"up_services"`
	DownServices  int     `json:"down_services"`
	ACServices    int     `json:"ac_services"`
	Itineraries   int     `json:"itineraries"`
	Excluded      int     `json:"excluded"`
	Conflicts     int     `json:"conflicts"`
	TotalLengthKm float64 `json:"total_length_km"`
}

func (r *Result) Statistics() Statistics {
	stats := Statistics{
		Services:    len(r.Services),
		Itineraries: len(r.Itineraries),
		Excluded:    len(r.Excluded),
		Conflicts:   len(r.Conflicts),
	}

	for _, service := range r.Services {
		switch service.Direction {
		case wtt.DirectionUp:
			stats.UpServices++
		case wtt.DirectionDown:
			stats.DownServices++
		}
		if service.NeedsAC {
			stats.ACServices++
		}
	}

	for _, itinerary := range r.Itineraries {
		stats.TotalLengthKm += itinerary.LengthKm
	}

	return stats
}
