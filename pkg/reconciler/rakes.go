package reconciler

import "github.com/ar-in0/western-railways-simulator/pkg/wtt"

// AssignRake constructs the physical train-set descriptor for a validated
// itinerary with a single forward scan over its path: the first service
// requiring AC sets the flag and ends the scan, otherwise the first service
// with a car-count requirement sets the size and ends the scan.
func AssignRake(itinerary *wtt.Itinerary) *wtt.Rake {
	rake := &wtt.Rake{CarCount: 12}

	for _, service := range itinerary.ServicePath {
		if service.NeedsAC {
			rake.IsAC = true
			break
		}
		if service.CarCount > 0 {
			rake.CarCount = service.CarCount
			break
		}
	}

	return rake
}
