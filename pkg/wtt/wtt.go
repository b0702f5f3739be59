// Package wtt contains the domain model for a Western Railways suburban
// working timetable: services extracted from the timetable grid, the station
// events they perform, and the rake-cycles (itineraries) that link services
// into the daily duty of one physical train-set.
package wtt

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

type ServiceKind string

const (
	ServiceKindRegular         ServiceKind = "regular"
	ServiceKindStabling        ServiceKind = "stabling"
	ServiceKindMultiIdentifier ServiceKind = "multi-identifier"
)

type ServiceZone string

const (
	ServiceZoneSuburban ServiceZone = "suburban"
	ServiceZoneCentral  ServiceZone = "central"
)

type EventKind string

const (
	EventKindArrival   EventKind = "arrival"
	EventKindDeparture EventKind = "departure"
)

type ItineraryStatus string

const (
	ItineraryStatusValid   ItineraryStatus = "valid"
	ItineraryStatusInvalid ItineraryStatus = "invalid"
)
