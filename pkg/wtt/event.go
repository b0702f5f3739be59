package wtt

// Event is a single station visit by a Service. Events are appended in the
// order they are discovered while walking the service column and are never
// re-sorted; that order is taken as chronological truth.
type Event struct {
	Station string    `groups:"basic" json:"station"`
	Minutes int       `groups:"basic" json:"minutes"`
	Kind    EventKind `groups:"basic" json:"kind"`
}
