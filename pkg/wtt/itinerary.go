package wtt

// Itinerary is one rake-cycle: the ordered sequence of services a single
// physical train-set performs in a day, as declared in the summary sheet
// under a link name ("A", "AK", ...).
type Itinerary struct {
	LinkName string `groups:"basic" json:"link_name"`

	// Identifier sequence as authored in the summary source.
	DeclaredIdentifiers []string `groups:"basic" json:"declared_identifiers"`

	// Identifiers declared in the summary but absent from the service set.
	// Any entry here makes the itinerary invalid.
	UndefinedIdentifiers []string `groups:"basic" json:"undefined_identifiers,omitempty"`

	Status ItineraryStatus `groups:"basic" json:"status"`

	// Ordered, non-owning references into the global service set. Assigned
	// exactly once, during reconciliation.
	ServicePath []*Service `groups:"detailed" json:"service_path,omitempty"`

	Rake *Rake `groups:"basic" json:"rake,omitempty"`

	LengthKm float64 `groups:"basic" json:"length_km"`
}

// Renderable reports whether the itinerary carries a reconciled service path
// that visibility evaluation can operate on.
func (i *Itinerary) Renderable() bool {
	return i.Status == ItineraryStatusValid && len(i.ServicePath) > 0
}

// PathIdentifiers returns the primary identifier of each service on the
// reconciled path, in path order.
func (i *Itinerary) PathIdentifiers() []string {
	ids := make([]string, 0, len(i.ServicePath))
	for _, svc := range i.ServicePath {
		ids = append(ids, svc.PrimaryIdentifier)
	}
	return ids
}
