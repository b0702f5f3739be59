package wtt

// Conflict records a disagreement between the summary-declared identifier
// sequence of an itinerary and the sequence derived from the linkage graph.
// Conflicts are retained for reporting and never merged back into valid
// state.
type Conflict struct {
	LinkName string   `groups:"basic" json:"link_name"`
	Declared []string `groups:"basic" json:"declared"`
	Derived  []string `groups:"basic" json:"derived"`
}
