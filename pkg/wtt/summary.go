package wtt

// SummaryEntry is one row of the separately authored link summary: a link
// name and the ordered identifier sequence the rake performs under it.
type SummaryEntry struct {
	LinkName    string
	Identifiers []string
}
