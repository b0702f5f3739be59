package wtt

// Rake is a physical train-set. One rake is constructed per validated
// itinerary; the mapping is 1:1.
type Rake struct {
	IsAC     bool `groups:"basic" json:"is_ac"`
	CarCount int  `groups:"basic" json:"car_count"`
}
