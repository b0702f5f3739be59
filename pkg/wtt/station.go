package wtt

// Station is immutable reference data, created once at startup from the
// station directory configuration.
type Station struct {
	Name string `groups:"basic" json:"name" yaml:"name" csv:"name"`

	// Distance in km from the network origin (Churchgate), used for length
	// computation.
	ChainageKm float64 `groups:"basic" json:"chainage_km" yaml:"chainage_km" csv:"chainage_km"`
}
