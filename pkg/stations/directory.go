// Package stations provides the canonical station directory: name and alias
// resolution plus chainage lookup. The directory is read-only shared state
// once built.
package stations

import (
	"errors"
	"sort"
	"strings"

	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

var ErrEmptyDirectory = errors.New("station directory has no stations")

type Directory struct {
	stations map[string]*wtt.Station
	aliases  map[string]string
}

// NewDirectory builds a directory from the station table and an alias table
// mapping non-canonical labels (abbreviations, known misspellings) to
// canonical names. An empty station table is the one run-level fatal
// condition of the engine.
func NewDirectory(list []wtt.Station, aliases map[string]string) (*Directory, error) {
	if len(list) == 0 {
		return nil, ErrEmptyDirectory
	}

	directory := &Directory{
		stations: map[string]*wtt.Station{},
		aliases:  map[string]string{},
	}

	for _, station := range list {
		station := station
		station.Name = normalise(station.Name)
		directory.stations[station.Name] = &station
	}

	for alias, canonical := range aliases {
		directory.aliases[normalise(alias)] = normalise(canonical)
	}

	return directory, nil
}

func normalise(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

// Canonicalise resolves a raw grid label to a canonical station name. This is
// the single canonicalisation point used by both the service extractor and
// the event sequencer.
func (d *Directory) Canonicalise(label string) (string, bool) {
	name := normalise(label)
	if name == "" {
		return "", false
	}

	if canonical, ok := d.aliases[name]; ok {
		name = canonical
	}

	if _, ok := d.stations[name]; !ok {
		return "", false
	}
	return name, true
}

// Chainage returns the station's distance in km from the network origin.
func (d *Directory) Chainage(station string) (float64, bool) {
	record, ok := d.stations[normalise(station)]
	if !ok {
		return 0, false
	}
	return record.ChainageKm, true
}

// Get returns the station record for a canonical name.
func (d *Directory) Get(name string) (*wtt.Station, bool) {
	record, ok := d.stations[normalise(name)]
	return record, ok
}

// MatchAbbreviation scans the cell for a known alias token, used for the
// "<abbr> ARR." terminal marker cells where the station appears only as an
// abbreviation. Longer aliases are tried first so "CSMT" wins over "MM"
// style collisions.
func (d *Directory) MatchAbbreviation(cell string) (string, bool) {
	value := normalise(cell)
	if value == "" {
		return "", false
	}

	keys := make([]string, 0, len(d.aliases))
	for alias := range d.aliases {
		keys = append(keys, alias)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })

	for _, alias := range keys {
		if strings.Contains(value, alias) {
			return d.aliases[alias], true
		}
	}
	return "", false
}

// All returns every station ordered by chainage.
func (d *Directory) All() []*wtt.Station {
	list := make([]*wtt.Station, 0, len(d.stations))
	for _, station := range d.stations {
		list = append(list, station)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ChainageKm < list[j].ChainageKm })
	return list
}
