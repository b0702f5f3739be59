package dataimporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

// Link names are one or two capital letters, optionally carrying the dagger
// the summary uses to mark continuation rows.
var linkNamePattern = regexp.MustCompile(`^([A-Z]{1,2})\s*\x{2020}?$`)

// LoadSummary reads the authored link summary from a CSV export: each
// matching row names a link and lists its identifier sequence.
func LoadSummary(path string, preambleRows int) ([]wtt.SummaryEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening summary: %w", err)
	}
	defer file.Close()

	entries, err := ReadSummary(file, preambleRows)
	if err != nil {
		return nil, fmt.Errorf("reading summary %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("links", len(entries)).Msg("Loaded link summary")

	return entries, nil
}

// ReadSummary decodes summary entries from ragged CSV records. The link name
// sits in the second column; identifier cells follow.
func ReadSummary(r io.Reader, preambleRows int) ([]wtt.SummaryEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if preambleRows > len(records) {
		preambleRows = len(records)
	}

	var entries []wtt.SummaryEntry

	for _, record := range records[preambleRows:] {
		if len(record) < 2 {
			continue
		}

		match := linkNamePattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(record[1])))
		if match == nil {
			continue
		}

		entry := wtt.SummaryEntry{LinkName: match[1]}
		for _, cell := range record[2:] {
			if !wtt.IsServiceIdentifier(cell) {
				continue
			}
			if id, ok := wtt.ExtractIdentifier(cell); ok {
				entry.Identifiers = append(entry.Identifiers, id)
			}
		}

		if len(entry.Identifiers) == 0 {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
