package dataimporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

// LoadStations reads the station table (name, chainage_km) from CSV.
func LoadStations(path string) ([]wtt.Station, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening station table: %w", err)
	}
	defer file.Close()

	return ReadStations(file)
}

func ReadStations(r io.Reader) ([]wtt.Station, error) {
	// Allow records with missing trailing columns.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		reader := csv.NewReader(in)
		reader.FieldsPerRecord = -1
		return reader
	})

	var list []wtt.Station
	if err := gocsv.Unmarshal(r, &list); err != nil {
		return nil, fmt.Errorf("parsing station table: %w", err)
	}
	return list, nil
}
