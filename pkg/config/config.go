// Package config loads the engine's static configuration: data file paths,
// the station directory and alias tables, and server settings.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ar-in0/western-railways-simulator/pkg/dataimporter"
	"github.com/ar-in0/western-railways-simulator/pkg/stations"
	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

type ServerConfig struct {
	Listen string `yaml:"listen" validate:"omitempty"`
}

type DataConfig struct {
	UpGridPath   string `yaml:"upGrid" validate:"required"`
	DownGridPath string `yaml:"downGrid" validate:"required"`
	SummaryPath  string `yaml:"summary" validate:"required"`

	GridPreambleRows    int `yaml:"gridPreambleRows" validate:"gte=0"`
	SummaryPreambleRows int `yaml:"summaryPreambleRows" validate:"gte=0"`
}

type StationsConfig struct {
	// Station table, either inline or as a CSV file. When both are empty
	// the built-in Western line directory applies.
	Inline  []wtt.Station     `yaml:"inline"`
	CSVPath string            `yaml:"csv"`
	Aliases map[string]string `yaml:"aliases"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Data     DataConfig     `yaml:"data" validate:"required"`
	Stations StationsConfig `yaml:"stations"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8080"
	}
	if config.Data.GridPreambleRows == 0 {
		config.Data.GridPreambleRows = dataimporter.DefaultGridPreambleRows
	}
	if config.Data.SummaryPreambleRows == 0 {
		config.Data.SummaryPreambleRows = dataimporter.DefaultSummaryPreambleRows
	}

	return config, nil
}

// Directory builds the station directory the configuration describes, falling
// back to the built-in Western line table when none is configured. A
// configured but empty directory is fatal.
func (c *Config) Directory() (*stations.Directory, error) {
	list := c.Stations.Inline

	if len(list) == 0 && c.Stations.CSVPath != "" {
		loaded, err := dataimporter.LoadStations(c.Stations.CSVPath)
		if err != nil {
			return nil, err
		}
		list = loaded
	}

	if len(list) == 0 && len(c.Stations.Aliases) == 0 {
		return stations.Western(), nil
	}

	return stations.NewDirectory(list, c.Stations.Aliases)
}
