package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  upGrid: up.csv
  downGrid: down.csv
  summary: summary.csv
`)

	config, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if config.Server.Listen != ":8080" {
		t.Errorf("listen = %s", config.Server.Listen)
	}
	if config.Data.GridPreambleRows != 4 {
		t.Errorf("grid preamble = %d", config.Data.GridPreambleRows)
	}
	if config.Data.SummaryPreambleRows != 2 {
		t.Errorf("summary preamble = %d", config.Data.SummaryPreambleRows)
	}
}

func TestLoadRejectsMissingDataPaths(t *testing.T) {
	path := writeConfig(t, `
data:
  upGrid: up.csv
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestDirectoryFallsBackToWestern(t *testing.T) {
	config := &Config{}

	directory, err := config.Directory()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := directory.Chainage("CHURCHGATE"); !ok {
		t.Error("built-in directory should know Churchgate")
	}
}

func TestDirectoryInlineStations(t *testing.T) {
	path := writeConfig(t, `
data:
  upGrid: up.csv
  downGrid: down.csv
  summary: summary.csv
stations:
  inline:
    - name: ALPHA
      chainage_km: 0
    - name: BETA
      chainage_km: 12
  aliases:
    BT: BETA
`)

	config, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	directory, err := config.Directory()
	if err != nil {
		t.Fatal(err)
	}

	if got, ok := directory.Canonicalise("bt"); !ok || got != "BETA" {
		t.Errorf("canonicalise = %q, %v", got, ok)
	}
	if _, ok := directory.Chainage("CHURCHGATE"); ok {
		t.Error("inline directory should not carry the built-in table")
	}
}

func TestDirectoryAliasesWithoutStationsIsFatal(t *testing.T) {
	config := &Config{}
	config.Stations.Aliases = map[string]string{"BT": "BETA"}

	if _, err := config.Directory(); err == nil {
		t.Fatal("expected an empty directory error")
	}
}
