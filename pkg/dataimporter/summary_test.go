package dataimporter

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ar-in0/western-railways-simulator/pkg/wtt"
)

func TestReadSummary(t *testing.T) {
	input := strings.Join([]string{
		"RAKE LINKS,,",
		",,",
		",A,93001,93002,ETY 612",
		",B †,94001,94003",
		",note row,this is prose",
		",C,",
		",AB,95001",
	}, "\n")

	entries, err := ReadSummary(strings.NewReader(input), 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []wtt.SummaryEntry{
		{LinkName: "A", Identifiers: []string{"93001", "93002", "ETY 612"}},
		{LinkName: "B", Identifiers: []string{"94001", "94003"}},
		{LinkName: "AB", Identifiers: []string{"95001"}},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

func TestReadSummarySkipsLinksWithoutIdentifiers(t *testing.T) {
	entries, err := ReadSummary(strings.NewReader(",C,,,\n,D,spare rake\n"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %v, want none", entries)
	}
}

func TestReadSummaryNormalisesIdentifierCells(t *testing.T) {
	entries, err := ReadSummary(strings.NewReader(",A, 93001 ,ety 405\n"), 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	want := []string{"93001", "ETY 405"}
	if !reflect.DeepEqual(entries[0].Identifiers, want) {
		t.Errorf("identifiers = %v, want %v", entries[0].Identifiers, want)
	}
}
