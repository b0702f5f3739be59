package stations

import "github.com/ar-in0/western-railways-simulator/pkg/wtt"

// Western returns the directory for the Western line suburban section,
// Churchgate to Virar. Chainages are km from Churchgate.
func Western() *Directory {
	directory, _ := NewDirectory(westernStations, westernAliases)
	return directory
}

var westernStations = []wtt.Station{
	{Name: "CHURCHGATE", ChainageKm: 0},
	{Name: "MARINE LINES", ChainageKm: 2},
	{Name: "CHARNI ROAD", ChainageKm: 3},
	{Name: "GRANT ROAD", ChainageKm: 4},
	{Name: "M'BAI CENTRAL(L)", ChainageKm: 5},
	{Name: "MAHALAKSHMI", ChainageKm: 6},
	{Name: "LOWER PAREL", ChainageKm: 8},
	{Name: "PRABHADEVI", ChainageKm: 9},
	{Name: "DADAR", ChainageKm: 11},
	{Name: "MATUNGA ROAD", ChainageKm: 11.5},
	{Name: "MAHIM JN.", ChainageKm: 12},
	{Name: "BANDRA", ChainageKm: 15},
	{Name: "KHAR ROAD", ChainageKm: 17},
	{Name: "SANTA CRUZ", ChainageKm: 18},
	{Name: "VILE PARLE", ChainageKm: 20},
	{Name: "ANDHERI", ChainageKm: 22},
	{Name: "JOGESHWARI", ChainageKm: 24},
	{Name: "RAM MANDIR", ChainageKm: 25.5},
	{Name: "GOREGAON", ChainageKm: 27},
	{Name: "MALAD", ChainageKm: 30},
	{Name: "KANDIVALI", ChainageKm: 32},
	{Name: "BORIVALI", ChainageKm: 34},
	{Name: "DAHISAR", ChainageKm: 37},
	{Name: "MIRA ROAD", ChainageKm: 40},
	{Name: "BHAYANDAR", ChainageKm: 44},
	{Name: "NAIGAON", ChainageKm: 48},
	{Name: "VASAI ROAD", ChainageKm: 52},
	{Name: "NALLASOPARA", ChainageKm: 56},
	{Name: "VIRAR", ChainageKm: 60},
}

// Alias table: telegraphic station codes plus the duplicate and misspelled
// labels the published grid is known to carry.
var westernAliases = map[string]string{
	"M'BAI CENTRAL (L)": "M'BAI CENTRAL(L)",
	"KANDIVLI":          "KANDIVALI",

	"BDTS": "BANDRA",
	"BA":   "BANDRA",
	"MM":   "MAHIM JN.",
	"ADH":  "ANDHERI",
	"KILE": "KANDIVALI",
	"BSR":  "BHAYANDAR",
	"DDR":  "DADAR",
	"VR":   "VIRAR",
	"BVI":  "BORIVALI",
	"MX":   "MAHALAKSHMI",
	"CCG":  "CHURCHGATE",
}
