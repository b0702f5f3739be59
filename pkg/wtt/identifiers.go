package wtt

import (
	"regexp"
	"strings"
)

// Service identifiers in the working timetable are 5 digit numerals,
// optionally followed by annotations ("93232 L/SPL"). Non-revenue stabling
// workings are declared with an "ETY <n>" placeholder token instead.
var (
	serviceIdentifierPattern  = regexp.MustCompile(`^\s*(\d{5})(?:\b.*)?$`)
	stablingPlaceholderPattern = regexp.MustCompile(`(?i)\bETY\s*\d+\b`)
	bareIdentifierPattern      = regexp.MustCompile(`^\d{5}$`)
)

// IsServiceIdentifier reports whether the cell declares a service identifier,
// either a 5 digit numeral or a stabling placeholder.
func IsServiceIdentifier(cell string) bool {
	if strings.TrimSpace(cell) == "" {
		return false
	}
	return serviceIdentifierPattern.MatchString(cell) || stablingPlaceholderPattern.MatchString(cell)
}

// ExtractIdentifier pulls the canonical identifier out of a declaring cell:
// the normalised "ETY <n>" token for placeholders, the bare 5 digit numeral
// otherwise.
func ExtractIdentifier(cell string) (string, bool) {
	if match := stablingPlaceholderPattern.FindString(cell); match != "" {
		return normalisePlaceholder(match), true
	}
	if match := serviceIdentifierPattern.FindStringSubmatch(cell); match != nil {
		return match[1], true
	}
	return "", false
}

// IsStablingPlaceholder reports whether the identifier is an "ETY <n>"
// stabling token rather than a revenue service identifier.
func IsStablingPlaceholder(id string) bool {
	return strings.Contains(strings.ToUpper(id), "ETY")
}

// IsBareIdentifier reports whether the value is exactly a 5 digit service
// identifier, used to validate "Reversed as" successor cells.
func IsBareIdentifier(cell string) bool {
	return bareIdentifierPattern.MatchString(strings.TrimSpace(cell))
}

func normalisePlaceholder(token string) string {
	fields := strings.Fields(strings.ToUpper(token))
	return strings.Join(fields, " ")
}
