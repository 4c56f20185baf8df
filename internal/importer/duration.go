package importer

import (
	"strconv"
	"strings"
)

// Working-unit conversions used by MS Project duration expressions.
const (
	workingDaysPerWeek = 5
	workingHoursPerDay = 8
)

// ParseDuration converts a raw duration expression into working days.
// Accepted forms: bare numbers ("10"), "N days", "N wks"/"N weeks" (five
// working days each), "N hours" (eight hours to a day). Unparseable input
// degrades to 0 rather than failing the whole import.
func ParseDuration(raw string) int {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0
	}

	// Check "wk" before "week": "wks" contains neither "day" nor "week"
	// prefixes cleanly, and both spellings appear in real exports.
	for _, unit := range []struct {
		marker string
		scale  float64
	}{
		{"wk", workingDaysPerWeek},
		{"week", workingDaysPerWeek},
		{"day", 1},
		{"hour", 1.0 / workingHoursPerDay},
	} {
		if idx := strings.Index(s, unit.marker); idx >= 0 {
			n, err := strconv.ParseFloat(strings.TrimSpace(s[:idx]), 64)
			if err != nil {
				return 0
			}
			return int(n * unit.scale)
		}
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(n)
}
