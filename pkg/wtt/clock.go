package wtt

import (
	"regexp"
	"strconv"
)

// The traffic day starts at 02:45. Clock values earlier than that belong to
// the tail end of the operating day and wrap onto the next calendar day.
const TrafficDayStartMinutes = 165

const minutesPerDay = 1440

// NoTime is the sentinel for cells that carry no timing information.
const NoTime = -1

// Some grids carry a stray date prefix in front of the clock value, so the
// pattern tolerates one before the time itself.
var clockPattern = regexp.MustCompile(`^\s*(?:\d{1,2}/\d{1,2}/\d{2,4}\s+)?([01]?\d|2[0-3]):([0-5]\d)(?::[0-5]\d)?\s*$`)

// ParseClock converts a textual clock value (HH:MM or HH:MM:SS) into minutes
// since the start of the traffic day. Values before 02:45 are shifted forward
// by a full day so that one monotonically increasing scale spans the whole
// operating day. Returns (NoTime, false) for anything that is not a clock
// value.
func ParseClock(cell string) (int, bool) {
	match := clockPattern.FindStringSubmatch(cell)
	if match == nil {
		return NoTime, false
	}

	hours, _ := strconv.Atoi(match[1])
	mins, _ := strconv.Atoi(match[2])

	minutes := hours*60 + mins
	if minutes < TrafficDayStartMinutes {
		minutes += minutesPerDay
	}

	return minutes, true
}

// IsClock reports whether the cell would parse as a clock value.
func IsClock(cell string) bool {
	_, ok := ParseClock(cell)
	return ok
}
