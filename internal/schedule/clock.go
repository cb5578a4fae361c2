package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTime parses a 24-hour "H:MM" or "HH:MM" time of day.
// The hour must be 0-23 and the minute 00-59.
func ParseTime(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok || !isDigits(h, 1, 2) || !isDigits(m, 2, 2) {
		return 0, 0, fmt.Errorf("invalid time format: %q", s)
	}
	// Digits only, so Atoi cannot fail.
	hour, _ = strconv.Atoi(h)
	minute, _ = strconv.Atoi(m)
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("time out of range: %q", s)
	}
	return hour, minute, nil
}

// ParseHour returns the hour of a time string accepted by ParseTime.
func ParseHour(s string) (int, bool) {
	hour, _, err := ParseTime(s)
	if err != nil {
		return 0, false
	}
	return hour, true
}

// isDigits reports whether s is between lo and hi ASCII digits long.
func isDigits(s string, lo, hi int) bool {
	if len(s) < lo || len(s) > hi {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
