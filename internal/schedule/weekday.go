package schedule

import (
	"fmt"
	"time"
)

// Weekday is a day of the week numbered Sunday-first, 1 (Sun) to 7 (Sat).
// The zero value is not a valid day.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DayNames lists the canonical three-letter day names in weekday order.
var DayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ParseWeekday maps a canonical three-letter day name to its Weekday.
// Matching is exact: "mon" and "Monday" are rejected.
func ParseWeekday(name string) (Weekday, bool) {
	for i, n := range DayNames {
		if n == name {
			return Weekday(i + 1), true
		}
	}
	return 0, false
}

// WeekdayOf returns the Weekday of t in t's own location.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday()) + 1
}

// Valid reports whether d is one of the seven days.
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return DayNames[d-1]
}
