package schedule

import (
	"fmt"
	"strings"
)

// Validation is the outcome of Validate.
type Validation struct {
	Valid  bool
	Errors []string
}

var dayList = strings.Join(DayNames, ",")

// Validate checks the work-time and work-day fields of cfg.
// Every check runs so that all problems are reported at once, in the order
// start time, end time, start day, end day, day range.
func Validate(cfg Config) Validation {
	var errs []string

	if _, ok := cfg.WorkTime.StartHour(); !ok {
		errs = append(errs, fmt.Sprintf("Invalid work start time: %s (use HH:MM format)", cfg.WorkTime.Start))
	}
	if _, ok := cfg.WorkTime.EndHour(); !ok {
		errs = append(errs, fmt.Sprintf("Invalid work end time: %s (use HH:MM format)", cfg.WorkTime.End))
	}

	startDay, startOK := cfg.WorkDays.StartWeekday()
	if !startOK {
		errs = append(errs, fmt.Sprintf("Invalid work start day: %s (use %s)", cfg.WorkDays.Start, dayList))
	}
	endDay, endOK := cfg.WorkDays.EndWeekday()
	if !endOK {
		errs = append(errs, fmt.Sprintf("Invalid work end day: %s (use %s)", cfg.WorkDays.End, dayList))
	}

	// Time ranges may wrap midnight, day ranges may not.
	if startOK && endOK && startDay > endDay {
		errs = append(errs, fmt.Sprintf("Work day range invalid: %s is after %s", cfg.WorkDays.Start, cfg.WorkDays.End))
	}

	return Validation{Valid: len(errs) == 0, Errors: errs}
}
