package schedule

import "time"

// ShiftCheck records how IsWorkTime reached its answer.
type ShiftCheck struct {
	// Valid is false when the config failed Validate; every other field
	// except Errors is then zero.
	Valid  bool
	Errors []string

	NightShift bool
	Weekday    Weekday
	Hour       int
	StartDay   Weekday
	EndDay     Weekday
	StartHour  int
	EndHour    int

	WorkDay  bool
	WorkHour bool
}

// IsWork reports whether the check found work time.
func (s ShiftCheck) IsWork() bool {
	return s.Valid && s.WorkDay && s.WorkHour
}

// ShiftType returns "night" or "day".
func (s ShiftCheck) ShiftType() string {
	if s.NightShift {
		return "night"
	}
	return "day"
}

// CheckShift evaluates the work window of cfg at the wall-clock hour and
// weekday of at, in at's location.
func CheckShift(cfg Config, at time.Time) ShiftCheck {
	if v := Validate(cfg); !v.Valid {
		return ShiftCheck{Errors: v.Errors}
	}

	// Validate guarantees these parse.
	startHour, _ := cfg.WorkTime.StartHour()
	endHour, _ := cfg.WorkTime.EndHour()
	startDay, _ := cfg.WorkDays.StartWeekday()
	endDay, _ := cfg.WorkDays.EndWeekday()

	check := ShiftCheck{
		Valid:      true,
		NightShift: startHour >= endHour,
		Weekday:    WeekdayOf(at),
		Hour:       at.Hour(),
		StartDay:   startDay,
		EndDay:     endDay,
		StartHour:  startHour,
		EndHour:    endHour,
	}

	check.WorkDay = check.Weekday >= startDay && check.Weekday <= endDay
	if check.NightShift {
		// start == end lands here and matches every hour.
		check.WorkHour = check.Hour >= startHour || check.Hour < endHour
	} else {
		check.WorkHour = check.Hour >= startHour && check.Hour < endHour
	}

	return check
}

// IsWorkTime reports whether at falls inside the work window of cfg.
// An invalid cfg is never work time.
func IsWorkTime(cfg Config, at time.Time) bool {
	return CheckShift(cfg, at).IsWork()
}
