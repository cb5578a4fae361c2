package schedule

// Default browser and window values, used for any group a config omits.
const (
	DefaultWorkBrowser     = "Google Chrome"
	DefaultPersonalBrowser = "Zen"
	DefaultWorkStart       = "9:00"
	DefaultWorkEnd         = "18:00"
	DefaultWorkDayStart    = "Mon"
	DefaultWorkDayEnd      = "Fri"
)

// Browsers names the application used in each mode.
type Browsers struct {
	Work     string
	Personal string
}

// For returns the browser bound to mode.
func (b Browsers) For(mode Mode) string {
	if mode == ModeWork {
		return b.Work
	}
	return b.Personal
}

// Overrides holds URL substrings that force a mode regardless of schedule.
// A nil list means no overrides of that kind.
type Overrides struct {
	Personal []string
	Work     []string
}

// IsEmpty reports whether neither list has any pattern.
func (o Overrides) IsEmpty() bool {
	return len(o.Personal) == 0 && len(o.Work) == 0
}

// WorkTime is the daily work window as "H:MM" strings.
type WorkTime struct {
	Start string
	End   string
}

// StartHour returns the parsed start hour.
func (w WorkTime) StartHour() (int, bool) { return ParseHour(w.Start) }

// EndHour returns the parsed end hour.
func (w WorkTime) EndHour() (int, bool) { return ParseHour(w.End) }

// IsNightShift reports whether the window wraps past midnight, i.e. the start
// hour is at or after the end hour. False if either time is invalid.
func (w WorkTime) IsNightShift() bool {
	start, ok1 := w.StartHour()
	end, ok2 := w.EndHour()
	return ok1 && ok2 && start >= end
}

// WorkDays is the inclusive work-day range as three-letter day names.
type WorkDays struct {
	Start string
	End   string
}

// StartWeekday returns the parsed first work day.
func (w WorkDays) StartWeekday() (Weekday, bool) { return ParseWeekday(w.Start) }

// EndWeekday returns the parsed last work day.
func (w WorkDays) EndWeekday() (Weekday, bool) { return ParseWeekday(w.End) }

// Config is a complete routing configuration.
// Treat it as a value: Merge returns a new Config instead of patching one.
type Config struct {
	Browsers  Browsers
	Overrides Overrides
	WorkTime  WorkTime
	WorkDays  WorkDays
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Browsers: Browsers{
			Work:     DefaultWorkBrowser,
			Personal: DefaultPersonalBrowser,
		},
		WorkTime: WorkTime{Start: DefaultWorkStart, End: DefaultWorkEnd},
		WorkDays: WorkDays{Start: DefaultWorkDayStart, End: DefaultWorkDayEnd},
	}
}

// LocalConfig is a sparse overlay for Config. A nil group is inherited from
// the base config.
type LocalConfig struct {
	Browsers  *Browsers
	Overrides *Overrides
	WorkTime  *WorkTime
	WorkDays  *WorkDays
}

// IsEmpty reports whether the overlay sets nothing.
func (l LocalConfig) IsEmpty() bool {
	return l.Browsers == nil && l.Overrides == nil && l.WorkTime == nil && l.WorkDays == nil
}
