package schedule

import "time"

// Mode is the routing mode a decision lands in.
type Mode int

const (
	ModePersonal Mode = iota
	ModeWork
)

func (m Mode) String() string {
	if m == ModeWork {
		return "work"
	}
	return "personal"
}

// Reason says which rule produced a Decision.
type Reason string

const (
	// ReasonOverride means an override pattern matched the URL.
	ReasonOverride Reason = "override"
	// ReasonSchedule means the work window decided.
	ReasonSchedule Reason = "schedule"
	// ReasonInvalidConfig means the config failed validation and the
	// personal browser was chosen.
	ReasonInvalidConfig Reason = "invalid-config"
)

// Decision is the full trace of a routing decision.
type Decision struct {
	URL      string
	At       time.Time
	Browser  string
	Mode     Mode
	Reason   Reason
	Override Match
	// Shift is only populated when no override matched.
	Shift ShiftCheck
}

// Explain routes rawURL at the given moment and returns how it got there.
func Explain(rawURL string, cfg Config, at time.Time) Decision {
	d := Decision{
		URL:      rawURL,
		At:       at,
		Override: MatchOverride(rawURL, cfg),
	}

	switch d.Override {
	case MatchPersonal:
		d.Mode, d.Reason = ModePersonal, ReasonOverride
	case MatchWork:
		d.Mode, d.Reason = ModeWork, ReasonOverride
	default:
		d.Shift = CheckShift(cfg, at)
		d.Reason = ReasonSchedule
		if !d.Shift.Valid {
			d.Reason = ReasonInvalidConfig
		}
		if d.Shift.IsWork() {
			d.Mode = ModeWork
		}
	}

	d.Browser = cfg.Browsers.For(d.Mode)
	return d
}

// Decide returns the browser that should open rawURL at the given moment.
// It always returns one of the two configured browsers.
func Decide(rawURL string, cfg Config, at time.Time) string {
	return Explain(rawURL, cfg, at).Browser
}
