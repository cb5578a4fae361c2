package config

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/browser-schedule/internal/schedule"
)

// DayHint suggests the canonical day name closest to a misspelt one, or ""
// if nothing is close. "monday" and "TUES" both get a suggestion.
func DayHint(value string) string {
	target := []string{strings.ToLower(value)}

	best, bestScore := "", 0
	for _, day := range schedule.DayNames {
		// The day's letters must all appear, in order, in the value.
		matches := fuzzy.Find(strings.ToLower(day), target)
		if len(matches) == 0 {
			continue
		}
		if best == "" || matches[0].Score > bestScore {
			best, bestScore = day, matches[0].Score
		}
	}
	if best == value {
		return ""
	}
	return best
}

// Warnings returns non-fatal remarks about cfg that Validate accepts.
func Warnings(cfg schedule.Config) []string {
	var warns []string

	start, okStart := cfg.WorkTime.StartHour()
	end, okEnd := cfg.WorkTime.EndHour()
	if okStart && okEnd && start == end {
		warns = append(warns, fmt.Sprintf(
			"work_time %s-%s starts and ends in the same hour: every hour of a work day counts as work time",
			cfg.WorkTime.Start, cfg.WorkTime.End))
	}

	for _, side := range []struct {
		name     string
		patterns []string
	}{
		{"personal", cfg.Overrides.Personal},
		{"work", cfg.Overrides.Work},
	} {
		for i, p := range side.patterns {
			if p == "" {
				warns = append(warns, fmt.Sprintf("overrides.%s[%d] is empty and never matches", side.name, i))
			}
		}
	}

	if cfg.Browsers.Work == "" || cfg.Browsers.Personal == "" {
		warns = append(warns, "a browser name is empty")
	}

	return warns
}

// ValidationHints returns "did you mean" suggestions for the day names in cfg
// that fail to parse.
func ValidationHints(cfg schedule.Config) []string {
	var hints []string
	for _, field := range []struct {
		key   string
		value string
	}{
		{"work_days.start", cfg.WorkDays.Start},
		{"work_days.end", cfg.WorkDays.End},
	} {
		if _, ok := schedule.ParseWeekday(field.value); ok {
			continue
		}
		if hint := DayHint(field.value); hint != "" {
			hints = append(hints, fmt.Sprintf("%s = %q: did you mean %q?", field.key, field.value, hint))
		}
	}
	return hints
}
