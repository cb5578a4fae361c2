package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/browser-schedule/internal/schedule"
)

const atLayout = "2006-01-02 15:04"

// parseAt resolves an --at value relative to now. It accepts "HH:MM" (today),
// "YYYY-MM-DD HH:MM" in now's location, or RFC 3339 with its own offset.
// An empty value means now.
func parseAt(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}

	if hour, minute, err := schedule.ParseTime(value); err == nil {
		y, m, d := now.Date()
		return time.Date(y, m, d, hour, minute, 0, 0, now.Location()), nil
	}
	if t, err := time.ParseInLocation(atLayout, value, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid --at %q: use HH:MM, \"YYYY-MM-DD HH:MM\" or RFC 3339", value)
}

// addAtFlag registers --at on cmd.
func addAtFlag(cmd *cobra.Command, at *string) {
	cmd.Flags().StringVar(at, "at", "", `Decide as of this time: HH:MM, "YYYY-MM-DD HH:MM" or RFC 3339 (default now)`)
}
