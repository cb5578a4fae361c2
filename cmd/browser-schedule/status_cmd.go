package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/browser-schedule/internal/config"
	"github.com/raphi011/browser-schedule/internal/log"
	"github.com/raphi011/browser-schedule/internal/output"
	"github.com/raphi011/browser-schedule/internal/schedule"
	"github.com/raphi011/browser-schedule/internal/ui/styles"
)

// statusWidth aligns the labels printed by status.
const statusWidth = len("Personal overrides")

func newStatusCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:         "status",
		Short:       "Show effective configuration and current mode",
		GroupID:     GroupRouting,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{configAnnotation: configLenient},
		Long: `Show the effective configuration and which browser URLs open in now.

Values set by config.local.toml are marked (local).`,
		Example: `  browser-schedule status
  browser-schedule status --at 22:30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loaded := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			now, err := parseAt(at, time.Now())
			if err != nil {
				return err
			}

			printStatus(out, loaded, now)

			d := schedule.Explain("", loaded.Effective, now)
			l.Decision(d)
			return nil
		},
	}

	addAtFlag(cmd, &at)

	return cmd
}

// printStatus writes the configuration summary and the mode at now.
func printStatus(out *output.Printer, loaded *config.Loaded, now time.Time) {
	cfg := loaded.Effective
	local := loaded.Local
	if local == nil {
		local = &schedule.LocalConfig{}
	}

	// Helper to annotate source
	source := func(isLocal bool) string {
		if isLocal {
			return styles.MutedStyle.Render(" (local)")
		}
		return ""
	}

	out.Println("Current configuration:")
	out.Field(statusWidth, "Work browser", styles.WorkStyle.Render(cfg.Browsers.Work)+source(local.Browsers != nil))
	out.Field(statusWidth, "Personal browser", styles.PersonalStyle.Render(cfg.Browsers.Personal)+source(local.Browsers != nil))

	shift := ""
	if cfg.WorkTime.IsNightShift() {
		shift = " (night shift)"
	}
	out.Field(statusWidth, "Work hours", cfg.WorkTime.Start+"-"+cfg.WorkTime.End+shift+source(local.WorkTime != nil))
	out.Field(statusWidth, "Work days", cfg.WorkDays.Start+"-"+cfg.WorkDays.End+source(local.WorkDays != nil))

	if len(cfg.Overrides.Personal) > 0 {
		out.Field(statusWidth, "Personal overrides", strings.Join(cfg.Overrides.Personal, ", "))
	}
	if len(cfg.Overrides.Work) > 0 {
		out.Field(statusWidth, "Work overrides", strings.Join(cfg.Overrides.Work, ", "))
	}

	base := loaded.Paths.Base
	if !loaded.BaseFound {
		base += styles.MutedStyle.Render(" (not found, using defaults)")
	}
	out.Field(statusWidth, "Config file", base)
	if loaded.Local != nil {
		out.Field(statusWidth, "Local config", loaded.Paths.Local+localState(*loaded.Local))
	}

	validation := schedule.Validate(cfg)
	if !validation.Valid {
		out.Styled(styles.WarningStyle.Render("  Configuration errors:"))
		for _, e := range validation.Errors {
			out.Println("     - " + e)
		}
		out.Styled(fmt.Sprintf("  Current: using personal browser (%s) due to config errors",
			styles.PersonalStyle.Render(cfg.Browsers.Personal)))
		return
	}

	when := fmt.Sprintf("%s %02d:%02d", schedule.WeekdayOf(now), now.Hour(), now.Minute())
	if schedule.IsWorkTime(cfg, now) {
		out.Styled(fmt.Sprintf("  Current (%s): work time - using %s", when, styles.WorkStyle.Render(cfg.Browsers.Work)))
	} else {
		out.Styled(fmt.Sprintf("  Current (%s): personal time - using %s", when, styles.PersonalStyle.Render(cfg.Browsers.Personal)))
	}
}

// localState describes how an overlay file contributed to the effective config.
func localState(local schedule.LocalConfig) string {
	if local.IsEmpty() {
		return " (empty)"
	}
	return " (merged)"
}
