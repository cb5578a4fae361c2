package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/browser-schedule/internal/config"
	"github.com/raphi011/browser-schedule/internal/log"
	"github.com/raphi011/browser-schedule/internal/output"
	"github.com/raphi011/browser-schedule/internal/schedule"
	"github.com/raphi011/browser-schedule/internal/ui/static"
)

func newWhichCmd() *cobra.Command {
	var (
		at              string
		explain         bool
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:         "which <url>...",
		Short:       "Print the browser a URL would open in",
		GroupID:     GroupRouting,
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{configAnnotation: configLenient},
		Long: `Print the browser a URL would open in, without opening it.

With several URLs, prints a table with the browser, mode and reason for each.`,
		Example: `  browser-schedule which https://github.com/mycompany/repo
  browser-schedule which --at "2026-10-24 10:00" https://example.com
  browser-schedule which --explain https://reddit.com
  browser-schedule which https://a.example https://b.example
  browser-schedule which --copy https://example.com   # copy browser name to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loaded := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if copyToClipboard && len(args) != 1 {
				return fmt.Errorf("--copy needs exactly one URL")
			}

			now, err := parseAt(at, time.Now())
			if err != nil {
				return err
			}

			decisions := make([]schedule.Decision, len(args))
			for i, url := range args {
				decisions[i] = schedule.Explain(url, loaded.Effective, now)
				l.Decision(decisions[i])
			}

			switch {
			case explain:
				for i, d := range decisions {
					if i > 0 {
						out.Println()
					}
					printExplanation(out, d)
				}
			case len(decisions) == 1:
				out.Println(decisions[0].Browser)
			default:
				rows := make([][]string, len(decisions))
				for i, d := range decisions {
					rows[i] = static.DecisionRow(d)
				}
				out.Styled(strings.TrimSuffix(static.RenderTable(static.DecisionHeaders, rows), "\n"))
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(decisions[0].Browser); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				l.Printf("Copied to clipboard: %s\n", decisions[0].Browser)
			}

			return nil
		},
	}

	addAtFlag(cmd, &at)
	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Show how the browser was chosen")
	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the browser name to clipboard")

	return cmd
}

// explainWidth aligns the labels printed by printExplanation.
const explainWidth = len("Work hours")

// printExplanation writes every step of a routing decision.
func printExplanation(out *output.Printer, d schedule.Decision) {
	out.Println(d.URL)
	out.Field(explainWidth, "Time", fmt.Sprintf("%s %s", schedule.WeekdayOf(d.At), d.At.Format("2006-01-02 15:04")))
	out.Field(explainWidth, "Override", d.Override.String())

	switch d.Reason {
	case schedule.ReasonInvalidConfig:
		for _, e := range d.Shift.Errors {
			out.Field(explainWidth, "Error", e)
		}
	case schedule.ReasonSchedule:
		s := d.Shift
		out.Field(explainWidth, "Shift", s.ShiftType())
		out.Field(explainWidth, "Work days", fmt.Sprintf("%s-%s (%s: %s)", s.StartDay, s.EndDay, s.Weekday, yesNo(s.WorkDay)))
		out.Field(explainWidth, "Work hours", fmt.Sprintf("%d-%d (hour %d: %s)", s.StartHour, s.EndHour, s.Hour, yesNo(s.WorkHour)))
	}

	out.Field(explainWidth, "Reason", string(d.Reason))
	out.Field(explainWidth, "Mode", d.Mode.String())
	out.Field(explainWidth, "Browser", d.Browser)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

