package main

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/browser-schedule/internal/config"
	"github.com/raphi011/browser-schedule/internal/launch"
	"github.com/raphi011/browser-schedule/internal/log"
	"github.com/raphi011/browser-schedule/internal/output"
	"github.com/raphi011/browser-schedule/internal/schedule"
)

func newOpenCmd() *cobra.Command {
	var (
		at     string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:         "open <url>",
		Short:       "Open a URL in the scheduled browser",
		GroupID:     GroupRouting,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{configAnnotation: configLenient},
		Long: `Open a URL in the browser chosen by the routing rules.

On macOS the browser is started with "open -a <browser> <url>"; elsewhere the
browser name is run as a command with the URL as its argument.`,
		Example: `  browser-schedule open https://example.com
  browser-schedule open -n https://example.com   # print the command instead`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loaded := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			url := args[0]
			if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
				return fmt.Errorf("URL must start with http:// or https://: %s", url)
			}

			now, err := parseAt(at, time.Now())
			if err != nil {
				return err
			}

			d := schedule.Explain(url, loaded.Effective, now)
			l.Decision(d)

			if dryRun {
				name, cmdArgs := launch.Command(runtime.GOOS, d.Browser, url)
				out.Println(strings.Join(append([]string{name}, cmdArgs...), " "))
				return nil
			}

			return launch.Open(ctx, d.Browser, url)
		},
	}

	addAtFlag(cmd, &at)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the launch command without running it")

	return cmd
}
