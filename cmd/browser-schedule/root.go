package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/browser-schedule/internal/config"
	"github.com/raphi011/browser-schedule/internal/log"
	"github.com/raphi011/browser-schedule/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupRouting = "routing"
	GroupConfig  = "config"
)

// configAnnotation tells the root command how a subcommand treats a config
// that fails to load. Commands without it fail.
const configAnnotation = "config"

const (
	// configSkip commands never read the config files.
	configSkip = "skip"
	// configLenient commands warn and keep routing with the fallback config.
	configLenient = "lenient"
)

// globalFlags are the persistent flags shared by all commands.
type globalFlags struct {
	verbose   bool
	quiet     bool
	configDir string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "browser-schedule",
		Short: "Route URLs to a work or personal browser by schedule",
		Long: `browser-schedule picks the browser that should open a URL.

During configured work hours on work days, URLs open in the work browser;
otherwise they open in the personal browser. Override patterns pin URLs to
one side regardless of the time.

Config: ~/.config/browser-schedule/config.toml (and config.local.toml)`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate mutually exclusive flags
			if flags.verbose && flags.quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			l := log.New(cmd.ErrOrStderr(), flags.verbose, flags.quiet)
			ctx = log.WithLogger(ctx, l)
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())

			// Completion and help never touch the config
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				cmd.SetContext(ctx)
				return nil
			}

			dir, err := config.ResolveDir(flags.configDir)
			if err != nil {
				return err
			}

			loaded := &config.Loaded{Paths: config.PathsIn(dir)}
			if cmd.Annotations[configAnnotation] != configSkip {
				loaded, err = config.Load(dir)
				if err != nil {
					if cmd.Annotations[configAnnotation] != configLenient {
						return err
					}
					l.Warnf("%v (using fallback config)", err)
				}
				l.Debug("loaded config", "dir", dir, "base", loaded.BaseFound, "local", loaded.Local != nil)
			}

			cmd.SetContext(config.WithLoaded(ctx, loaded))
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show routing decisions and commands being executed")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress all log output")
	cmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "Config directory (default $"+config.DirEnv+" or ~/.config/browser-schedule)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.MarkPersistentFlagDirname("config-dir")

	// Version flag
	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	cmd.AddGroup(
		&cobra.Group{ID: GroupRouting, Title: "Routing Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Routing commands
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newWhichCmd())
	cmd.AddCommand(newOpenCmd())

	// Config commands
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// Execute builds the root command and runs it with a signal-aware context.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'browser-schedule -h' for help")
		cancel()
		os.Exit(1)
	}
}
