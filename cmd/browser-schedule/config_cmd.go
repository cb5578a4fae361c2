package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/browser-schedule/internal/config"
	"github.com/raphi011/browser-schedule/internal/log"
	"github.com/raphi011/browser-schedule/internal/output"
	"github.com/raphi011/browser-schedule/internal/schedule"
	"github.com/raphi011/browser-schedule/internal/ui/prompt"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage browser-schedule configuration.

Base config:  ~/.config/browser-schedule/config.toml
Local config: ~/.config/browser-schedule/config.local.toml (merged on top)

Set $` + config.DirEnv + ` or --config-dir to use another directory.`,
		Example: `  browser-schedule config init          # Create default config
  browser-schedule config init -i       # Pick browsers interactively
  browser-schedule config init --local  # Create local overlay
  browser-schedule config show          # Show effective config
  browser-schedule config check         # Validate config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigCheckCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force       bool
		stdout      bool
		local       bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create default config file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{configAnnotation: configSkip},
		Long: `Create default config file.

Without flags, creates config.toml in the config directory.
With --local, creates config.local.toml for machine-specific settings.
With -i, asks which browsers to use and confirms before overwriting.`,
		Example: `  browser-schedule config init           # Create base config
  browser-schedule config init --local   # Create local overlay
  browser-schedule config init -f        # Overwrite existing config
  browser-schedule config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			paths := config.FromContext(ctx).Paths
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if interactive && !prompt.Interactive() {
				return fmt.Errorf("--interactive needs a terminal")
			}

			path, content := paths.Local, config.DefaultLocalConfig()
			if !local {
				browsers := schedule.Default().Browsers
				if interactive {
					var ok bool
					var err error
					browsers, ok, err = promptBrowsers(browsers)
					if err != nil {
						return err
					}
					if !ok {
						l.Println("Cancelled")
						return nil
					}
				}
				var err error
				path = paths.Base
				if content, err = config.DefaultConfig(browsers); err != nil {
					return err
				}
			}

			if stdout {
				out.Print(content)
				return nil
			}

			err := config.Init(path, content, force)
			if errors.Is(err, config.ErrConfigExists) && interactive {
				res, perr := prompt.Confirm(fmt.Sprintf("%s already exists. Overwrite?", path))
				if perr != nil {
					return perr
				}
				if !res.Confirmed {
					l.Println("Cancelled")
					return nil
				}
				err = config.Init(path, content, true)
			}
			if errors.Is(err, config.ErrConfigExists) {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}
			if err != nil {
				return err
			}

			l.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create config.local.toml instead of config.toml")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose browsers and confirm overwrites interactively")
	cmd.MarkFlagsMutuallyExclusive("stdout", "force")

	return cmd
}

// knownBrowsers are offered by config init -i. Names are macOS application
// names as accepted by "open -a".
var knownBrowsers = []string{
	"Google Chrome",
	"Firefox",
	"Safari",
	"Zen",
	"Arc",
	"Brave Browser",
	"Microsoft Edge",
	"Chromium",
}

const otherBrowser = "Other..."

// promptBrowsers asks for the work and personal browser. ok is false if the
// user cancelled.
func promptBrowsers(defaults schedule.Browsers) (b schedule.Browsers, ok bool, err error) {
	if b.Work, ok, err = promptBrowser("Work browser", defaults.Work); !ok || err != nil {
		return b, ok, err
	}
	if b.Personal, ok, err = promptBrowser("Personal browser", defaults.Personal); !ok || err != nil {
		return b, ok, err
	}
	return b, true, nil
}

func promptBrowser(title, fallback string) (string, bool, error) {
	sel, err := prompt.Select(title, append(knownBrowsers, otherBrowser))
	if err != nil || sel.Cancelled {
		return "", false, err
	}
	if sel.Value != otherBrowser {
		return sel.Value, true, nil
	}

	res, err := prompt.TextInput(title+" (application name)", fallback)
	if err != nil || res.Cancelled {
		return "", false, err
	}
	return res.Value, true, nil
}

func newConfigShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Shows config.toml merged with config.local.toml. In text format, values set
by the local config are marked (local). The json, yaml and toml formats print
the merged result using the config file keys.`,
		Example: `  browser-schedule config show              # Show merged config
  browser-schedule config show --format json  # Output as JSON
  browser-schedule config show --format toml  # Merged config as a config file`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ValidateFormat(format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loaded := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if format != "text" {
				data, err := config.Render(loaded.Effective, format)
				if err != nil {
					return err
				}
				out.Print(string(data))
				return nil
			}

			printConfig(out, loaded)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: "+strings.Join(config.ValidFormats, ", "))
	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(config.ValidFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// printConfig writes the effective config as key: value lines.
func printConfig(out *output.Printer, loaded *config.Loaded) {
	cfg := loaded.Effective
	local := loaded.Local
	if local == nil {
		local = &schedule.LocalConfig{}
	}

	base := loaded.Paths.Base
	if !loaded.BaseFound {
		base += " (not found)"
	}
	out.Printf("Base config:  %s\n", base)
	if loaded.Local != nil {
		out.Printf("Local config: %s%s\n", loaded.Paths.Local, localState(*loaded.Local))
	} else {
		out.Printf("Local config: (none)\n")
	}
	out.Println()

	// Helper to annotate source
	source := func(isLocal bool) string {
		if isLocal {
			return " (local)"
		}
		return ""
	}

	out.Printf("browsers.work: %s%s\n", cfg.Browsers.Work, source(local.Browsers != nil))
	out.Printf("browsers.personal: %s%s\n", cfg.Browsers.Personal, source(local.Browsers != nil))
	out.Printf("work_time.start: %s%s\n", cfg.WorkTime.Start, source(local.WorkTime != nil))
	out.Printf("work_time.end: %s%s\n", cfg.WorkTime.End, source(local.WorkTime != nil))
	out.Printf("work_days.start: %s%s\n", cfg.WorkDays.Start, source(local.WorkDays != nil))
	out.Printf("work_days.end: %s%s\n", cfg.WorkDays.End, source(local.WorkDays != nil))
	if len(cfg.Overrides.Personal) > 0 {
		out.Printf("overrides.personal: %v%s\n", cfg.Overrides.Personal, source(local.Overrides != nil && len(local.Overrides.Personal) > 0))
	}
	if len(cfg.Overrides.Work) > 0 {
		out.Printf("overrides.work: %v%s\n", cfg.Overrides.Work, source(local.Overrides != nil && len(local.Overrides.Work) > 0))
	}
}

func newConfigCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate configuration",
		Args:  cobra.NoArgs,
		Long: `Validate the effective configuration.

Exits non-zero if the config cannot be parsed or fails validation, in which
case URLs would always open in the personal browser. Also warns about keys
that are ignored and settings that are valid but probably unintended.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loaded := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			for _, key := range loaded.Unknown {
				l.Warnf("unknown key %s is ignored", key)
			}
			for _, w := range config.Warnings(loaded.Effective) {
				l.Warnf("%s", w)
			}

			v := schedule.Validate(loaded.Effective)
			if !v.Valid {
				for _, e := range v.Errors {
					out.Println("error: " + e)
				}
				for _, h := range config.ValidationHints(loaded.Effective) {
					out.Println("hint: " + h)
				}
				return fmt.Errorf("config is invalid (%d errors); URLs open in the personal browser until fixed", len(v.Errors))
			}

			checked := []string{loaded.Paths.Base}
			if !loaded.BaseFound {
				checked[0] += " (not found, using defaults)"
			}
			if loaded.Local != nil {
				checked = append(checked, loaded.Paths.Local)
			}
			out.Printf("Config is valid: %s\n", strings.Join(checked, ", "))
			return nil
		},
	}

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "path",
		Short:       "Print config file paths",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{configAnnotation: configSkip},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			paths := config.FromContext(ctx).Paths
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			for _, path := range []string{paths.Base, paths.Local} {
				out.Println(path)
				if _, err := os.Stat(path); err != nil {
					l.Debug("config file missing", "path", path)
				}
			}
			return nil
		},
	}

	return cmd
}
