// Package config loads browser-schedule configuration.
//
// Configuration is read from two TOML files in the config directory
// (~/.config/browser-schedule unless BROWSER_SCHEDULE_CONFIG_DIR is set):
//
//   - config.toml: the base configuration. Missing groups use defaults.
//   - config.local.toml: an optional overlay, merged on top of the base with
//     [schedule.Merge]. Useful for machine-specific overrides kept out of a
//     dotfiles repo.
//
// # File Format
//
//	[browsers]
//	work = "Google Chrome"
//	personal = "Zen"
//
//	[overrides]
//	personal = ["reddit.com", "youtube.com"]
//	work = ["mycompany.atlassian.net"]
//
//	[work_time]
//	start = "9:00"
//	end = "18:00"
//
//	[work_days]
//	start = "Mon"
//	end = "Fri"
//
// A group that is present must define all of its keys, except [overrides]
// where each list is optional. The older [urls] table is read as an alias of
// [overrides]; a document may not define both.
//
// # Errors
//
// A missing base file is not an error. Unparsable files and incomplete groups
// are. Structural checks of times and day names are left to
// [schedule.Validate] so that all problems can be reported together.
package config
