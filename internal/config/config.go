package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/browser-schedule/internal/schedule"
)

const (
	// DirEnv overrides the config directory.
	DirEnv = "BROWSER_SCHEDULE_CONFIG_DIR"

	// ConfigFileName is the base config file inside the config directory.
	ConfigFileName = "config.toml"

	// LocalConfigFileName is the overlay file inside the config directory.
	LocalConfigFileName = "config.local.toml"
)

// Paths locates the two config files.
type Paths struct {
	Dir   string
	Base  string
	Local string
}

// PathsIn returns the config file paths inside dir.
func PathsIn(dir string) Paths {
	return Paths{
		Dir:   dir,
		Base:  filepath.Join(dir, ConfigFileName),
		Local: filepath.Join(dir, LocalConfigFileName),
	}
}

// DefaultDir returns the config directory: $BROWSER_SCHEDULE_CONFIG_DIR if
// set, otherwise ~/.config/browser-schedule.
func DefaultDir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return expandPath(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "browser-schedule"), nil
}

// ResolveDir returns dir with a leading ~ expanded, or DefaultDir if dir is
// empty.
func ResolveDir(dir string) (string, error) {
	if dir == "" {
		return DefaultDir()
	}
	return expandPath(dir)
}

// expandPath expands a leading ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "~" || (len(path) >= 2 && path[:2] == "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// Loaded is the result of reading both config files.
type Loaded struct {
	Paths Paths

	// Base is the base config with defaults filled in.
	Base      schedule.Config
	BaseFound bool

	// Local is nil when there is no overlay file.
	Local *schedule.LocalConfig

	// Effective is Base merged with Local.
	Effective schedule.Config

	// Unknown lists keys that were present but not understood, as
	// "file: key" strings.
	Unknown []string
}

// Load reads and merges the config files in dir.
//
// A missing base file yields defaults. If the base file cannot be read or
// parsed, the returned Loaded holds defaults and the error is returned too.
// If only the overlay fails, the returned Loaded holds the base config
// unmerged along with the error, so callers can keep routing.
func Load(dir string) (*Loaded, error) {
	l := &Loaded{
		Paths:     PathsIn(dir),
		Base:      schedule.Default(),
		Effective: schedule.Default(),
	}

	base, found, unknown, err := loadBase(l.Paths.Base)
	if err != nil {
		return l, err
	}
	l.Base, l.BaseFound = base, found
	l.Effective = base
	l.Unknown = append(l.Unknown, unknown...)

	local, unknown, err := LoadLocal(l.Paths.Local)
	if err != nil {
		return l, err
	}
	l.Unknown = append(l.Unknown, unknown...)
	if local != nil {
		l.Local = local
		l.Effective = schedule.Merge(base, *local)
	}

	return l, nil
}

// loadBase reads the base config file. Groups the file omits keep their
// defaults.
func loadBase(path string) (schedule.Config, bool, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return schedule.Default(), false, nil, nil
		}
		return schedule.Default(), false, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	doc, unknown, err := decodeDocument(data)
	if err != nil {
		return schedule.Default(), false, nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Filling defaults is a merge onto the default config; the defaults
	// carry no overrides, so the lists come through unchanged.
	return schedule.Merge(schedule.Default(), doc), true, annotate(path, unknown), nil
}

func annotate(path string, keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = filepath.Base(path) + ": " + k
	}
	return out
}

// ErrConfigExists is returned by Init when the target file already exists.
var ErrConfigExists = errors.New("config file already exists")

// Init writes content to path, creating the parent directory.
// Without force it refuses to replace an existing file.
func Init(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the template for config.toml with the given
// browsers filled in.
func DefaultConfig(browsers schedule.Browsers) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(defaultConfigHeader)

	group := struct {
		Browsers browsersTable `toml:"browsers"`
	}{browsersTable{Work: browsers.Work, Personal: browsers.Personal}}
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(group); err != nil {
		return "", fmt.Errorf("encode browsers: %w", err)
	}

	buf.WriteString(defaultConfigBody)
	return buf.String(), nil
}

const defaultConfigHeader = `# browser-schedule configuration

# Applications used in each mode. Names are passed to "open -a" on macOS.
`

const defaultConfigBody = `
# URL substrings that pick a browser regardless of the schedule.
# Personal overrides are checked first. Matching is case-sensitive.
# [overrides]
# personal = ["reddit.com", "youtube.com"]
# work = ["mycompany.atlassian.net", "github.com/mycompany"]

# Work hours, 24-hour H:MM. Only the hour is used; the end is exclusive.
# If start is at or after end the window wraps past midnight (night shift),
# e.g. start = "22:00", end = "6:00".
[work_time]
start = "9:00"
end = "18:00"

# Inclusive range of work days: Sun, Mon, Tue, Wed, Thu, Fri, Sat.
# The range cannot wrap: start must not come after end.
[work_days]
start = "Mon"
end = "Fri"
`
