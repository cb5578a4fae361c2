package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/raphi011/browser-schedule/internal/schedule"
)

// LoadLocal reads the overlay config at path.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on read or parse failure.
func LoadLocal(path string) (*schedule.LocalConfig, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read local config %s: %w", path, err)
	}

	local, unknown, err := decodeDocument(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse local config %s: %w", path, err)
	}

	return &local, annotate(path, unknown), nil
}

// defaultLocalConfig is the template for config init --local
const defaultLocalConfig = `# browser-schedule local config
# Merged on top of config.toml. Keep machine-specific settings here.
#
# Any of [browsers], [work_time] or [work_days] replaces the whole group
# from config.toml. Override lists are appended to the ones in config.toml.

# [browsers]
# work = "Firefox"
# personal = "Safari"

# [overrides]
# personal = ["news.ycombinator.com"]
# work = ["internal.example.com"]

# [work_time]
# start = "22:00"
# end = "6:00"

# [work_days]
# start = "Sun"
# end = "Thu"
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
