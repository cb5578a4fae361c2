package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/raphi011/browser-schedule/internal/schedule"
)

// Render encodes cfg in the on-disk key layout as json, yaml or toml.
// The "text" format is rendered by the CLI and is not handled here.
func Render(cfg schedule.Config, format string) ([]byte, error) {
	doc := documentFor(cfg)

	var buf bytes.Buffer
	switch format {
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
	default:
		if err := ValidateFormat(format); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("format %q is not an encoding", format)
	}
	return buf.Bytes(), nil
}
