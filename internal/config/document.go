package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/browser-schedule/internal/schedule"
)

// browsersTable is the [browsers] group on disk.
type browsersTable struct {
	Work     string `toml:"work" json:"work" yaml:"work"`
	Personal string `toml:"personal" json:"personal" yaml:"personal"`
}

// overridesTable is the [overrides] group on disk.
type overridesTable struct {
	Personal []string `toml:"personal,omitempty" json:"personal,omitempty" yaml:"personal,omitempty"`
	Work     []string `toml:"work,omitempty" json:"work,omitempty" yaml:"work,omitempty"`
}

// windowTable is the [work_time] or [work_days] group on disk.
type windowTable struct {
	Start string `toml:"start" json:"start" yaml:"start"`
	End   string `toml:"end" json:"end" yaml:"end"`
}

// document is one configuration file. Nil groups were absent.
type document struct {
	Browsers  *browsersTable  `toml:"browsers,omitempty" json:"browsers,omitempty" yaml:"browsers,omitempty"`
	Overrides *overridesTable `toml:"overrides,omitempty" json:"overrides,omitempty" yaml:"overrides,omitempty"`
	URLs      *overridesTable `toml:"urls,omitempty" json:"-" yaml:"-"` // legacy name of overrides
	WorkTime  *windowTable    `toml:"work_time,omitempty" json:"work_time,omitempty" yaml:"work_time,omitempty"`
	WorkDays  *windowTable    `toml:"work_days,omitempty" json:"work_days,omitempty" yaml:"work_days,omitempty"`
}

// decodeDocument parses TOML data into the sparse overlay shape.
// Unknown keys are returned rather than rejected.
func decodeDocument(data []byte) (schedule.LocalConfig, []string, error) {
	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return schedule.LocalConfig{}, nil, err
	}

	for _, group := range []struct {
		name    string
		present bool
		keys    []string
	}{
		{"browsers", doc.Browsers != nil, []string{"work", "personal"}},
		{"work_time", doc.WorkTime != nil, []string{"start", "end"}},
		{"work_days", doc.WorkDays != nil, []string{"start", "end"}},
	} {
		if !group.present {
			continue
		}
		for _, key := range group.keys {
			if !md.IsDefined(group.name, key) {
				return schedule.LocalConfig{}, nil, fmt.Errorf("%s.%s is required when [%s] is present", group.name, key, group.name)
			}
		}
	}

	if doc.Overrides != nil && doc.URLs != nil {
		return schedule.LocalConfig{}, nil, fmt.Errorf("[urls] is an alias of [overrides]; define only one")
	}
	if doc.Overrides == nil {
		doc.Overrides = doc.URLs
	}

	return doc.toLocal(), leafKeys(md.Undecoded()), nil
}

// leafKeys drops table keys whose children are also listed, so an unknown
// [log] table with enabled = true is reported once as "log.enabled".
func leafKeys(keys []toml.Key) []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	var leaves []string
	for _, name := range names {
		parent := false
		for _, other := range names {
			if strings.HasPrefix(other, name+".") {
				parent = true
				break
			}
		}
		if !parent {
			leaves = append(leaves, name)
		}
	}
	return leaves
}

func (d document) toLocal() schedule.LocalConfig {
	var local schedule.LocalConfig
	if d.Browsers != nil {
		local.Browsers = &schedule.Browsers{Work: d.Browsers.Work, Personal: d.Browsers.Personal}
	}
	if d.Overrides != nil {
		local.Overrides = &schedule.Overrides{Personal: d.Overrides.Personal, Work: d.Overrides.Work}
	}
	if d.WorkTime != nil {
		local.WorkTime = &schedule.WorkTime{Start: d.WorkTime.Start, End: d.WorkTime.End}
	}
	if d.WorkDays != nil {
		local.WorkDays = &schedule.WorkDays{Start: d.WorkDays.Start, End: d.WorkDays.End}
	}
	return local
}

// documentFor returns the on-disk form of a complete config.
// Overrides are omitted when both lists are empty.
func documentFor(cfg schedule.Config) document {
	doc := document{
		Browsers: &browsersTable{Work: cfg.Browsers.Work, Personal: cfg.Browsers.Personal},
		WorkTime: &windowTable{Start: cfg.WorkTime.Start, End: cfg.WorkTime.End},
		WorkDays: &windowTable{Start: cfg.WorkDays.Start, End: cfg.WorkDays.End},
	}
	if !cfg.Overrides.IsEmpty() {
		doc.Overrides = &overridesTable{Personal: cfg.Overrides.Personal, Work: cfg.Overrides.Work}
	}
	return doc
}
