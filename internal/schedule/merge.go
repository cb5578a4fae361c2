package schedule

// Merge layers a local overlay on top of a base config and returns the
// effective config. Neither argument is modified.
//
// Browsers, WorkTime and WorkDays are replaced as whole groups when the
// overlay sets them. Override lists are concatenated, base patterns first;
// duplicates are kept and an empty result is stored as nil.
func Merge(base Config, overlay LocalConfig) Config {
	merged := Config{
		Browsers: base.Browsers,
		WorkTime: base.WorkTime,
		WorkDays: base.WorkDays,
	}

	if overlay.Browsers != nil {
		merged.Browsers = *overlay.Browsers
	}
	if overlay.WorkTime != nil {
		merged.WorkTime = *overlay.WorkTime
	}
	if overlay.WorkDays != nil {
		merged.WorkDays = *overlay.WorkDays
	}

	var local Overrides
	if overlay.Overrides != nil {
		local = *overlay.Overrides
	}
	merged.Overrides = Overrides{
		Personal: concat(base.Overrides.Personal, local.Personal),
		Work:     concat(base.Overrides.Work, local.Work),
	}

	return merged
}

// concat returns a new slice holding base followed by extra, or nil when
// both are empty.
func concat(base, extra []string) []string {
	if len(base)+len(extra) == 0 {
		return nil
	}
	result := make([]string, 0, len(base)+len(extra))
	result = append(result, base...)
	return append(result, extra...)
}
