package schedule

import (
	"testing"
	"time"
)

// at returns a moment in the week of Sunday 2026-10-18.
func at(day Weekday, hour, minute int) time.Time {
	return time.Date(2026, 10, 17+int(day), hour, minute, 0, 0, time.UTC)
}

func configWith(start, end, dayStart, dayEnd string) Config {
	cfg := Default()
	cfg.WorkTime = WorkTime{Start: start, End: end}
	cfg.WorkDays = WorkDays{Start: dayStart, End: dayEnd}
	return cfg
}

func TestIsWorkTime_DayShift(t *testing.T) {
	t.Parallel()

	cfg := configWith("9:00", "18:00", "Mon", "Fri")

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"monday 10:00", at(Monday, 10, 0), true},
		{"monday 08:00", at(Monday, 8, 0), false},
		{"monday 08:59", at(Monday, 8, 59), false},
		{"monday 09:00", at(Monday, 9, 0), true},
		{"monday 17:59", at(Monday, 17, 59), true},
		{"monday 18:00 end is exclusive", at(Monday, 18, 0), false},
		{"monday 19:00", at(Monday, 19, 0), false},
		{"friday 10:00", at(Friday, 10, 0), true},
		{"saturday 10:00", at(Saturday, 10, 0), false},
		{"sunday 10:00", at(Sunday, 10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsWorkTime(cfg, tt.at); got != tt.want {
				t.Errorf("IsWorkTime(%s) = %v, want %v", tt.at.Format("Mon 15:04"), got, tt.want)
			}
		})
	}
}

func TestIsWorkTime_NightShift(t *testing.T) {
	t.Parallel()

	cfg := configWith("18:00", "09:00", "Mon", "Fri")

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"monday 20:00", at(Monday, 20, 0), true},
		{"monday 18:00", at(Monday, 18, 0), true},
		{"tuesday 08:00 wraps", at(Tuesday, 8, 0), true},
		{"tuesday 09:00 end is exclusive", at(Tuesday, 9, 0), false},
		{"monday 12:00", at(Monday, 12, 0), false},
		{"monday 00:30", at(Monday, 0, 30), true},
		// Each calendar day is checked against its own weekday.
		{"saturday 02:00", at(Saturday, 2, 0), false},
		{"sunday 20:00", at(Sunday, 20, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsWorkTime(cfg, tt.at); got != tt.want {
				t.Errorf("IsWorkTime(%s) = %v, want %v", tt.at.Format("Mon 15:04"), got, tt.want)
			}
		})
	}
}

func TestIsWorkTime_StartEqualsEndMatchesEveryHour(t *testing.T) {
	t.Parallel()

	cfg := configWith("9:00", "9:00", "Mon", "Fri")

	for hour := 0; hour < 24; hour++ {
		if !IsWorkTime(cfg, at(Wednesday, hour, 0)) {
			t.Errorf("IsWorkTime(Wed %02d:00) = false, want true", hour)
		}
	}
	if IsWorkTime(cfg, at(Saturday, 12, 0)) {
		t.Error("IsWorkTime(Sat 12:00) = true, want false: days still apply")
	}
}

func TestIsWorkTime_MinutesIgnored(t *testing.T) {
	t.Parallel()

	// 9:45 start is treated as 9:00; 17:15 end as 17:00.
	cfg := configWith("9:45", "17:15", "Mon", "Fri")

	if !IsWorkTime(cfg, at(Monday, 9, 0)) {
		t.Error("IsWorkTime(Mon 09:00) = false, want true")
	}
	if IsWorkTime(cfg, at(Monday, 17, 10)) {
		t.Error("IsWorkTime(Mon 17:10) = true, want false")
	}
}

func TestIsWorkTime_InvalidConfigFailsClosed(t *testing.T) {
	t.Parallel()

	configs := []Config{
		configWith("nine", "18:00", "Mon", "Fri"),
		configWith("9:00", "18:60", "Mon", "Fri"),
		configWith("9:00", "18:00", "Mon", "Funday"),
		configWith("9:00", "18:00", "Fri", "Mon"),
		{},
	}

	for _, cfg := range configs {
		for day := Sunday; day <= Saturday; day++ {
			for hour := 0; hour < 24; hour++ {
				if IsWorkTime(cfg, at(day, hour, 0)) {
					t.Fatalf("IsWorkTime(%+v, %v %02d:00) = true for invalid config", cfg.WorkTime, day, hour)
				}
			}
		}
	}
}

func TestIsWorkTime_UsesLocationOfTimestamp(t *testing.T) {
	t.Parallel()

	cfg := configWith("9:00", "18:00", "Mon", "Fri")
	tokyo := time.FixedZone("JST", 9*60*60)

	// Monday 02:00 UTC is Monday 11:00 in Tokyo.
	utc := at(Monday, 2, 0)
	if IsWorkTime(cfg, utc) {
		t.Error("IsWorkTime(Mon 02:00 UTC) = true, want false")
	}
	if !IsWorkTime(cfg, utc.In(tokyo)) {
		t.Error("IsWorkTime(Mon 11:00 JST) = false, want true")
	}
}

func TestCheckShift(t *testing.T) {
	t.Parallel()

	check := CheckShift(configWith("22:00", "6:00", "Sun", "Thu"), at(Thursday, 23, 0))

	if !check.Valid || !check.NightShift {
		t.Fatalf("check = %+v, want valid night shift", check)
	}
	if check.Weekday != Thursday || check.Hour != 23 {
		t.Errorf("weekday/hour = %v/%d, want Thu/23", check.Weekday, check.Hour)
	}
	if check.StartDay != Sunday || check.EndDay != Thursday {
		t.Errorf("days = %v-%v, want Sun-Thu", check.StartDay, check.EndDay)
	}
	if check.StartHour != 22 || check.EndHour != 6 {
		t.Errorf("hours = %d-%d, want 22-6", check.StartHour, check.EndHour)
	}
	if !check.WorkDay || !check.WorkHour || !check.IsWork() {
		t.Errorf("check = %+v, want work", check)
	}
	if check.ShiftType() != "night" {
		t.Errorf("ShiftType() = %q, want night", check.ShiftType())
	}

	invalid := CheckShift(configWith("x", "6:00", "Sun", "Thu"), at(Thursday, 23, 0))
	if invalid.Valid || invalid.IsWork() || len(invalid.Errors) != 1 {
		t.Errorf("invalid check = %+v, want one error and not work", invalid)
	}
}
