package schedule

import (
	"fmt"
	"testing"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{"9:00", 9, 0, false},
		{"09:00", 9, 0, false},
		{"0:00", 0, 0, false},
		{"00:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{"18:30", 18, 30, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"9.00", 0, 0, true},
		{"9-00", 0, 0, true},
		{"900", 0, 0, true},
		{"", 0, 0, true},
		{":", 0, 0, true},
		{"9:", 0, 0, true},
		{":30", 0, 0, true},
		{"9:0", 0, 0, true},
		{"9:5", 0, 0, true},
		{"9:00:", 0, 0, true},
		{"009:00", 0, 0, true},
		{"9:00:00", 0, 0, true},
		{"-1:00", 0, 0, true},
		{"+9:00", 0, 0, true},
		{" 9:00", 0, 0, true},
		{"ab:cd", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			hour, minute, err := ParseTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if hour != tt.wantHour || minute != tt.wantMinute {
				t.Errorf("ParseTime(%q) = %d:%d, want %d:%d", tt.input, hour, minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestParseHour_AllValidTimes(t *testing.T) {
	t.Parallel()

	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			for _, s := range []string{
				fmt.Sprintf("%d:%02d", h, m),
				fmt.Sprintf("%02d:%02d", h, m),
			} {
				got, ok := ParseHour(s)
				if !ok || got != h {
					t.Fatalf("ParseHour(%q) = %d, %v; want %d, true", s, got, ok, h)
				}
			}
		}
	}
}
