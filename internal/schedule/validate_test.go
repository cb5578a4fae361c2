package schedule

import (
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		workTime WorkTime
		workDays WorkDays
		want     []string
	}{
		{
			name:     "defaults",
			workTime: WorkTime{Start: "9:00", End: "18:00"},
			workDays: WorkDays{Start: "Mon", End: "Fri"},
		},
		{
			name:     "night shift is valid",
			workTime: WorkTime{Start: "18:00", End: "09:00"},
			workDays: WorkDays{Start: "Mon", End: "Fri"},
		},
		{
			name:     "single day",
			workTime: WorkTime{Start: "9:00", End: "18:00"},
			workDays: WorkDays{Start: "Wed", End: "Wed"},
		},
		{
			name:     "bad start time",
			workTime: WorkTime{Start: "25:00", End: "18:00"},
			workDays: WorkDays{Start: "Mon", End: "Fri"},
			want:     []string{"Invalid work start time: 25:00 (use HH:MM format)"},
		},
		{
			name:     "bad end time",
			workTime: WorkTime{Start: "9:00", End: "6pm"},
			workDays: WorkDays{Start: "Mon", End: "Fri"},
			want:     []string{"Invalid work end time: 6pm (use HH:MM format)"},
		},
		{
			name:     "bad days skip range check",
			workTime: WorkTime{Start: "9:00", End: "18:00"},
			workDays: WorkDays{Start: "Monday", End: "Fri"},
			want:     []string{"Invalid work start day: Monday (use Sun,Mon,Tue,Wed,Thu,Fri,Sat)"},
		},
		{
			name:     "inverted day range",
			workTime: WorkTime{Start: "9:00", End: "18:00"},
			workDays: WorkDays{Start: "Fri", End: "Mon"},
			want:     []string{"Work day range invalid: Fri is after Mon"},
		},
		{
			name:     "everything wrong reports all in order",
			workTime: WorkTime{Start: "", End: "9.00"},
			workDays: WorkDays{Start: "Foo", End: "Bar"},
			want: []string{
				"Invalid work start time:  (use HH:MM format)",
				"Invalid work end time: 9.00 (use HH:MM format)",
				"Invalid work start day: Foo (use Sun,Mon,Tue,Wed,Thu,Fri,Sat)",
				"Invalid work end day: Bar (use Sun,Mon,Tue,Wed,Thu,Fri,Sat)",
			},
		},
		{
			name:     "time errors and inverted range together",
			workTime: WorkTime{Start: "9:00", End: "99:00"},
			workDays: WorkDays{Start: "Sat", End: "Sun"},
			want: []string{
				"Invalid work end time: 99:00 (use HH:MM format)",
				"Work day range invalid: Sat is after Sun",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			cfg.WorkTime = tt.workTime
			cfg.WorkDays = tt.workDays

			got := Validate(cfg)

			if got.Valid != (len(tt.want) == 0) {
				t.Errorf("Valid = %v, want %v", got.Valid, len(tt.want) == 0)
			}
			if !reflect.DeepEqual(got.Errors, tt.want) {
				t.Errorf("Errors = %q, want %q", got.Errors, tt.want)
			}
		})
	}
}

func TestWorkTime_IsNightShift(t *testing.T) {
	t.Parallel()

	tests := []struct {
		start, end string
		want       bool
	}{
		{"9:00", "18:00", false},
		{"18:00", "9:00", true},
		{"9:00", "9:30", true}, // same hour counts as night shift
		{"bad", "9:00", false},
	}
	for _, tt := range tests {
		w := WorkTime{Start: tt.start, End: tt.end}
		if got := w.IsNightShift(); got != tt.want {
			t.Errorf("WorkTime{%q, %q}.IsNightShift() = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}
