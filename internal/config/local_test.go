package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadLocal_NoFile(t *testing.T) {
	t.Parallel()

	local, unknown, err := LoadLocal(filepath.Join(t.TempDir(), LocalConfigFileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local != nil || unknown != nil {
		t.Fatalf("expected nil, got %+v %q", local, unknown)
	}
}

func TestLoadLocal_EmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), LocalConfigFileName)
	writeFile(t, path, "")

	local, _, err := LoadLocal(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local == nil {
		t.Fatal("expected non-nil local config for empty file")
	}
	if !local.IsEmpty() {
		t.Errorf("local = %+v, want empty", local)
	}
}

func TestLoadLocal_AllFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), LocalConfigFileName)
	writeFile(t, path, `
[browsers]
work = "Firefox"
personal = "Safari"

[overrides]
work = ["corp.example"]

[work_time]
start = "8:00"
end = "16:00"

[work_days]
start = "Sun"
end = "Thu"
`)

	local, _, err := LoadLocal(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if local.Browsers == nil || local.Browsers.Work != "Firefox" || local.Browsers.Personal != "Safari" {
		t.Errorf("browsers = %+v", local.Browsers)
	}
	if local.Overrides == nil || local.Overrides.Personal != nil || !reflect.DeepEqual(local.Overrides.Work, []string{"corp.example"}) {
		t.Errorf("overrides = %+v", local.Overrides)
	}
	if local.WorkTime == nil || local.WorkTime.Start != "8:00" || local.WorkTime.End != "16:00" {
		t.Errorf("work_time = %+v", local.WorkTime)
	}
	if local.WorkDays == nil || local.WorkDays.Start != "Sun" || local.WorkDays.End != "Thu" {
		t.Errorf("work_days = %+v", local.WorkDays)
	}
}

func TestLoadLocal_PartialGroupRejected(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), LocalConfigFileName)
	writeFile(t, path, "[work_days]\nend = \"Sat\"\n")

	_, _, err := LoadLocal(path)
	if err == nil {
		t.Fatal("expected error for partial [work_days]")
	}
	if !strings.Contains(err.Error(), "work_days.start is required") {
		t.Errorf("error = %q", err)
	}
}

func TestLoadLocal_UnknownKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), LocalConfigFileName)
	writeFile(t, path, "[log]\nenabled = false\n[browsers]\nwork = \"a\"\npersonal = \"b\"\ncolor = \"red\"\n")

	_, unknown, err := LoadLocal(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"config.local.toml: log.enabled", "config.local.toml: browsers.color"}
	if !reflect.DeepEqual(unknown, want) {
		t.Errorf("unknown = %q, want %q", unknown, want)
	}
}
