package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Report.TopN != 10 || cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordfreq.yaml")
	data := "report:\n  top_n: 3\n  alphabetical: true\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Report.TopN != 3 || !cfg.Report.Alphabetical {
		t.Errorf("report = %+v", cfg.Report)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvTopN, "25")
	t.Setenv(EnvLogFormat, "json")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Report.TopN != 25 || cfg.Log.Format != "json" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		data string
		env  string
	}{
		{"negative top_n", "report:\n  top_n: -1\n", ""},
		{"bad format", "log:\n  format: xml\n", ""},
		{"malformed yaml", "report: [\n", ""},
		{"bad env number", "", "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv(EnvTopN, tt.env)
			}
			path := filepath.Join(t.TempDir(), "wordfreq.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wordfreq.yaml")
	want := Default()
	want.Report.TopN = 7
	want.Report.Alphabetical = true
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadTopN(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{"absent uses default", "report:\n  alphabetical: true\n", 10},
		{"explicit zero kept", "report:\n  top_n: 0\n", 0},
		{"explicit value", "report:\n  top_n: 4\n", 4},
		{"empty file", "", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "wordfreq.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Report.TopN != tt.want {
				t.Errorf("TopN = %d, want %d", cfg.Report.TopN, tt.want)
			}
		})
	}
}
