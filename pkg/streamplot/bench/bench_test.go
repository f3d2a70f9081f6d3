package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	expected := Config{MaxStreams: 19, Length: 100, Repeats: 1}
	if diff := cmp.Diff(expected, DefaultConfig()); diff != "" {
		t.Errorf("DefaultConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	if err := os.WriteFile(path, []byte("max_streams: 8\nrepeats: 3\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	expected := Config{MaxStreams: 8, Length: 100, Repeats: 3}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("LoadConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "max_streams: [1,\n"},
		{"type", "max_streams: many\n"},
		{"range", "max_streams: 0\n"},
		{"repeats", "repeats: -1\n"},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "bench.yaml")
		if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing: expected error")
	}
}

func TestMeasure(t *testing.T) {
	cfg := Config{MaxStreams: 6, Length: 200, Repeats: 2}

	ds, err := Measure(cfg)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	if len(ds) != cfg.MaxStreams {
		t.Fatalf("Expected %d samples, got %d", cfg.MaxStreams, len(ds))
	}
	for i, s := range ds {
		if s.X != float64(i+1) {
			t.Errorf("Sample %d: expected X=%d, got %v", i, i+1, s.X)
		}
		if s.Y < 0 {
			t.Errorf("Sample %d: negative time %v", i, s.Y)
		}
	}
}

func TestMeasureInvalidConfig(t *testing.T) {
	if _, err := Measure(Config{MaxStreams: 0, Length: 10, Repeats: 1}); err == nil {
		t.Error("Expected error for zero streams")
	}
}
