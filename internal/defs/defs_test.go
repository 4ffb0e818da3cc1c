package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWaveSettingsProgression(t *testing.T) {
	s := DefaultWaveSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	cases := []struct {
		wave       int
		rows, cols int
		speed      float64
	}{
		{1, 3, 6, 40},
		{2, 4, 7, 55},
		{4, 6, 9, 85},
		{9, 6, 10, 160},
	}
	for _, tc := range cases {
		if got := s.Rows(tc.wave); got != tc.rows {
			t.Errorf("wave %d: rows = %d, want %d", tc.wave, got, tc.rows)
		}
		if got := s.Cols(tc.wave); got != tc.cols {
			t.Errorf("wave %d: cols = %d, want %d", tc.wave, got, tc.cols)
		}
		if got := s.Speed(tc.wave); got != tc.speed {
			t.Errorf("wave %d: speed = %v, want %v", tc.wave, got, tc.speed)
		}
	}
}

func TestLoadWaveSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.json")
	if err := os.WriteFile(path, []byte(`{"waves_to_beat": 3, "cooldown": 0.5}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := LoadWaveSettings(path)
	if err != nil {
		t.Fatalf("LoadWaveSettings: %v", err)
	}
	if s.WavesToBeat != 3 || s.Cooldown != 0.5 {
		t.Errorf("overrides not applied: %+v", s)
	}
	if s.BaseSpeed != DefaultWaveSettings().BaseSpeed {
		t.Errorf("base speed should keep default, got %v", s.BaseSpeed)
	}
}

func TestLoadWaveSettingsRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.json")
	if err := os.WriteFile(path, []byte(`{"waves_to_beat": 0}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadWaveSettings(path); err == nil {
		t.Fatal("expected validation error for zero waves")
	}
}

func TestLoadWaveSettingsMissingFile(t *testing.T) {
	if _, err := LoadWaveSettings(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
