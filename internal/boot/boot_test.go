package boot

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
	"go-space-invaders/internal/platform/platformtest"
	"go-space-invaders/internal/state"
)

func parse(t *testing.T, args ...string) *Options {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return o
}

func TestDefaults(t *testing.T) {
	o := parse(t)
	if !o.ShowMenu || o.Mute || o.WavesPath != "" || o.AssetsDir != "assets" {
		t.Errorf("defaults = %+v", *o)
	}
}

func TestSetupStartsInMenu(t *testing.T) {
	audio := &platformtest.Audio{}
	sm, err := Setup(parse(t), &platformtest.Loader{}, audio)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sm.Current().(*state.MenuState); !ok {
		t.Fatalf("state = %T, want *MenuState", sm.Current())
	}
	if !audio.Playing {
		t.Error("menu music not started")
	}
}

func TestSetupStraightIntoGame(t *testing.T) {
	sm, err := Setup(parse(t, "-menu=false", "-mute"), &platformtest.Loader{}, &platformtest.Audio{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sm.Current().(*state.GameState); !ok {
		t.Fatalf("state = %T, want *GameState", sm.Current())
	}
}

func TestSetupDebugFlag(t *testing.T) {
	defer func() { config.Debug = false }()
	if _, err := Setup(parse(t, "-debug"), &platformtest.Loader{}, platform.Silent{}); err != nil {
		t.Fatal(err)
	}
	if !config.Debug {
		t.Error("-debug not applied")
	}
}

func TestSetupWaveOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.json")
	if err := os.WriteFile(path, []byte(`{"waves_to_beat": 2}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Setup(parse(t, "-waves", path), &platformtest.Loader{}, platform.Silent{}); err != nil {
		t.Fatal(err)
	}

	if _, err := Setup(parse(t, "-waves", filepath.Join(t.TempDir(), "missing.json")), &platformtest.Loader{}, platform.Silent{}); err == nil {
		t.Error("expected an error for a missing waves file")
	}
}

func TestSetupMissingAsset(t *testing.T) {
	loader := &platformtest.Loader{Missing: map[string]bool{config.SoundHit: true}}
	if _, err := Setup(parse(t), loader, platform.Silent{}); err == nil {
		t.Fatal("expected an error for a missing sound")
	}
}
