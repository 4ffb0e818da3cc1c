package platform_test

import (
	"strings"
	"testing"

	"go-space-invaders/internal/platform"
	"go-space-invaders/internal/platform/platformtest"
)

func TestLoadLibraryResolvesEverything(t *testing.T) {
	lib, err := platform.LoadLibrary(&platformtest.Loader{})
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	if lib.Ship == nil || lib.Bullet == nil || lib.Enemy == nil {
		t.Error("textures not resolved")
	}
	if lib.TitleFont == nil || lib.HUDFont == nil {
		t.Error("fonts not resolved")
	}
	if lib.Laser == nil || lib.Explosion == nil || lib.Hit == nil {
		t.Error("sounds not resolved")
	}
	if lib.MenuTrack == nil || lib.GameTrack == nil {
		t.Error("tracks not resolved")
	}
}

func TestLoadLibraryWrapsFailure(t *testing.T) {
	_, err := platform.LoadLibrary(&platformtest.Loader{Missing: map[string]bool{"explosion": true}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `"explosion"`) {
		t.Errorf("error should name the resource, got %v", err)
	}
}

func TestKeyString(t *testing.T) {
	if platform.KeyEscape.String() != "Escape" {
		t.Errorf("KeyEscape.String() = %q", platform.KeyEscape.String())
	}
	if platform.Key(99).String() != "Unknown" {
		t.Errorf("out of range key should be Unknown")
	}
}
