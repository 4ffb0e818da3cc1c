package ui

import (
	"slices"
	"testing"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform/platformtest"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "I"},
		{4, "IV"},
		{5, "V"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		if got := toRoman(tt.in); got != tt.want {
			t.Errorf("toRoman(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMenuWrapsAround(t *testing.T) {
	m := NewMenu("SPACE INVADERS", "Start Game", "Quit")
	if m.SelectedItem() != "Start Game" {
		t.Fatalf("initial = %q", m.SelectedItem())
	}
	m.MoveDown()
	if m.SelectedItem() != "Quit" {
		t.Fatalf("after down = %q", m.SelectedItem())
	}
	m.MoveDown()
	if m.SelectedItem() != "Start Game" {
		t.Fatalf("down from last = %q", m.SelectedItem())
	}
	m.MoveUp()
	if m.SelectedItem() != "Quit" {
		t.Fatalf("up from first = %q", m.SelectedItem())
	}
}

func TestEmptyMenu(t *testing.T) {
	m := NewMenu("x")
	m.MoveDown()
	m.MoveUp()
	if m.Selected != 0 || m.SelectedItem() != "" {
		t.Errorf("empty menu: selected %d %q", m.Selected, m.SelectedItem())
	}
}

func TestMenuDrawCentresItems(t *testing.T) {
	m := NewMenu("TITLE", "Start Game", "Quit")
	r := &platformtest.Renderer{}
	font := &platformtest.Font{Advance: 10, Height: 20}
	m.Draw(r, font, font)

	texts := r.Texts()
	want := []string{"TITLE", "> Start Game <", "Quit"}
	if !slices.Equal(texts, want) {
		t.Fatalf("texts = %q, want %q", texts, want)
	}
	// "Quit": 4 символа по 10 пикселей
	last := r.Calls[len(r.Calls)-1]
	if last.Pos.X != (config.ScreenWidth-40)/2 {
		t.Errorf("Quit at x=%v, want centred", last.Pos.X)
	}
}

func TestHealthCells(t *testing.T) {
	tests := []struct {
		health, total, full int
	}{
		{100, 10, 10},
		{95, 10, 10},
		{90, 10, 9},
		{1, 10, 1},
		{0, 10, 0},
	}
	for _, tt := range tests {
		total, full := Cells(tt.health, 100, 10)
		if total != tt.total || full != tt.full {
			t.Errorf("Cells(%d) = %d/%d, want %d/%d", tt.health, full, total, tt.full, tt.total)
		}
	}
	if total, full := Cells(50, 100, 0); total != 0 || full != 0 {
		t.Errorf("zero step gave %d/%d", full, total)
	}
}

func TestHUDBannerOnlyInCooldown(t *testing.T) {
	stats := component.Stats{Health: config.StartingHealth}
	wave := component.Wave{Number: 1, Phase: component.WaveActive}

	font := &platformtest.Font{Advance: 8, Height: 14}
	hud := NewHUD(font, font, config.WavesToBeat)
	r := &platformtest.Renderer{}

	hud.Draw(r, stats, wave)
	if slices.Contains(r.Texts(), "WAVE II") {
		t.Fatal("banner drawn during an active wave")
	}
	if !slices.Contains(r.Texts(), "SCORE 00000") || !slices.Contains(r.Texts(), "WAVE I") {
		t.Fatalf("texts = %q", r.Texts())
	}

	r.Reset()
	wave.Phase = component.WaveCooldown
	wave.Cooldown = 1.5
	hud.Draw(r, stats, wave)
	if !slices.Contains(r.Texts(), "WAVE II") || !slices.Contains(r.Texts(), "1.5") {
		t.Errorf("texts = %q, want banner with countdown", r.Texts())
	}
}

func TestWaveIndicatorHiddenBeforeStart(t *testing.T) {
	r := &platformtest.Renderer{}
	NewWaveIndicator(400, 10).Draw(r, &platformtest.Font{Advance: 8, Height: 14}, 0, 5)
	if len(r.Calls) != 0 {
		t.Errorf("drew %d calls for wave 0", len(r.Calls))
	}
}

func TestStarfieldIsSeededAndWraps(t *testing.T) {
	a := NewStarfield(20, 100, 50, 42)
	b := NewStarfield(20, 100, 50, 42)
	if !slices.Equal(a.stars, b.stars) {
		t.Fatal("same seed produced different skies")
	}

	for n := 0; n < 200; n++ {
		a.Update(0.1)
	}
	for _, st := range a.stars {
		if st.pos.Y < 0 || st.pos.Y > 50 || st.pos.X < 0 || st.pos.X >= 100 {
			t.Fatalf("star escaped: %+v", st.pos)
		}
	}

	r := &platformtest.Renderer{}
	a.Draw(r)
	if r.Count("rect") != 20 {
		t.Errorf("drew %d stars", r.Count("rect"))
	}
}

func TestOverlayDimsScreen(t *testing.T) {
	o := &Overlay{Title: "PAUSED", TitleColor: config.TextLightColor, Lines: []string{"P - resume"}}
	r := &platformtest.Renderer{}
	font := &platformtest.Font{Advance: 8, Height: 14}
	o.Draw(r, font, font)
	if r.Calls[0].Op != "rect" || !slices.Equal(r.Texts(), []string{"PAUSED", "P - resume"}) {
		t.Errorf("calls = %+v", r.Calls)
	}
}
