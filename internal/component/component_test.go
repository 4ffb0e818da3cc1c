package component

import "testing"

func TestStatsEscapeClampsAtZero(t *testing.T) {
	s := Stats{Health: 15}
	s.TakeEscape(10)
	if s.Health != 5 || !s.Alive() {
		t.Fatalf("health = %d, want 5 and alive", s.Health)
	}
	s.TakeEscape(10)
	if s.Health != 0 {
		t.Errorf("health = %d, want clamped 0", s.Health)
	}
	if s.Alive() {
		t.Error("zero health is not alive")
	}
	if s.Escaped != 2 {
		t.Errorf("escaped = %d, want 2", s.Escaped)
	}
}

func TestStatsAddKill(t *testing.T) {
	var s Stats
	s.AddKill(10)
	s.AddKill(10)
	if s.Score != 20 || s.Kills != 2 {
		t.Errorf("got score=%d kills=%d", s.Score, s.Kills)
	}
}

func TestSpriteSizeUsesScale(t *testing.T) {
	sp := Sprite{Texture: fixedTexture{8, 24}, Scale: 0.5}
	w, h := sp.Size()
	if w != 4 || h != 12 {
		t.Errorf("Size = %vx%v, want 4x12", w, h)
	}
	sp.Scale = 0
	if w, h = sp.Size(); w != 8 || h != 24 {
		t.Errorf("zero scale should mean 1, got %vx%v", w, h)
	}
	if w, h = (Sprite{}).Size(); w != 0 || h != 0 {
		t.Errorf("no texture should be 0x0, got %vx%v", w, h)
	}
}

type fixedTexture [2]int

func (f fixedTexture) Size() (int, int) { return f[0], f[1] }
