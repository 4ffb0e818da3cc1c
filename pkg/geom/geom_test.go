package geom

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 20}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 25, Y: 25, W: 10, H: 10}, true},
		{"contained", Rect{X: 15, Y: 15, W: 2, H: 2}, true},
		{"containing", Rect{X: 0, Y: 0, W: 100, H: 100}, true},
		{"left of", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"above", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching edge", Rect{X: 30, Y: 10, W: 5, H: 5}, false},
		{"touching corner", Rect{X: 30, Y: 30, W: 5, H: 5}, false},
	}
	for _, tc := range cases {
		if got := base.Intersects(tc.other); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.other.Intersects(base); got != tc.want {
			t.Errorf("%s (swapped): Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(Vec2{X: 3, Y: 4}, 10, 6)
	if r.Right() != 13 || r.Bottom() != 10 {
		t.Fatalf("unexpected edges: right=%v bottom=%v", r.Right(), r.Bottom())
	}
	if r.Left() != 3 || r.Top() != 4 {
		t.Errorf("unexpected corner: left=%v top=%v", r.Left(), r.Top())
	}
}
