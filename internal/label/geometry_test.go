package label

import (
	"math"
	"testing"
)

func TestNormalize_Quadrants(t *testing.T) {
	start := Point{X: 50, Y: 70}
	tests := []struct {
		name         string
		xDiff, yDiff float64
		want         Geometry
	}{
		{"right down", -50, -50, Geometry{Top: 70, Left: 50, Width: 50, Height: 50}},
		{"left down", 20, -30, Geometry{Top: 70, Left: 30, Width: 20, Height: 30}},
		{"right up", -20, 30, Geometry{Top: 40, Left: 50, Width: 20, Height: 30}},
		{"left up", 50, 50, Geometry{Top: 20, Left: 0, Width: 50, Height: 50}},
		{"no drag", 0, 0, Geometry{Top: 70, Left: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(start, tt.xDiff, tt.yDiff)
			if got != tt.want {
				t.Errorf("Normalize: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func spans(lo, size, a, b float64) bool {
	ends := map[float64]bool{lo: true, lo + size: true}
	return ends[a] && ends[b]
}

func TestNormalize_CornersIncludeStartAndPointer(t *testing.T) {
	coords := []float64{-10, 0, 7.5, 320}
	diffs := []float64{-25, -3, 0, 4, 60.5}

	for _, sx := range coords {
		for _, sy := range coords {
			for _, xd := range diffs {
				for _, yd := range diffs {
					g := Normalize(Point{X: sx, Y: sy}, xd, yd)
					if g.Width != math.Abs(xd) || g.Height != math.Abs(yd) {
						t.Fatalf("size for diff (%v,%v): got %vx%v", xd, yd, g.Width, g.Height)
					}
					if g.Width < 0 || g.Height < 0 {
						t.Fatalf("negative size %+v", g)
					}
					if !spans(g.Left, g.Width, sx, sx-xd) {
						t.Errorf("x span %v+%v does not include %v and %v", g.Left, g.Width, sx, sx-xd)
					}
					if !spans(g.Top, g.Height, sy, sy-yd) {
						t.Errorf("y span %v+%v does not include %v and %v", g.Top, g.Height, sy, sy-yd)
					}
				}
			}
		}
	}
}

func TestGeometry_Degenerate(t *testing.T) {
	tests := []struct {
		g    Geometry
		want bool
	}{
		{Geometry{Width: 0, Height: 10}, true},
		{Geometry{Width: 10, Height: 0}, true},
		{Geometry{Width: 1, Height: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.g.Degenerate(); got != tt.want {
			t.Errorf("Degenerate(%+v): got %v, want %v", tt.g, got, tt.want)
		}
	}
}

func TestGeometry_Contains(t *testing.T) {
	g := Geometry{Top: 10, Left: 20, Width: 30, Height: 40}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 20, Y: 10}, true},
		{Point{X: 50, Y: 50}, true},
		{Point{X: 35, Y: 30}, true},
		{Point{X: 19.9, Y: 30}, false},
		{Point{X: 35, Y: 50.1}, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%+v): got %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRect_Local(t *testing.T) {
	r := Rect{Left: 100, Top: 50, Width: 640, Height: 480}
	got := r.Local(150, 120)
	if got != (Point{X: 50, Y: 70}) {
		t.Errorf("Local: got %+v, want {50 70}", got)
	}
}
