package label

import "math"

// Point is a position in image-local pixels unless stated otherwise.
type Point struct {
	X, Y float64
}

// Geometry is a box rectangle relative to the image's top-left corner.
type Geometry struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Normalize returns the rectangle spanned by start and the point
// (start.X - xDiff, start.Y - yDiff), whatever the drag direction.
// xDiff and yDiff are start minus current pointer position.
func Normalize(start Point, xDiff, yDiff float64) Geometry {
	g := Geometry{
		Top:    start.Y,
		Left:   start.X,
		Width:  math.Abs(xDiff),
		Height: math.Abs(yDiff),
	}
	// Pointer moved left of / above the start point.
	if xDiff > 0 {
		g.Left -= g.Width
	}
	if yDiff > 0 {
		g.Top -= g.Height
	}
	return g
}

// Degenerate reports a zero-area rectangle, e.g. from a click without drag.
func (g Geometry) Degenerate() bool {
	return g.Width == 0 || g.Height == 0
}

func (g Geometry) Right() float64  { return g.Left + g.Width }
func (g Geometry) Bottom() float64 { return g.Top + g.Height }

// Contains reports whether p lies inside g, edges included.
func (g Geometry) Contains(p Point) bool {
	return p.X >= g.Left && p.X <= g.Right() && p.Y >= g.Top && p.Y <= g.Bottom()
}

// Rect is a bounding rectangle in viewport coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

// Local converts a viewport position into coordinates relative to r.
func (r Rect) Local(clientX, clientY float64) Point {
	return Point{X: clientX - r.Left, Y: clientY - r.Top}
}
