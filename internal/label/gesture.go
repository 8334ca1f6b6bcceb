package label

import (
	"errors"
	"sort"
)

var (
	// ErrCapacityExceeded is returned when a box would exceed the list capacity.
	ErrCapacityExceeded = errors.New("box capacity exceeded")
	// ErrDetachedSurface is returned when the image surface is unavailable.
	ErrDetachedSurface = errors.New("image surface detached")
	// ErrDegenerateOrigin is returned for a drag move without a valid origin.
	ErrDegenerateOrigin = errors.New("drag origin not recorded")
	// ErrNoSuchBox is returned when a pointer-down names an unknown box.
	ErrNoSuchBox = errors.New("no such box")
)

// Surface is the image element pointer positions are measured against.
// ok is false while the surface is detached.
type Surface interface {
	BoundingRect() (r Rect, ok bool)
}

// Focuser takes keyboard focus for the interactive container.
type Focuser interface {
	Focus()
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(message string)
}

// localPoint converts a viewport position to image-local pixels.
func localPoint(s Surface, clientX, clientY float64) (Point, bool) {
	if s == nil {
		return Point{}, false
	}
	r, ok := s.BoundingRect()
	if !ok {
		return Point{}, false
	}
	return r.Local(clientX, clientY), true
}

// Gesture is the transient state of one pointer interaction.
type Gesture struct {
	Origin      Point
	HasOrigin   bool
	Start       Point
	Current     Point
	XDiff       float64
	YDiff       float64
	ActiveIndex int
}

func neutralGesture() Gesture {
	return Gesture{ActiveIndex: -1}
}

// Reset returns g to the neutral state.
func (g *Gesture) Reset() {
	*g = neutralGesture()
}

// Begin resets g and anchors it at p.
func (g *Gesture) Begin(p Point) {
	g.Reset()
	g.Start = p
	g.Current = p
}

// Track records p as the current pointer position.
func (g *Gesture) Track(p Point) {
	g.Current = p
	g.XDiff = g.Start.X - p.X
	g.YDiff = g.Start.Y - p.Y
}

// Rect is the normalized rectangle between the start and current pointer.
func (g Gesture) Rect() Geometry {
	return Normalize(g.Start, g.XDiff, g.YDiff)
}

// Selection is the set of selected box indices. It only grows.
type Selection struct {
	members map[int]struct{}
}

func NewSelection() *Selection {
	return &Selection{members: make(map[int]struct{})}
}

// Add inserts index and reports whether it was new.
func (s *Selection) Add(index int) bool {
	if _, ok := s.members[index]; ok {
		return false
	}
	s.members[index] = struct{}{}
	return true
}

func (s *Selection) Has(index int) bool {
	_, ok := s.members[index]
	return ok
}

func (s *Selection) Len() int { return len(s.members) }

// Indices returns the selected indices in ascending order.
func (s *Selection) Indices() []int {
	out := make([]int, 0, len(s.members))
	for i := range s.members {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
