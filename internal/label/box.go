package label

// DefaultMaxBoxes is the box capacity used when none is configured.
const DefaultMaxBoxes = 5

// Box is one label annotation. Index is the list position at creation time.
type Box struct {
	Index    int      `json:"index"`
	Geometry Geometry `json:"geometry"`
}

// NonDegenerate returns the boxes with a non-zero area, in order.
func NonDegenerate(boxes []Box) []Box {
	out := make([]Box, 0, len(boxes))
	for _, b := range boxes {
		if !b.Geometry.Degenerate() {
			out = append(out, b)
		}
	}
	return out
}

// Find returns the box with the given index.
func Find(boxes []Box, index int) (Box, bool) {
	for _, b := range boxes {
		if b.Index == index {
			return b, true
		}
	}
	return Box{}, false
}

// HitTest returns the index of the top-most box containing p. Later boxes
// are drawn over earlier ones, so the search runs back to front.
func HitTest(boxes []Box, p Point) (int, bool) {
	for i := len(boxes) - 1; i >= 0; i-- {
		if boxes[i].Geometry.Contains(p) {
			return boxes[i].Index, true
		}
	}
	return -1, false
}

// ReplaceGeometry returns a new list where the box matching index has its
// geometry replaced by fn. The input slice is left untouched.
func ReplaceGeometry(boxes []Box, index int, fn func(Geometry) Geometry) []Box {
	out := make([]Box, len(boxes))
	for i, b := range boxes {
		if b.Index == index {
			b.Geometry = fn(b.Geometry)
		}
		out[i] = b
	}
	return out
}
