package label

import (
	"fmt"

	"boxlabel/internal/pointer"
)

// Scope selects where the drag listeners are attached.
type Scope int

const (
	// ScopeElement bridges listeners to the interactive container.
	ScopeElement Scope = iota
	// ScopeDocument bridges listeners to the document-level target, so the
	// drag keeps tracking when the pointer leaves the container.
	ScopeDocument
)

func (s Scope) String() string {
	if s == ScopeDocument {
		return "document"
	}
	return "element"
}

// ParseScope accepts "element" or "document".
func ParseScope(v string) (Scope, error) {
	switch v {
	case "element", "":
		return ScopeElement, nil
	case "document":
		return ScopeDocument, nil
	}
	return ScopeElement, fmt.Errorf("unknown listener scope %q", v)
}

// DragConfig wires a DragInterpreter to its surroundings.
type DragConfig struct {
	Element  pointer.Target
	Document pointer.Target
	Scope    Scope
	Surface  Surface
	Focus    Focuser
	// ZeroOriginGuard treats a box with a zero top or left as having no
	// origin and ignores moves for it.
	ZeroOriginGuard bool
}

// DragInterpreter selects boxes and translates them by the drag delta.
//
//	Idle --down on box--> Dragging --move--> Dragging --up/cancel--> Idle
type DragInterpreter struct {
	cfg       DragConfig
	store     *Store
	selection *Selection
	gesture   Gesture
	dragging  bool
	bridge    *pointer.Bridge
}

func NewDragInterpreter(store *Store, selection *Selection, cfg DragConfig) *DragInterpreter {
	if selection == nil {
		selection = NewSelection()
	}
	d := &DragInterpreter{
		cfg:       cfg,
		store:     store,
		selection: selection,
		gesture:   neutralGesture(),
	}
	target := cfg.Element
	if cfg.Scope == ScopeDocument {
		target = cfg.Document
	}
	d.bridge = pointer.NewBridge(target, pointer.Handlers{
		Move:   d.pointerMove,
		Up:     d.pointerDone,
		Cancel: d.pointerDone,
	})
	return d
}

func (d *DragInterpreter) Dragging() bool { return d.dragging }
func (d *DragInterpreter) Bound() bool { return d.bridge.Bound() }
func (d *DragInterpreter) Gesture() Gesture { return d.gesture }
func (d *DragInterpreter) Selection() *Selection { return d.selection }

// ActiveIndex returns the box being dragged.
func (d *DragInterpreter) ActiveIndex() (int, bool) {
	if !d.dragging {
		return -1, false
	}
	return d.gesture.ActiveIndex, true
}

// PointerDown selects the box and starts dragging it.
func (d *DragInterpreter) PointerDown(index int, ev pointer.Event) error {
	d.selection.Add(index)

	p, ok := localPoint(d.cfg.Surface, ev.ClientX, ev.ClientY)
	if !ok {
		return fmt.Errorf("drag box %d: %w", index, ErrDetachedSurface)
	}

	box, ok := Find(d.store.Boxes(), index)
	if !ok {
		return fmt.Errorf("drag box %d: %w", index, ErrNoSuchBox)
	}

	if d.cfg.Focus != nil {
		d.cfg.Focus.Focus()
	}

	d.gesture.Begin(p)
	d.gesture.Origin = Point{X: box.Geometry.Left, Y: box.Geometry.Top}
	d.gesture.HasOrigin = true
	d.gesture.ActiveIndex = index
	d.setDragging(true)
	return nil
}

func (d *DragInterpreter) pointerMove(ev pointer.Event) error {
	if !d.dragging {
		return nil
	}

	p, ok := localPoint(d.cfg.Surface, ev.ClientX, ev.ClientY)
	if !ok {
		return fmt.Errorf("drag box %d: %w", d.gesture.ActiveIndex, ErrDetachedSurface)
	}

	if d.degenerateOrigin() {
		return fmt.Errorf("drag box %d: %w", d.gesture.ActiveIndex, ErrDegenerateOrigin)
	}

	g := d.gesture
	top := g.Origin.Y + (p.Y - g.Start.Y)
	left := g.Origin.X + (p.X - g.Start.X)
	d.store.Update(func(boxes []Box) []Box {
		return ReplaceGeometry(boxes, g.ActiveIndex, func(geo Geometry) Geometry {
			geo.Top = top
			geo.Left = left
			return geo
		})
	})

	d.gesture.Track(p)
	return nil
}

func (d *DragInterpreter) pointerDone(pointer.Event) error {
	if !d.dragging {
		return nil
	}
	d.abort()
	return nil
}

// Close discards an open gesture and detaches the bridge.
func (d *DragInterpreter) Close() {
	d.abort()
}

func (d *DragInterpreter) degenerateOrigin() bool {
	if !d.gesture.HasOrigin {
		return true
	}
	if !d.cfg.ZeroOriginGuard {
		return false
	}
	return d.gesture.Origin.X == 0 || d.gesture.Origin.Y == 0
}

func (d *DragInterpreter) abort() {
	d.gesture.Reset()
	d.setDragging(false)
}

func (d *DragInterpreter) setDragging(v bool) {
	d.dragging = v
	d.bridge.Sync(v)
}
