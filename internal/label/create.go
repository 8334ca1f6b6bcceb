package label

import (
	"fmt"

	"boxlabel/internal/pointer"
)

// CreateConfig wires a CreateInterpreter to its surroundings.
type CreateConfig struct {
	// MaxBoxes caps the list length. Zero means DefaultMaxBoxes.
	MaxBoxes int
	// Target receives the bridged move/up/cancel listeners.
	Target pointer.Target
	// Surface is the image element positions are measured against.
	Surface Surface
	Focus   Focuser
	Notify  Notifier
}

// CapacityMessage is the notice shown when the box capacity is reached.
func CapacityMessage(max int) string {
	return fmt.Sprintf("Label boxes are limited to a maximum of %d.", max)
}

// CreateInterpreter turns a drag gesture into a new box.
//
//	Idle --down--> Drawing --move--> Drawing --up/cancel--> Idle
type CreateInterpreter struct {
	cfg     CreateConfig
	store   *Store
	gesture Gesture
	drawing bool
	bridge  *pointer.Bridge
}

func NewCreateInterpreter(store *Store, cfg CreateConfig) *CreateInterpreter {
	if cfg.MaxBoxes <= 0 {
		cfg.MaxBoxes = DefaultMaxBoxes
	}
	c := &CreateInterpreter{
		cfg:     cfg,
		store:   store,
		gesture: neutralGesture(),
	}
	c.bridge = pointer.NewBridge(cfg.Target, pointer.Handlers{
		Move:   c.pointerMove,
		Up:     c.pointerDone,
		Cancel: c.pointerDone,
	})
	return c
}

func (c *CreateInterpreter) MaxBoxes() int { return c.cfg.MaxBoxes }

// Drawing reports whether a box is being drawn.
func (c *CreateInterpreter) Drawing() bool { return c.drawing }

// Bound reports whether the bridged listeners are attached.
func (c *CreateInterpreter) Bound() bool { return c.bridge.Bound() }

// Gesture returns a copy of the current gesture state.
func (c *CreateInterpreter) Gesture() Gesture { return c.gesture }

// Preview returns the uncommitted rectangle while drawing.
func (c *CreateInterpreter) Preview() (Geometry, bool) {
	if !c.drawing {
		return Geometry{}, false
	}
	return c.gesture.Rect(), true
}

// PointerDown starts drawing at the pointer position.
func (c *CreateInterpreter) PointerDown(ev pointer.Event) error {
	if n := c.store.Len(); n >= c.cfg.MaxBoxes {
		c.notify()
		return fmt.Errorf("create box %d: %w", n, ErrCapacityExceeded)
	}

	p, ok := localPoint(c.cfg.Surface, ev.ClientX, ev.ClientY)
	if !ok {
		return fmt.Errorf("create box: %w", ErrDetachedSurface)
	}

	if c.cfg.Focus != nil {
		c.cfg.Focus.Focus()
	}

	c.gesture.Begin(p)
	c.setDrawing(true)
	return nil
}

func (c *CreateInterpreter) pointerMove(ev pointer.Event) error {
	if !c.drawing {
		return nil
	}
	p, ok := localPoint(c.cfg.Surface, ev.ClientX, ev.ClientY)
	if !ok {
		return fmt.Errorf("track %s: %w", ev.Kind, ErrDetachedSurface)
	}
	c.gesture.Track(p)
	return nil
}

func (c *CreateInterpreter) pointerDone(ev pointer.Event) error {
	if !c.drawing {
		return nil
	}

	// Capacity may have changed since the gesture started.
	if n := c.store.Len(); n >= c.cfg.MaxBoxes {
		c.abort()
		c.notify()
		return fmt.Errorf("commit box %d: %w", n, ErrCapacityExceeded)
	}

	p, ok := localPoint(c.cfg.Surface, ev.ClientX, ev.ClientY)
	if !ok {
		return fmt.Errorf("commit on %s: %w", ev.Kind, ErrDetachedSurface)
	}

	c.gesture.Track(p)
	rect := c.gesture.Rect()
	c.store.Update(func(boxes []Box) []Box {
		return append(boxes, Box{Index: len(boxes), Geometry: rect})
	})
	c.abort()
	return nil
}

// Close discards an open gesture and detaches the bridge.
func (c *CreateInterpreter) Close() {
	c.abort()
}

func (c *CreateInterpreter) abort() {
	c.gesture.Reset()
	c.setDrawing(false)
}

func (c *CreateInterpreter) setDrawing(v bool) {
	c.drawing = v
	c.bridge.Sync(v)
}

func (c *CreateInterpreter) notify() {
	if c.cfg.Notify != nil {
		c.cfg.Notify.Notify(CapacityMessage(c.cfg.MaxBoxes))
	}
}
