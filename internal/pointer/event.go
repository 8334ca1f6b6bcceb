// Package pointer models pointer input (mouse or touch) as a stream of
// down/move/up/cancel events and the listener plumbing that delivers them.
package pointer

import (
	"errors"
	"sync"
)

// Kind identifies the phase of a pointer interaction.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "pointerdown"
	case Move:
		return "pointermove"
	case Up:
		return "pointerup"
	case Cancel:
		return "pointercancel"
	}
	return "pointerunknown"
}

// Sink is a target that events can be delivered to.
type Sink interface {
	Dispatch(ev Event) error
}

// Event is a single pointer event in viewport coordinates.
type Event struct {
	Kind    Kind
	ClientX float64
	ClientY float64
}

// Handler reacts to an event. A returned error never stops dispatch.
type Handler func(Event) error

// ListenerID identifies a registered listener so it can be removed later.
type ListenerID uint64

// Target is anything pointer listeners can be attached to.
type Target interface {
	AddListener(kind Kind, h Handler) ListenerID
	RemoveListener(kind Kind, id ListenerID)
}

type listener struct {
	id ListenerID
	h  Handler
}

// Dispatcher is an event target. With a bounds predicate it behaves like an
// element and only sees events inside its bounds; without one it sees
// everything, like the document.
type Dispatcher struct {
	mu        sync.Mutex
	name      string
	contains  func(x, y float64) bool
	listeners map[Kind][]listener
	nextID    ListenerID
}

// NewDispatcher creates a target. contains may be nil.
func NewDispatcher(name string, contains func(x, y float64) bool) *Dispatcher {
	return &Dispatcher{
		name:      name,
		contains:  contains,
		listeners: make(map[Kind][]listener),
	}
}

func (d *Dispatcher) Name() string { return d.name }

func (d *Dispatcher) AddListener(kind Kind, h Handler) ListenerID {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.listeners[kind] = append(d.listeners[kind], listener{id: d.nextID, h: h})
	return d.nextID
}

func (d *Dispatcher) RemoveListener(kind Kind, id ListenerID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := d.listeners[kind]
	for i, l := range list {
		if l.id == id {
			d.listeners[kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// ListenerCount reports how many listeners are attached for kind.
func (d *Dispatcher) ListenerCount(kind Kind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[kind])
}

// Accepts reports whether the event falls within the dispatcher's bounds.
func (d *Dispatcher) Accepts(ev Event) bool {
	return d.contains == nil || d.contains(ev.ClientX, ev.ClientY)
}

// Dispatch delivers ev to the listeners registered for its kind, in
// registration order. Listeners added or removed by a handler take effect
// from the next dispatch. Handler errors are joined and returned.
func (d *Dispatcher) Dispatch(ev Event) error {
	if !d.Accepts(ev) {
		return nil
	}

	d.mu.Lock()
	snapshot := make([]listener, len(d.listeners[ev.Kind]))
	copy(snapshot, d.listeners[ev.Kind])
	d.mu.Unlock()

	var errs []error
	for _, l := range snapshot {
		if err := l.h(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
