package label

import (
	"boxlabel/internal/pointer"
)

// Mode selects which interpreter is mounted.
type Mode int

const (
	ModeCreate Mode = iota
	ModeSelect
)

func (m Mode) String() string {
	if m == ModeSelect {
		return "SELECT"
	}
	return "CREATE"
}

// SessionConfig is everything a Session needs from the editor shell.
type SessionConfig struct {
	MaxBoxes        int
	Scope           Scope
	ZeroOriginGuard bool
	// Element is the interactive container, Document the catch-all target.
	Element  pointer.Target
	Document pointer.Target
	Surface  Surface
	Focus    Focuser
	Notify   Notifier
	// ImageRef is passed through to the surface untouched.
	ImageRef string
}

// Session owns the editor state shared by both interpreters: the current
// mode, the box list and the selection. Exactly one interpreter is mounted.
type Session struct {
	cfg       SessionConfig
	mode      Mode
	store     *Store
	selection *Selection
	create    *CreateInterpreter
	drag      *DragInterpreter
}

func NewSession(store *Store, cfg SessionConfig) *Session {
	if store == nil {
		store = NewStore(nil)
	}
	s := &Session{
		cfg:       cfg,
		mode:      ModeCreate,
		store:     store,
		selection: NewSelection(),
	}
	s.create = NewCreateInterpreter(store, CreateConfig{
		MaxBoxes: cfg.MaxBoxes,
		Target:   cfg.Element,
		Surface:  cfg.Surface,
		Focus:    cfg.Focus,
		Notify:   cfg.Notify,
	})
	s.drag = NewDragInterpreter(store, s.selection, DragConfig{
		Element:         cfg.Element,
		Document:        cfg.Document,
		Scope:           cfg.Scope,
		Surface:         cfg.Surface,
		Focus:           cfg.Focus,
		ZeroOriginGuard: cfg.ZeroOriginGuard,
	})
	return s
}

func (s *Session) Mode() Mode { return s.mode }
func (s *Session) Store() *Store { return s.store }
func (s *Session) Selection() *Selection { return s.selection }
func (s *Session) ImageRef() string { return s.cfg.ImageRef }
func (s *Session) Create() *CreateInterpreter { return s.create }
func (s *Session) Drag() *DragInterpreter { return s.drag }

// SetMode unmounts the current interpreter and mounts the one for m.
func (s *Session) SetMode(m Mode) {
	if m == s.mode {
		return
	}
	s.create.Close()
	s.drag.Close()
	s.mode = m
}

// Busy reports whether a gesture is in progress.
func (s *Session) Busy() bool {
	return s.create.Drawing() || s.drag.Dragging()
}

// Preview returns the uncommitted rectangle of an in-progress create gesture.
func (s *Session) Preview() (Geometry, bool) {
	if s.mode != ModeCreate {
		return Geometry{}, false
	}
	return s.create.Preview()
}

// PointerDown routes a captured pointer-down to the mounted interpreter.
// In select mode a down that misses every box is ignored.
func (s *Session) PointerDown(ev pointer.Event) error {
	switch s.mode {
	case ModeSelect:
		p, ok := localPoint(s.cfg.Surface, ev.ClientX, ev.ClientY)
		if !ok {
			return nil
		}
		index, hit := HitTest(s.store.Boxes(), p)
		if !hit {
			return nil
		}
		return s.drag.PointerDown(index, ev)
	default:
		return s.create.PointerDown(ev)
	}
}

// Cancel ends an open gesture with a cancel event at the last known pointer
// position, delivered through the mounted interpreter's target. If the target
// drops the event the gesture is discarded.
func (s *Session) Cancel(last pointer.Event) error {
	if !s.Busy() {
		return nil
	}
	last.Kind = pointer.Cancel

	var err error
	if sink, ok := s.target().(pointer.Sink); ok {
		err = sink.Dispatch(last)
	}
	if s.Busy() {
		s.Close()
	}
	return err
}

// target returns where the mounted interpreter's listeners are bridged.
func (s *Session) target() pointer.Target {
	if s.mode == ModeSelect && s.cfg.Scope == ScopeDocument {
		return s.cfg.Document
	}
	return s.cfg.Element
}

// Close unmounts whichever interpreter is active.
func (s *Session) Close() {
	s.create.Close()
	s.drag.Close()
}
