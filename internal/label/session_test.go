package label

import (
	"testing"

	"boxlabel/internal/pointer"
)

func newTestSession(boxes ...Box) (*Session, *pointer.Dispatcher, *pointer.Dispatcher) {
	element := pointer.NewDispatcher("element", nil)
	document := pointer.NewDispatcher("document", nil)
	s := NewSession(NewStore(boxes), SessionConfig{
		MaxBoxes:        3,
		Scope:           ScopeElement,
		ZeroOriginGuard: true,
		Element:         element,
		Document:        document,
		Surface:         &fakeSurface{rect: Rect{Left: 100, Top: 50, Width: 640, Height: 480}},
		Notify:          &fakeNotifier{},
		ImageRef:        "cat.png",
	})
	return s, element, document
}

func TestSession_CreateThenDrag(t *testing.T) {
	s, element, _ := newTestSession()

	if err := s.PointerDown(ev(pointer.Down, 150, 120)); err != nil {
		t.Fatalf("create down failed: %v", err)
	}
	if !s.Busy() {
		t.Fatal("session not busy while drawing")
	}
	if _, ok := s.Preview(); !ok {
		t.Error("no preview while drawing")
	}
	_ = element.Dispatch(ev(pointer.Up, 200, 170))

	s.SetMode(ModeSelect)
	if err := s.PointerDown(ev(pointer.Down, 170, 140)); err != nil {
		t.Fatalf("select down failed: %v", err)
	}
	if idx, ok := s.Drag().ActiveIndex(); !ok || idx != 0 {
		t.Fatalf("active index: got (%d, %v), want (0, true)", idx, ok)
	}
	_ = element.Dispatch(ev(pointer.Move, 180, 160))
	_ = element.Dispatch(ev(pointer.Up, 180, 160))

	want := Geometry{Top: 90, Left: 60, Width: 50, Height: 50}
	if got := s.Store().Boxes()[0].Geometry; got != want {
		t.Errorf("geometry: got %+v, want %+v", got, want)
	}
	if !s.Selection().Has(0) {
		t.Error("box not selected")
	}
}

func TestSession_SelectMissIgnored(t *testing.T) {
	s, _, _ := newTestSession(Box{Index: 0, Geometry: Geometry{Top: 10, Left: 10, Width: 10, Height: 10}})
	s.SetMode(ModeSelect)

	if err := s.PointerDown(ev(pointer.Down, 400, 400)); err != nil {
		t.Fatalf("miss returned error: %v", err)
	}
	if s.Busy() || s.Selection().Len() != 0 {
		t.Error("miss started a gesture or selected a box")
	}
}

func TestSession_SetModeClosesGesture(t *testing.T) {
	s, element, _ := newTestSession()
	_ = s.PointerDown(ev(pointer.Down, 150, 120))

	s.SetMode(ModeSelect)

	if s.Busy() {
		t.Error("gesture survived the mode switch")
	}
	if got := element.ListenerCount(pointer.Move); got != 0 {
		t.Errorf("leaked listeners: got %d, want 0", got)
	}
	if _, ok := s.Preview(); ok {
		t.Error("preview in select mode")
	}
}

func TestSession_SelectionSurvivesModeSwitch(t *testing.T) {
	s, element, _ := newTestSession(Box{Index: 0, Geometry: Geometry{Top: 10, Left: 10, Width: 10, Height: 10}})
	s.SetMode(ModeSelect)
	_ = s.PointerDown(ev(pointer.Down, 115, 65))
	_ = element.Dispatch(ev(pointer.Up, 115, 65))

	s.SetMode(ModeCreate)
	s.SetMode(ModeSelect)

	if !s.Selection().Has(0) {
		t.Error("selection dropped by mode switch")
	}
	if s.ImageRef() != "cat.png" {
		t.Errorf("ImageRef: got %q", s.ImageRef())
	}
}

func TestSession_Cancel(t *testing.T) {
	box := Box{Index: 0, Geometry: Geometry{Top: 30, Left: 40, Width: 20, Height: 10}}

	t.Run("create commits", func(t *testing.T) {
		s, element, _ := newTestSession()
		_ = s.PointerDown(ev(pointer.Down, 150, 120))
		_ = element.Dispatch(ev(pointer.Move, 200, 170))

		if err := s.Cancel(ev(pointer.Move, 200, 170)); err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}
		if s.Busy() {
			t.Error("gesture still open after cancel")
		}
		want := Geometry{Top: 70, Left: 50, Width: 50, Height: 50}
		boxes := s.Store().Boxes()
		if len(boxes) != 1 || boxes[0].Geometry != want {
			t.Errorf("boxes: got %+v, want one box %+v", boxes, want)
		}
		if got := element.ListenerCount(pointer.Cancel); got != 0 {
			t.Errorf("leaked listeners: got %d", got)
		}
	})

	t.Run("select ends drag", func(t *testing.T) {
		s, element, _ := newTestSession(box)
		s.SetMode(ModeSelect)
		_ = s.PointerDown(ev(pointer.Down, 150, 85))
		_ = element.Dispatch(ev(pointer.Move, 160, 90))

		if err := s.Cancel(ev(pointer.Move, 300, 300)); err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}
		if s.Busy() {
			t.Error("drag still open after cancel")
		}
		want := Geometry{Top: 35, Left: 50, Width: 20, Height: 10}
		if got := s.Store().Boxes()[0].Geometry; got != want {
			t.Errorf("geometry: got %+v, want %+v", got, want)
		}
	})

	t.Run("dropped cancel discards", func(t *testing.T) {
		element := pointer.NewDispatcher("element", func(x, y float64) bool { return x >= 100 })
		s := NewSession(NewStore(nil), SessionConfig{
			Element:  element,
			Document: pointer.NewDispatcher("document", nil),
			Surface:  &fakeSurface{rect: Rect{Left: 100, Top: 50, Width: 640, Height: 480}},
		})
		_ = s.PointerDown(ev(pointer.Down, 150, 120))

		if err := s.Cancel(ev(pointer.Move, 20, 120)); err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}
		if s.Busy() || s.Store().Len() != 0 {
			t.Errorf("busy %v, boxes %d: want idle with no boxes", s.Busy(), s.Store().Len())
		}
		if got := element.ListenerCount(pointer.Move); got != 0 {
			t.Errorf("leaked listeners: got %d", got)
		}
	})

	t.Run("idle is a no-op", func(t *testing.T) {
		s, _, _ := newTestSession()
		if err := s.Cancel(pointer.Event{}); err != nil || s.Store().Len() != 0 {
			t.Errorf("idle cancel: err %v, boxes %d", err, s.Store().Len())
		}
	})
}
