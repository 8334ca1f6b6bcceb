package pointer

// Handlers is the listener set a Bridge manages. Nil handlers are skipped.
type Handlers struct {
	Move   Handler
	Up     Handler
	Cancel Handler
}

// Bridge attaches one set of move/up/cancel listeners to a target while a
// gesture is active and detaches them when it ends.
type Bridge struct {
	target   Target
	handlers Handlers
	bound    bool
	ids      map[Kind]ListenerID
}

// NewBridge returns an unbound bridge. A nil target keeps the bridge unbound
// for its whole life.
func NewBridge(target Target, handlers Handlers) *Bridge {
	return &Bridge{
		target:   target,
		handlers: handlers,
		ids:      make(map[Kind]ListenerID),
	}
}

// Bound reports whether listeners are currently attached.
func (b *Bridge) Bound() bool { return b.bound }

// Sync observes the gesture-active flag. Listeners are attached when active
// and unbound, detached when inactive and bound, otherwise nothing happens.
func (b *Bridge) Sync(active bool) {
	switch {
	case active && !b.bound:
		b.attach()
	case !active && b.bound:
		b.detach()
	}
}

// Acquire attaches the listeners and returns a release func that detaches
// them. Release is safe to call any number of times.
func (b *Bridge) Acquire() (release func()) {
	b.Sync(true)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		b.Sync(false)
	}
}

func (b *Bridge) attach() {
	if b.target == nil {
		return
	}
	for kind, h := range b.handlerMap() {
		b.ids[kind] = b.target.AddListener(kind, h)
	}
	b.bound = true
}

func (b *Bridge) detach() {
	if b.target == nil {
		return
	}
	for kind, id := range b.ids {
		b.target.RemoveListener(kind, id)
		delete(b.ids, kind)
	}
	b.bound = false
}

func (b *Bridge) handlerMap() map[Kind]Handler {
	m := make(map[Kind]Handler, 3)
	if b.handlers.Move != nil {
		m[Move] = b.handlers.Move
	}
	if b.handlers.Up != nil {
		m[Up] = b.handlers.Up
	}
	if b.handlers.Cancel != nil {
		m[Cancel] = b.handlers.Cancel
	}
	return m
}
