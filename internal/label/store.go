package label

import "sync"

// Store holds the current box list. The list is only ever replaced whole;
// callers never see a slice the store still owns.
type Store struct {
	mu          sync.Mutex
	boxes       []Box
	subscribers []subscriber
	nextSub     int
}

type subscriber struct {
	id int
	fn func([]Box)
}

// NewStore returns a store seeded with a copy of initial.
func NewStore(initial []Box) *Store {
	return &Store{boxes: clone(initial)}
}

// Boxes returns a copy of the current list.
func (s *Store) Boxes() []Box {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.boxes)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boxes)
}

// Replace swaps in a new list.
func (s *Store) Replace(boxes []Box) {
	s.Update(func([]Box) []Box { return boxes })
}

// Update applies fn to the current list and stores its result. Writes are
// serialized, so the last update to finish wins.
func (s *Store) Update(fn func(current []Box) []Box) {
	s.mu.Lock()
	next := clone(fn(clone(s.boxes)))
	s.boxes = next
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(clone(next))
	}
}

// Subscribe registers fn to be called with the new list after every update.
// Subscribers are called in registration order. The returned func
// unsubscribes.
func (s *Store) Subscribe(fn func([]Box)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func clone(boxes []Box) []Box {
	out := make([]Box, len(boxes))
	copy(out, boxes)
	return out
}
