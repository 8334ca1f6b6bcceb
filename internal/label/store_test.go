package label

import "testing"

func sampleBoxes() []Box {
	return []Box{
		{Index: 0, Geometry: Geometry{Top: 10, Left: 10, Width: 20, Height: 20}},
		{Index: 1, Geometry: Geometry{Top: 5, Left: 40, Width: 10, Height: 0}},
		{Index: 2, Geometry: Geometry{Top: 15, Left: 15, Width: 30, Height: 30}},
	}
}

func TestStore_UpdateReplacesWholeList(t *testing.T) {
	s := NewStore(sampleBoxes())
	before := s.Boxes()

	s.Update(func(boxes []Box) []Box {
		return ReplaceGeometry(boxes, 1, func(g Geometry) Geometry {
			g.Top = 99
			return g
		})
	})

	if before[1].Geometry.Top != 5 {
		t.Errorf("earlier snapshot mutated: got top %v, want 5", before[1].Geometry.Top)
	}
	after := s.Boxes()
	if after[1].Geometry.Top != 99 {
		t.Errorf("updated top: got %v, want 99", after[1].Geometry.Top)
	}
	if after[0] != before[0] || after[2] != before[2] {
		t.Error("untouched boxes changed")
	}
}

func TestStore_BoxesReturnsCopy(t *testing.T) {
	s := NewStore(sampleBoxes())
	got := s.Boxes()
	got[0].Geometry.Left = -1
	if s.Boxes()[0].Geometry.Left != 10 {
		t.Error("mutating the returned slice changed the store")
	}
}

func TestStore_ReplaceAndLen(t *testing.T) {
	s := NewStore(nil)
	if s.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", s.Len())
	}
	s.Replace(sampleBoxes())
	if s.Len() != 3 {
		t.Errorf("Len: got %d, want 3", s.Len())
	}
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore(nil)
	var seen [][]Box
	unsubscribe := s.Subscribe(func(boxes []Box) { seen = append(seen, boxes) })

	s.Replace(sampleBoxes())
	unsubscribe()
	s.Replace(nil)

	if len(seen) != 1 {
		t.Fatalf("notifications: got %d, want 1", len(seen))
	}
	if len(seen[0]) != 3 {
		t.Errorf("notified list length: got %d, want 3", len(seen[0]))
	}
}

func TestStore_SubscribersNotifiedInOrder(t *testing.T) {
	s := NewStore(nil)
	var order []int
	for i := 0; i < 8; i++ {
		i := i
		unsubscribe := s.Subscribe(func([]Box) { order = append(order, i) })
		if i == 3 {
			unsubscribe()
		}
	}

	for round := 0; round < 5; round++ {
		order = nil
		s.Replace(sampleBoxes())
		want := []int{0, 1, 2, 4, 5, 6, 7}
		if len(order) != len(want) {
			t.Fatalf("notifications: got %v, want %v", order, want)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Fatalf("order: got %v, want %v", order, want)
			}
		}
	}
}

func TestNonDegenerate(t *testing.T) {
	got := NonDegenerate(sampleBoxes())
	if len(got) != 2 || got[0].Index != 0 || got[1].Index != 2 {
		t.Errorf("NonDegenerate: got %+v", got)
	}
}

func TestHitTest_PicksTopMost(t *testing.T) {
	boxes := sampleBoxes()
	tests := []struct {
		p     Point
		want  int
		found bool
	}{
		{Point{X: 20, Y: 20}, 2, true},
		{Point{X: 12, Y: 12}, 0, true},
		{Point{X: 44, Y: 5}, 1, true},
		{Point{X: 200, Y: 200}, -1, false},
	}
	for _, tt := range tests {
		got, ok := HitTest(boxes, tt.p)
		if got != tt.want || ok != tt.found {
			t.Errorf("HitTest(%+v): got (%d, %v), want (%d, %v)", tt.p, got, ok, tt.want, tt.found)
		}
	}
}

func TestFind(t *testing.T) {
	if _, ok := Find(sampleBoxes(), 7); ok {
		t.Error("Find returned a missing index")
	}
	b, ok := Find(sampleBoxes(), 2)
	if !ok || b.Geometry.Width != 30 {
		t.Errorf("Find(2): got %+v, %v", b, ok)
	}
}

func TestSelection_OnlyGrows(t *testing.T) {
	s := NewSelection()
	if !s.Add(3) {
		t.Error("first Add should report new")
	}
	if s.Add(3) {
		t.Error("second Add should report existing")
	}
	s.Add(1)
	got := s.Indices()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Indices: got %v, want [1 3]", got)
	}
	if !s.Has(3) || s.Has(2) {
		t.Error("Has reported wrong membership")
	}
}
