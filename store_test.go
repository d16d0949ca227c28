package sparsecs

import "testing"

type storeTestComp struct {
	V int
}

func TestStoreInsertGetContains(t *testing.T) {
	s := NewStore[storeTestComp]()
	e1 := Entity{Index: 1, Generation: 0}
	e2 := Entity{Index: 5000, Generation: 0} // forces a second sparse page

	s.Insert(e1, storeTestComp{V: 1})
	s.Insert(e2, storeTestComp{V: 2})

	if !s.Contains(e1) || !s.Contains(e2) {
		t.Fatal("expected both entities present")
	}
	if s.Get(e1).V != 1 || s.Get(e2).V != 2 {
		t.Fatal("unexpected component values")
	}
	if s.Size() != 2 {
		t.Fatalf("expected size 2, got %d", s.Size())
	}
}

func TestStoreInsertOverwritesInPlace(t *testing.T) {
	s := NewStore[storeTestComp]()
	e := Entity{Index: 1, Generation: 0}
	s.Insert(e, storeTestComp{V: 1})
	s.Insert(e, storeTestComp{V: 99})
	if s.Size() != 1 {
		t.Fatalf("re-inserting an existing entity should not grow the store, got size %d", s.Size())
	}
	if s.Get(e).V != 99 {
		t.Fatalf("expected overwritten value 99, got %d", s.Get(e).V)
	}
}

func TestStoreRemoveSwapsWithLast(t *testing.T) {
	s := NewStore[storeTestComp]()
	entities := []Entity{
		{Index: 1}, {Index: 2}, {Index: 3},
	}
	for i, e := range entities {
		s.Insert(e, storeTestComp{V: i})
	}
	s.Remove(entities[0]) // removes the first dense slot, swaps last into its place

	if s.Contains(entities[0]) {
		t.Fatal("removed entity should not be present")
	}
	if !s.Contains(entities[1]) || !s.Contains(entities[2]) {
		t.Fatal("remaining entities should still be present")
	}
	if s.Get(entities[2]).V != 2 {
		t.Fatalf("swapped entity should keep its original value, got %d", s.Get(entities[2]).V)
	}
	if s.Size() != 2 {
		t.Fatalf("expected size 2 after removal, got %d", s.Size())
	}
}

func TestStoreRemoveGenerationMismatchIsNoop(t *testing.T) {
	s := NewStore[storeTestComp]()
	e := Entity{Index: 1, Generation: 0}
	stale := Entity{Index: 1, Generation: 1}
	s.Insert(e, storeTestComp{V: 1})
	s.Remove(stale)
	if !s.Contains(e) {
		t.Fatal("removing with a stale generation must not remove the live component")
	}
}

func TestTagStoreMembershipWithoutValue(t *testing.T) {
	type marker struct{}
	s := NewTagStore[marker]()
	e := Entity{Index: 7}
	s.Insert(e, marker{})
	if !s.Contains(e) {
		t.Fatal("expected tag present")
	}
	if s.Get(e) == nil {
		t.Fatal("Get should return a valid pointer even with no state")
	}
	s.Remove(e)
	if s.Contains(e) {
		t.Fatal("expected tag removed")
	}
}
