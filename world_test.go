package sparsecs

import "testing"

type wPosition struct{ X, Y float64 }
type wVelocity struct{ X, Y float64 }
type wMarker struct{}

func TestWorldAddGetRemoveComponent(t *testing.T) {
	w := NewWorld(0)
	e := w.CreateEntity()

	if _, ok := GetComponent[wPosition](w, e); ok {
		t.Fatal("entity should start without a position")
	}

	AddComponent(w, e, wPosition{X: 1, Y: 2})
	pos, ok := GetComponent[wPosition](w, e)
	if !ok || pos.X != 1 || pos.Y != 2 {
		t.Fatalf("unexpected component after add: %+v, ok=%v", pos, ok)
	}
	if !HasComponent[wPosition](w, e) {
		t.Fatal("HasComponent should report true")
	}

	if !RemoveComponent[wPosition](w, e) {
		t.Fatal("RemoveComponent should report true for a present component")
	}
	if HasComponent[wPosition](w, e) {
		t.Fatal("component should be gone after removal")
	}
	if RemoveComponent[wPosition](w, e) {
		t.Fatal("removing an absent component a second time should report false")
	}
}

func TestWorldDestroyEntityFiresRemovedForEveryComponent(t *testing.T) {
	w := NewWorld(0)
	e := w.CreateEntity()
	AddComponent(w, e, wPosition{X: 1, Y: 2})
	AddComponent(w, e, wVelocity{X: 3, Y: 4})

	var removedPos, removedVel int
	OnEvent[wPosition](w, EventRemoved, func(Entity, *wPosition) { removedPos++ })
	OnEvent[wVelocity](w, EventRemoved, func(Entity, *wVelocity) { removedVel++ })

	w.DestroyEntity(e)

	if removedPos != 1 || removedVel != 1 {
		t.Fatalf("expected exactly one Removed per component, got pos=%d vel=%d", removedPos, removedVel)
	}
	if w.IsAlive(e) {
		t.Fatal("entity should not be alive after destroy")
	}
}

func TestWorldSignalOrderingAndFinalValue(t *testing.T) {
	w := NewWorld(0)
	e := w.CreateEntity()

	var added, modified, removed int
	var removedValue wPosition

	OnEvent[wPosition](w, EventAdded, func(_ Entity, p *wPosition) { added++ })
	OnEvent[wPosition](w, EventModified, func(_ Entity, p *wPosition) { modified++ })
	OnEvent[wPosition](w, EventRemoved, func(_ Entity, p *wPosition) { removed++; removedValue = *p })

	AddComponent(w, e, wPosition{X: 10, Y: 10})
	PatchComponent(w, e, func(p *wPosition) { p.X = 30; p.Y = 20 })
	RemoveComponent[wPosition](w, e)

	if added != 1 || modified != 1 || removed != 1 {
		t.Fatalf("expected Added=1 Modified=1 Removed=1, got Added=%d Modified=%d Removed=%d", added, modified, removed)
	}
	if removedValue != (wPosition{X: 30, Y: 20}) {
		t.Fatalf("Removed observer should see the final value, got %+v", removedValue)
	}
}

func TestWorldAddComponentOnExistingFiresModifiedNotAddedTwice(t *testing.T) {
	w := NewWorld(0)
	e := w.CreateEntity()

	var added, modified int
	OnEvent[wPosition](w, EventAdded, func(Entity, *wPosition) { added++ })
	OnEvent[wPosition](w, EventModified, func(Entity, *wPosition) { modified++ })

	AddComponent(w, e, wPosition{X: 1, Y: 1})
	AddComponent(w, e, wPosition{X: 2, Y: 2})

	if added != 1 {
		t.Fatalf("expected exactly one Added, got %d", added)
	}
	if modified != 1 {
		t.Fatalf("re-adding an existing component should fire Modified, got %d", modified)
	}
}

func TestWorldEntityRecyclingInvalidatesOldHandle(t *testing.T) {
	w := NewWorld(0)
	e1 := w.CreateEntity()
	AddComponent(w, e1, wPosition{X: 1, Y: 1})
	w.DestroyEntity(e1)

	e2 := w.CreateEntity()
	if e2.Index != e1.Index {
		t.Fatalf("expected recycled index, got %+v vs %+v", e2, e1)
	}
	if w.IsAlive(e1) {
		t.Fatal("stale handle should not be alive")
	}
	if HasComponent[wPosition](w, e1) {
		t.Fatal("stale handle should not see the old component")
	}
	if HasComponent[wPosition](w, e2) {
		t.Fatal("freshly recycled entity should start with no components")
	}
}

func TestWorldTagHelpers(t *testing.T) {
	w := NewWorld(0)
	e := w.CreateEntity()

	if HasTag[wMarker](w, e) {
		t.Fatal("entity should not start tagged")
	}
	AddTag[wMarker](w, e)
	if !HasTag[wMarker](w, e) {
		t.Fatal("expected tag present after AddTag")
	}
	RemoveTag[wMarker](w, e)
	if HasTag[wMarker](w, e) {
		t.Fatal("expected tag removed")
	}
}

func TestWorldOperationsOnDeadEntityAreNoops(t *testing.T) {
	w := NewWorld(0)
	e := w.CreateEntity()
	w.DestroyEntity(e)

	if _, ok := AddComponent(w, e, wPosition{}); ok {
		t.Fatal("AddComponent on a dead entity should fail")
	}
	if RemoveComponent[wPosition](w, e) {
		t.Fatal("RemoveComponent on a dead entity should report false")
	}
	if HasComponent[wPosition](w, e) {
		t.Fatal("HasComponent on a dead entity should be false")
	}
}
