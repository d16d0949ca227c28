package sparsecs

import "testing"

type vPosition struct{ X, Y float64 }
type vVelocity struct{ X, Y float64 }
type vHealth struct{ HP int }

func TestView1EachVisitsEveryMatchingEntity(t *testing.T) {
	w := NewWorld(0)
	var entities []Entity
	for i := 0; i < 10; i++ {
		e := w.CreateEntity()
		AddComponent(w, e, vPosition{X: float64(i)})
		entities = append(entities, e)
	}

	seen := make(map[uint32]bool)
	GetView1[vPosition](w).Each(func(e Entity, p *vPosition) {
		seen[e.Index] = true
	})
	if len(seen) != len(entities) {
		t.Fatalf("expected %d entities visited, got %d", len(entities), len(seen))
	}
}

func TestView2OnlyVisitsEntitiesWithBothComponents(t *testing.T) {
	w := NewWorld(0)

	// 100 entities with position; only 10 also get velocity, making the
	// velocity store the smaller, driving store.
	var withBoth []Entity
	for i := 0; i < 100; i++ {
		e := w.CreateEntity()
		AddComponent(w, e, vPosition{X: float64(i)})
		if i < 10 {
			AddComponent(w, e, vVelocity{X: 1, Y: 1})
			withBoth = append(withBoth, e)
		}
	}

	view := GetView2[vPosition, vVelocity](w)
	if view.Count() != 10 {
		t.Fatalf("expected 10 matching entities, got %d", view.Count())
	}

	visited := make(map[uint32]bool)
	view.Each(func(e Entity, p *vPosition, v *vVelocity) {
		visited[e.Index] = true
		p.X += v.X
	})
	if len(visited) != 10 {
		t.Fatalf("expected 10 visited entities, got %d", len(visited))
	}
	for _, e := range withBoth {
		if !visited[e.Index] {
			t.Fatalf("entity %+v should have been visited", e)
		}
	}
}

func TestView2MutatesThroughPointer(t *testing.T) {
	w := NewWorld(0)
	e := w.CreateEntity()
	AddComponent(w, e, vPosition{X: 0, Y: 0})
	AddComponent(w, e, vVelocity{X: 2, Y: 3})

	GetView2[vPosition, vVelocity](w).Each(func(_ Entity, p *vPosition, v *vVelocity) {
		p.X += v.X
		p.Y += v.Y
	})

	pos, _ := GetComponent[vPosition](w, e)
	if pos.X != 2 || pos.Y != 3 {
		t.Fatalf("expected position updated in place, got %+v", pos)
	}
}

func TestView3RequiresAllThreeComponents(t *testing.T) {
	w := NewWorld(0)
	full := w.CreateEntity()
	AddComponent(w, full, vPosition{})
	AddComponent(w, full, vVelocity{})
	AddComponent(w, full, vHealth{HP: 100})

	partial := w.CreateEntity()
	AddComponent(w, partial, vPosition{})
	AddComponent(w, partial, vVelocity{})

	count := 0
	GetView3[vPosition, vVelocity, vHealth](w).Each(func(e Entity, p *vPosition, v *vVelocity, h *vHealth) {
		count++
		if e.Index != full.Index {
			t.Fatalf("only the fully-equipped entity should match, got %+v", e)
		}
	})
	if count != 1 {
		t.Fatalf("expected exactly 1 match, got %d", count)
	}
}

func TestView1CountMatchesStoreSize(t *testing.T) {
	w := NewWorld(0)
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		AddComponent(w, e, vHealth{HP: i})
	}
	if got := GetView1[vHealth](w).Count(); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
}
