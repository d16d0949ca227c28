package sparsecs

// View1 iterates every entity that has component T1. Generated views for
// higher arities (View2..View8) follow the same driving-store pattern; see
// view_generated.go.
type View1[T1 any] struct {
	w     *World
	id1   componentID
	mask  ComponentMask
	store componentStore[T1]
}

// GetView1 builds a view over entities with T1. The view caches T1's store
// pointer at construction time; constructing it registers T1 and creates
// the store if needed, so later AddComponent calls use that same store.
func GetView1[T1 any](w *World) View1[T1] {
	id1 := idFor[T1]()
	var m ComponentMask
	m.Set(int(id1))
	return View1[T1]{w: w, id1: id1, mask: m, store: storeFor[T1](w)}
}

// Each invokes fn once per matching entity, in the driving store's dense
// order, with a pointer to its T1. With a single component type the store
// is always its own driving store, so every entity the store tracks already
// qualifies — there's no second world mask check.
func (v View1[T1]) Each(fn func(Entity, *T1)) {
	for _, e := range v.store.Entities() {
		fn(e, v.store.Get(e))
	}
}

// Count returns the number of matching entities without iterating.
func (v View1[T1]) Count() int {
	return v.store.Size()
}
