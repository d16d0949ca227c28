package sparsecs

import "go.uber.org/zap"

// World owns the entity table, the store registry, and the signal table; it
// is the front door for every entity/component operation in spec.md §4.3.
// A World is not safe for concurrent mutation — callers serialize
// Add/Remove/Patch/Destroy/CreateEntity (spec.md §5).
type World struct {
	entities entityTable

	stores     map[componentID]any // componentID -> componentStore[T], boxed
	storesByID []storeHandle       // blind-removal handle, indexed by componentID

	signals           map[componentID]any // componentID -> *signalStorage[T], boxed
	onRemovedTriggers map[componentID]func(*World, Entity)

	log *zap.Logger
}

// NewWorld creates an empty World, preallocating entity-table capacity.
func NewWorld(initialCapacity int) *World {
	return &World{
		entities:          newEntityTable(initialCapacity),
		stores:            make(map[componentID]any),
		signals:           make(map[componentID]any),
		onRemovedTriggers: make(map[componentID]func(*World, Entity)),
		log:               nopLogger(),
	}
}

// NewWorldWithConfig creates a World using cfg's tuning and attaches log
// (nil defaults to a no-op logger) for lifecycle diagnostics.
func NewWorldWithConfig(cfg WorldConfig, log *zap.Logger) *World {
	w := NewWorld(cfg.InitialEntityCapacity)
	w.log = orNop(log)
	return w
}

// storeFor returns T's componentStore, creating it on first use. A
// zero-sized T is backed by TagStore instead of Store, so every caller —
// AddComponent, AddTag, GetComponent, PatchComponent, triggerEvent — shares
// one store per component ID regardless of which entry point registered it
// first.
func storeFor[T any](w *World) componentStore[T] {
	id := idFor[T]()
	if existing, ok := w.stores[id]; ok {
		return existing.(componentStore[T])
	}
	var store componentStore[T]
	if isTagID(id) {
		store = NewTagStore[T]()
	} else {
		store = NewStore[T]()
	}
	w.stores[id] = store
	w.growStoresByID(id)
	w.storesByID[id] = store.(storeHandle)
	return store
}

func (w *World) growStoresByID(id componentID) {
	for int(id) >= len(w.storesByID) {
		w.storesByID = append(w.storesByID, nil)
	}
}

// CreateEntity allocates a fresh entity with no components.
func (w *World) CreateEntity() Entity {
	e := w.entities.create()
	w.log.Debug("create entity", zap.Uint32("index", e.Index), zap.Uint32("generation", e.Generation))
	return e
}

// CreateEntitiesBulk allocates count entities with no components, recycling
// free slots first. Equivalent to count sequential CreateEntity calls but
// without repeated per-slot reallocation.
func (w *World) CreateEntitiesBulk(count int) []Entity {
	return w.entities.createBulk(count)
}

// CreateEntityWithID idempotently reserves id: if it is already alive it is
// returned unchanged; otherwise the slot is stamped with id's generation and
// an empty mask. Matches spec.md §4.1's CreateEntity(id) — intended for
// deserialization, where generations and indices from a source world must
// be preserved exactly. Stale component data left behind at a reused index
// is not swept; it self-heals via the generation check in Store.Contains
// (spec.md §9).
func (w *World) CreateEntityWithID(id Entity) Entity {
	return w.entities.reserve(id)
}

// DestroyEntity removes id and every component it has, firing a Removed
// signal for each before erasing it (spec.md §4.1 / §4.4). No-op if id is
// not alive.
func (w *World) DestroyEntity(id Entity) {
	if !w.entities.isAlive(id) {
		return
	}
	mask := w.entities.mask(id)
	mask.ForEachSetBit(func(bit int) {
		cid := componentID(bit)
		if trigger, ok := w.onRemovedTriggers[cid]; ok {
			trigger(w, id)
		}
		if handle := w.storesByID[cid]; handle != nil {
			handle.Remove(id)
		}
	})
	w.entities.destroy(id)
	w.log.Debug("destroy entity", zap.Uint32("index", id.Index), zap.Uint32("generation", id.Generation))
}

// IsAlive reports whether id refers to the current occupant of its slot.
func (w *World) IsAlive(id Entity) bool {
	return w.entities.isAlive(id)
}

// GetEntityCount returns the length of the signature table, including dead
// slots, per spec.md §6.
func (w *World) GetEntityCount() int {
	return w.entities.count()
}

// GetEntityAt materializes the entity currently occupying index.
func (w *World) GetEntityAt(index uint32) Entity {
	return w.entities.at(index)
}

// GetEntityMask returns id's component mask.
func (w *World) GetEntityMask(id Entity) ComponentMask {
	return w.entities.mask(id)
}

// AddComponent attaches v to e. If e already has a T, this overwrites the
// value in place and fires Modified (SPEC_FULL.md's redesign of the
// source's "fires Added twice" behavior); otherwise it inserts, sets the
// mask bit, registers the store's blind-removal handle, ensures a
// Removed-trigger adapter exists, and fires Added. For a zero-sized T this
// is also how tags get attached — AddTag is a documented convenience alias,
// not a separate code path.
func AddComponent[T any](w *World, e Entity, v T) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	store := storeFor[T](w)
	id := idFor[T]()
	already := store.Contains(e)
	store.Insert(e, v)
	w.entities.masks[e.Index].Set(int(id))
	ensureSignalStorage[T](w)
	if already {
		triggerEvent[T](w, e, EventModified)
	} else {
		triggerEvent[T](w, e, EventAdded)
	}
	return store.Get(e), true
}

// RemoveComponent detaches e's T, if present. Removed fires before the
// component is erased and the mask bit cleared, so observers see the final
// value. No-op if e doesn't have T.
func RemoveComponent[T any](w *World, e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	id := idFor[T]()
	if !w.entities.masks[e.Index].Test(int(id)) {
		return false
	}
	triggerEvent[T](w, e, EventRemoved)
	storeFor[T](w).Remove(e)
	w.entities.masks[e.Index].Reset(int(id))
	return true
}

// HasComponent reports whether e currently has a T.
func HasComponent[T any](w *World, e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.entities.masks[e.Index].Test(int(idFor[T]()))
}

// HasComponentID reports whether e has the component registered under cid,
// without the caller knowing its type — the mask-only check the
// serialization collaborator relies on.
func (w *World) HasComponentID(e Entity, cid int) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.entities.masks[e.Index].Test(cid)
}

// GetComponent returns a pointer to e's T and true, or (nil, false) if e
// doesn't have one.
func GetComponent[T any](w *World, e Entity) (*T, bool) {
	if !HasComponent[T](w, e) {
		return nil, false
	}
	return storeFor[T](w).Get(e), true
}

// PatchComponent applies mutate to e's live T, then fires Modified. No-op if
// e doesn't have T. Atomicity against concurrent readers on other goroutines
// is not guaranteed — the World is not thread-safe (spec.md §5).
func PatchComponent[T any](w *World, e Entity, mutate func(*T)) {
	if !HasComponent[T](w, e) {
		return
	}
	mutate(storeFor[T](w).Get(e))
	triggerEvent[T](w, e, EventModified)
}

// AddTag attaches the zero-sized tag component T to e. It's a thin alias
// over AddComponent for callers who never want to spell out a value for a
// type with no fields; component.go auto-detects zero-sized T and routes
// both through the same TagStore.
func AddTag[T any](w *World, e Entity) bool {
	var zero T
	_, ok := AddComponent[T](w, e, zero)
	return ok
}

// HasTag reports whether e has the zero-sized tag component T.
func HasTag[T any](w *World, e Entity) bool {
	return HasComponent[T](w, e)
}

// RemoveTag detaches the zero-sized tag component T from e.
func RemoveTag[T any](w *World, e Entity) bool {
	return RemoveComponent[T](w, e)
}
