package sparsecs

// Code in this file follows the same shape for every arity 2..8: a view
// holds one componentStore per type parameter, picks whichever store is
// currently smallest to drive iteration (ties go to the earliest-listed
// type), and calls fn once per entity whose mask contains every requested
// bit. See view.go for View1 and GetView1.

// View2 iterates every entity that has T1 and T2.
type View2[T1, T2 any] struct {
	w      *World
	mask   ComponentMask
	store1 componentStore[T1]
	store2 componentStore[T2]
}

// GetView2 builds a view over entities with T1 and T2.
func GetView2[T1, T2 any](w *World) View2[T1, T2] {
	var m ComponentMask
	m.Set(int(idFor[T1]()))
	m.Set(int(idFor[T2]()))
	return View2[T1, T2]{w: w, mask: m, store1: storeFor[T1](w), store2: storeFor[T2](w)}
}

// Each invokes fn once per matching entity, driving iteration over whichever
// of T1, T2's stores is currently smallest.
func (v View2[T1, T2]) Each(fn func(Entity, *T1, *T2)) {
	if v.store1.Size() <= v.store2.Size() {
		for _, e := range v.store1.Entities() {
			if v.w.GetEntityMask(e).Contains(v.mask) {
				fn(e, v.store1.Get(e), v.store2.Get(e))
			}
		}
		return
	}
	for _, e := range v.store2.Entities() {
		if v.w.GetEntityMask(e).Contains(v.mask) {
			fn(e, v.store1.Get(e), v.store2.Get(e))
		}
	}
}

// Count returns the number of matching entities by running Each with a
// counting callback.
func (v View2[T1, T2]) Count() int {
	n := 0
	v.Each(func(Entity, *T1, *T2) { n++ })
	return n
}

// View3 iterates every entity that has T1, T2, and T3.
type View3[T1, T2, T3 any] struct {
	w      *World
	mask   ComponentMask
	store1 componentStore[T1]
	store2 componentStore[T2]
	store3 componentStore[T3]
}

// GetView3 builds a view over entities with T1, T2, and T3.
func GetView3[T1, T2, T3 any](w *World) View3[T1, T2, T3] {
	var m ComponentMask
	m.Set(int(idFor[T1]()))
	m.Set(int(idFor[T2]()))
	m.Set(int(idFor[T3]()))
	return View3[T1, T2, T3]{w: w, mask: m, store1: storeFor[T1](w), store2: storeFor[T2](w), store3: storeFor[T3](w)}
}

func (v View3[T1, T2, T3]) drivingSize() int {
	n := v.store1.Size()
	if s := v.store2.Size(); s < n {
		n = s
	}
	if s := v.store3.Size(); s < n {
		n = s
	}
	return n
}

// Each invokes fn once per matching entity, driving iteration over whichever
// of T1, T2, T3's stores is currently smallest.
func (v View3[T1, T2, T3]) Each(fn func(Entity, *T1, *T2, *T3)) {
	min := v.drivingSize()
	call := func(e Entity) {
		if v.w.GetEntityMask(e).Contains(v.mask) {
			fn(e, v.store1.Get(e), v.store2.Get(e), v.store3.Get(e))
		}
	}
	switch {
	case v.store1.Size() == min:
		for _, e := range v.store1.Entities() {
			call(e)
		}
	case v.store2.Size() == min:
		for _, e := range v.store2.Entities() {
			call(e)
		}
	default:
		for _, e := range v.store3.Entities() {
			call(e)
		}
	}
}

// Count returns the number of matching entities by running Each with a
// counting callback.
func (v View3[T1, T2, T3]) Count() int {
	n := 0
	v.Each(func(Entity, *T1, *T2, *T3) { n++ })
	return n
}

// View4 iterates every entity that has T1, T2, T3, and T4.
type View4[T1, T2, T3, T4 any] struct {
	w      *World
	mask   ComponentMask
	store1 componentStore[T1]
	store2 componentStore[T2]
	store3 componentStore[T3]
	store4 componentStore[T4]
}

// GetView4 builds a view over entities with T1, T2, T3, and T4.
func GetView4[T1, T2, T3, T4 any](w *World) View4[T1, T2, T3, T4] {
	var m ComponentMask
	m.Set(int(idFor[T1]()))
	m.Set(int(idFor[T2]()))
	m.Set(int(idFor[T3]()))
	m.Set(int(idFor[T4]()))
	return View4[T1, T2, T3, T4]{
		w: w, mask: m,
		store1: storeFor[T1](w), store2: storeFor[T2](w), store3: storeFor[T3](w), store4: storeFor[T4](w),
	}
}

func (v View4[T1, T2, T3, T4]) sizes() [4]int {
	return [4]int{v.store1.Size(), v.store2.Size(), v.store3.Size(), v.store4.Size()}
}

func driverIndex(sizes []int) int {
	best := 0
	for i := 1; i < len(sizes); i++ {
		if sizes[i] < sizes[best] {
			best = i
		}
	}
	return best
}

// Each invokes fn once per matching entity, driving iteration over whichever
// of the four stores is currently smallest.
func (v View4[T1, T2, T3, T4]) Each(fn func(Entity, *T1, *T2, *T3, *T4)) {
	s := v.sizes()
	call := func(e Entity) {
		if v.w.GetEntityMask(e).Contains(v.mask) {
			fn(e, v.store1.Get(e), v.store2.Get(e), v.store3.Get(e), v.store4.Get(e))
		}
	}
	switch driverIndex(s[:]) {
	case 0:
		for _, e := range v.store1.Entities() {
			call(e)
		}
	case 1:
		for _, e := range v.store2.Entities() {
			call(e)
		}
	case 2:
		for _, e := range v.store3.Entities() {
			call(e)
		}
	default:
		for _, e := range v.store4.Entities() {
			call(e)
		}
	}
}

// Count returns the number of matching entities by running Each with a
// counting callback.
func (v View4[T1, T2, T3, T4]) Count() int {
	n := 0
	v.Each(func(Entity, *T1, *T2, *T3, *T4) { n++ })
	return n
}

// View5 iterates every entity that has T1..T5.
type View5[T1, T2, T3, T4, T5 any] struct {
	w      *World
	mask   ComponentMask
	store1 componentStore[T1]
	store2 componentStore[T2]
	store3 componentStore[T3]
	store4 componentStore[T4]
	store5 componentStore[T5]
}

// GetView5 builds a view over entities with T1..T5.
func GetView5[T1, T2, T3, T4, T5 any](w *World) View5[T1, T2, T3, T4, T5] {
	var m ComponentMask
	m.Set(int(idFor[T1]()))
	m.Set(int(idFor[T2]()))
	m.Set(int(idFor[T3]()))
	m.Set(int(idFor[T4]()))
	m.Set(int(idFor[T5]()))
	return View5[T1, T2, T3, T4, T5]{
		w: w, mask: m,
		store1: storeFor[T1](w), store2: storeFor[T2](w), store3: storeFor[T3](w),
		store4: storeFor[T4](w), store5: storeFor[T5](w),
	}
}

func (v View5[T1, T2, T3, T4, T5]) sizes() [5]int {
	return [5]int{v.store1.Size(), v.store2.Size(), v.store3.Size(), v.store4.Size(), v.store5.Size()}
}

// Each invokes fn once per matching entity, driving iteration over whichever
// of the five stores is currently smallest.
func (v View5[T1, T2, T3, T4, T5]) Each(fn func(Entity, *T1, *T2, *T3, *T4, *T5)) {
	s := v.sizes()
	call := func(e Entity) {
		if v.w.GetEntityMask(e).Contains(v.mask) {
			fn(e, v.store1.Get(e), v.store2.Get(e), v.store3.Get(e), v.store4.Get(e), v.store5.Get(e))
		}
	}
	switch driverIndex(s[:]) {
	case 0:
		for _, e := range v.store1.Entities() {
			call(e)
		}
	case 1:
		for _, e := range v.store2.Entities() {
			call(e)
		}
	case 2:
		for _, e := range v.store3.Entities() {
			call(e)
		}
	case 3:
		for _, e := range v.store4.Entities() {
			call(e)
		}
	default:
		for _, e := range v.store5.Entities() {
			call(e)
		}
	}
}

// Count returns the number of matching entities by running Each with a
// counting callback.
func (v View5[T1, T2, T3, T4, T5]) Count() int {
	n := 0
	v.Each(func(Entity, *T1, *T2, *T3, *T4, *T5) { n++ })
	return n
}

// View6 iterates every entity that has T1..T6.
type View6[T1, T2, T3, T4, T5, T6 any] struct {
	w      *World
	mask   ComponentMask
	store1 componentStore[T1]
	store2 componentStore[T2]
	store3 componentStore[T3]
	store4 componentStore[T4]
	store5 componentStore[T5]
	store6 componentStore[T6]
}

// GetView6 builds a view over entities with T1..T6.
func GetView6[T1, T2, T3, T4, T5, T6 any](w *World) View6[T1, T2, T3, T4, T5, T6] {
	var m ComponentMask
	m.Set(int(idFor[T1]()))
	m.Set(int(idFor[T2]()))
	m.Set(int(idFor[T3]()))
	m.Set(int(idFor[T4]()))
	m.Set(int(idFor[T5]()))
	m.Set(int(idFor[T6]()))
	return View6[T1, T2, T3, T4, T5, T6]{
		w: w, mask: m,
		store1: storeFor[T1](w), store2: storeFor[T2](w), store3: storeFor[T3](w),
		store4: storeFor[T4](w), store5: storeFor[T5](w), store6: storeFor[T6](w),
	}
}

func (v View6[T1, T2, T3, T4, T5, T6]) sizes() [6]int {
	return [6]int{v.store1.Size(), v.store2.Size(), v.store3.Size(), v.store4.Size(), v.store5.Size(), v.store6.Size()}
}

// Each invokes fn once per matching entity, driving iteration over whichever
// of the six stores is currently smallest.
func (v View6[T1, T2, T3, T4, T5, T6]) Each(fn func(Entity, *T1, *T2, *T3, *T4, *T5, *T6)) {
	s := v.sizes()
	call := func(e Entity) {
		if v.w.GetEntityMask(e).Contains(v.mask) {
			fn(e, v.store1.Get(e), v.store2.Get(e), v.store3.Get(e), v.store4.Get(e), v.store5.Get(e), v.store6.Get(e))
		}
	}
	switch driverIndex(s[:]) {
	case 0:
		for _, e := range v.store1.Entities() {
			call(e)
		}
	case 1:
		for _, e := range v.store2.Entities() {
			call(e)
		}
	case 2:
		for _, e := range v.store3.Entities() {
			call(e)
		}
	case 3:
		for _, e := range v.store4.Entities() {
			call(e)
		}
	case 4:
		for _, e := range v.store5.Entities() {
			call(e)
		}
	default:
		for _, e := range v.store6.Entities() {
			call(e)
		}
	}
}

// Count returns the number of matching entities by running Each with a
// counting callback.
func (v View6[T1, T2, T3, T4, T5, T6]) Count() int {
	n := 0
	v.Each(func(Entity, *T1, *T2, *T3, *T4, *T5, *T6) { n++ })
	return n
}

// View7 iterates every entity that has T1..T7.
type View7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	w      *World
	mask   ComponentMask
	store1 componentStore[T1]
	store2 componentStore[T2]
	store3 componentStore[T3]
	store4 componentStore[T4]
	store5 componentStore[T5]
	store6 componentStore[T6]
	store7 componentStore[T7]
}

// GetView7 builds a view over entities with T1..T7.
func GetView7[T1, T2, T3, T4, T5, T6, T7 any](w *World) View7[T1, T2, T3, T4, T5, T6, T7] {
	var m ComponentMask
	m.Set(int(idFor[T1]()))
	m.Set(int(idFor[T2]()))
	m.Set(int(idFor[T3]()))
	m.Set(int(idFor[T4]()))
	m.Set(int(idFor[T5]()))
	m.Set(int(idFor[T6]()))
	m.Set(int(idFor[T7]()))
	return View7[T1, T2, T3, T4, T5, T6, T7]{
		w: w, mask: m,
		store1: storeFor[T1](w), store2: storeFor[T2](w), store3: storeFor[T3](w),
		store4: storeFor[T4](w), store5: storeFor[T5](w), store6: storeFor[T6](w), store7: storeFor[T7](w),
	}
}

func (v View7[T1, T2, T3, T4, T5, T6, T7]) sizes() [7]int {
	return [7]int{
		v.store1.Size(), v.store2.Size(), v.store3.Size(), v.store4.Size(),
		v.store5.Size(), v.store6.Size(), v.store7.Size(),
	}
}

// Each invokes fn once per matching entity, driving iteration over whichever
// of the seven stores is currently smallest.
func (v View7[T1, T2, T3, T4, T5, T6, T7]) Each(fn func(Entity, *T1, *T2, *T3, *T4, *T5, *T6, *T7)) {
	s := v.sizes()
	call := func(e Entity) {
		if v.w.GetEntityMask(e).Contains(v.mask) {
			fn(e, v.store1.Get(e), v.store2.Get(e), v.store3.Get(e), v.store4.Get(e),
				v.store5.Get(e), v.store6.Get(e), v.store7.Get(e))
		}
	}
	switch driverIndex(s[:]) {
	case 0:
		for _, e := range v.store1.Entities() {
			call(e)
		}
	case 1:
		for _, e := range v.store2.Entities() {
			call(e)
		}
	case 2:
		for _, e := range v.store3.Entities() {
			call(e)
		}
	case 3:
		for _, e := range v.store4.Entities() {
			call(e)
		}
	case 4:
		for _, e := range v.store5.Entities() {
			call(e)
		}
	case 5:
		for _, e := range v.store6.Entities() {
			call(e)
		}
	default:
		for _, e := range v.store7.Entities() {
			call(e)
		}
	}
}

// Count returns the number of matching entities by running Each with a
// counting callback.
func (v View7[T1, T2, T3, T4, T5, T6, T7]) Count() int {
	n := 0
	v.Each(func(Entity, *T1, *T2, *T3, *T4, *T5, *T6, *T7) { n++ })
	return n
}

// View8 iterates every entity that has T1..T8.
type View8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	w      *World
	mask   ComponentMask
	store1 componentStore[T1]
	store2 componentStore[T2]
	store3 componentStore[T3]
	store4 componentStore[T4]
	store5 componentStore[T5]
	store6 componentStore[T6]
	store7 componentStore[T7]
	store8 componentStore[T8]
}

// GetView8 builds a view over entities with T1..T8.
func GetView8[T1, T2, T3, T4, T5, T6, T7, T8 any](w *World) View8[T1, T2, T3, T4, T5, T6, T7, T8] {
	var m ComponentMask
	m.Set(int(idFor[T1]()))
	m.Set(int(idFor[T2]()))
	m.Set(int(idFor[T3]()))
	m.Set(int(idFor[T4]()))
	m.Set(int(idFor[T5]()))
	m.Set(int(idFor[T6]()))
	m.Set(int(idFor[T7]()))
	m.Set(int(idFor[T8]()))
	return View8[T1, T2, T3, T4, T5, T6, T7, T8]{
		w: w, mask: m,
		store1: storeFor[T1](w), store2: storeFor[T2](w), store3: storeFor[T3](w), store4: storeFor[T4](w),
		store5: storeFor[T5](w), store6: storeFor[T6](w), store7: storeFor[T7](w), store8: storeFor[T8](w),
	}
}

func (v View8[T1, T2, T3, T4, T5, T6, T7, T8]) sizes() [8]int {
	return [8]int{
		v.store1.Size(), v.store2.Size(), v.store3.Size(), v.store4.Size(),
		v.store5.Size(), v.store6.Size(), v.store7.Size(), v.store8.Size(),
	}
}

// Each invokes fn once per matching entity, driving iteration over whichever
// of the eight stores is currently smallest.
func (v View8[T1, T2, T3, T4, T5, T6, T7, T8]) Each(fn func(Entity, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8)) {
	s := v.sizes()
	call := func(e Entity) {
		if v.w.GetEntityMask(e).Contains(v.mask) {
			fn(e, v.store1.Get(e), v.store2.Get(e), v.store3.Get(e), v.store4.Get(e),
				v.store5.Get(e), v.store6.Get(e), v.store7.Get(e), v.store8.Get(e))
		}
	}
	switch driverIndex(s[:]) {
	case 0:
		for _, e := range v.store1.Entities() {
			call(e)
		}
	case 1:
		for _, e := range v.store2.Entities() {
			call(e)
		}
	case 2:
		for _, e := range v.store3.Entities() {
			call(e)
		}
	case 3:
		for _, e := range v.store4.Entities() {
			call(e)
		}
	case 4:
		for _, e := range v.store5.Entities() {
			call(e)
		}
	case 5:
		for _, e := range v.store6.Entities() {
			call(e)
		}
	case 6:
		for _, e := range v.store7.Entities() {
			call(e)
		}
	default:
		for _, e := range v.store8.Entities() {
			call(e)
		}
	}
}

// Count returns the number of matching entities by running Each with a
// counting callback.
func (v View8[T1, T2, T3, T4, T5, T6, T7, T8]) Count() int {
	n := 0
	v.Each(func(Entity, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8) { n++ })
	return n
}
