package sparsecs

import "testing"

func TestComponentMaskSetTestReset(t *testing.T) {
	var m ComponentMask
	if m.Any() {
		t.Fatal("zero-value mask should be empty")
	}
	m.Set(3)
	m.Set(130)
	if !m.Test(3) || !m.Test(130) {
		t.Fatal("expected both bits set")
	}
	if m.Test(4) {
		t.Fatal("bit 4 should not be set")
	}
	m.Reset(3)
	if m.Test(3) {
		t.Fatal("bit 3 should be cleared")
	}
	if !m.Test(130) {
		t.Fatal("bit 130 should remain set")
	}
}

func TestComponentMaskSetPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Set(256) to panic")
		}
	}()
	var m ComponentMask
	m.Set(maxComponentTypes)
}

func TestComponentMaskResetOutOfRangeIsNoop(t *testing.T) {
	var m ComponentMask
	m.Reset(maxComponentTypes + 5) // must not panic
}

func TestComponentMaskAndOrContains(t *testing.T) {
	var a, b ComponentMask
	a.Set(1)
	a.Set(2)
	b.Set(2)
	b.Set(3)

	and := a.And(b)
	if !and.Test(2) || and.Test(1) || and.Test(3) {
		t.Fatalf("unexpected AND result: %v", and)
	}

	or := a.Or(b)
	if !or.Test(1) || !or.Test(2) || !or.Test(3) {
		t.Fatalf("unexpected OR result: %v", or)
	}

	if !or.Contains(a) || !or.Contains(b) {
		t.Fatal("union mask should contain both operands")
	}
	if a.Contains(b) {
		t.Fatal("a should not contain b (a lacks bit 3)")
	}
}

func TestComponentMaskForEachSetBit(t *testing.T) {
	var m ComponentMask
	want := []int{0, 63, 64, 200, 255}
	for _, bit := range want {
		m.Set(bit)
	}
	var got []int
	m.ForEachSetBit(func(bit int) { got = append(got, bit) })
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
