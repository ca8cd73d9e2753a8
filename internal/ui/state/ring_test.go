package state

import (
	"reflect"
	"testing"
)

func TestViewWrapsAroundBackingRows(t *testing.T) {
	r := NewRing([]string{"a", "b", "c"})
	if got := r.View(3); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected view %#v", got)
	}
	r.Shift(1)
	if got := r.View(3); !reflect.DeepEqual(got, []string{"b", "c", "a"}) {
		t.Fatalf("expected rotated view, got %#v", got)
	}
	if got := r.View(5); !reflect.DeepEqual(got, []string{"b", "c", "a", "b", "c"}) {
		t.Fatalf("expected repeating view when k exceeds size, got %#v", got)
	}
	if got := r.View(2); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("unexpected short view %#v", got)
	}
}

func TestViewLengthIsAlwaysK(t *testing.T) {
	r := NewRing([]string{"x", "y"})
	for k := 1; k <= 7; k++ {
		if got := len(r.View(k)); got != k {
			t.Fatalf("expected view length %d, got %d", k, got)
		}
	}
}

func TestEmptyRingYieldsEmptyView(t *testing.T) {
	r := NewRing(nil)
	if got := r.View(4); len(got) != 0 {
		t.Fatalf("expected empty view, got %#v", got)
	}
	r.Shift(3)
	if r.Offset() != 0 {
		t.Fatalf("expected shift on empty ring to be a no-op, got offset %d", r.Offset())
	}
}

func TestShiftFullRotationIsIdentity(t *testing.T) {
	r := NewRing([]string{"a", "b", "c", "d"})
	r.Shift(2)
	before := r.View(4)
	r.Shift(4)
	if got := r.View(4); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected shift(n) identity, got %#v want %#v", got, before)
	}
	r.Shift(-4)
	if got := r.View(4); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected shift(-n) identity, got %#v want %#v", got, before)
	}
}

func TestShiftComposes(t *testing.T) {
	a := NewRing([]string{"a", "b", "c", "d", "e"})
	b := NewRing([]string{"a", "b", "c", "d", "e"})
	a.Shift(3)
	a.Shift(4)
	b.Shift(7)
	if !reflect.DeepEqual(a.View(5), b.View(5)) {
		t.Fatalf("expected shift(a);shift(b) == shift(a+b), got %#v vs %#v", a.View(5), b.View(5))
	}
	a.Shift(-9)
	b.Shift(-9)
	if !reflect.DeepEqual(a.View(5), b.View(5)) {
		t.Fatalf("negative composition mismatch: %#v vs %#v", a.View(5), b.View(5))
	}
}

func TestShiftNormalizesNegativeSteps(t *testing.T) {
	r := NewRing([]string{"a", "b", "c"})
	r.Shift(-1)
	if r.Offset() != 2 {
		t.Fatalf("expected offset 2 after shift(-1), got %d", r.Offset())
	}
	if got := r.View(1); got[0] != "c" {
		t.Fatalf("expected view to start at c, got %q", got[0])
	}
}
