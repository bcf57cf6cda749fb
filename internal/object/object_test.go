package object

import "testing"

func TestValueEqualPrimitives(t *testing.T) {
	if !Int(5).Equal(Int(5)) {
		t.Error("5 should equal 5")
	}
	if Int(5).Equal(Int(6)) {
		t.Error("5 should not equal 6")
	}
	if !Nil().Equal(Nil()) {
		t.Error("nil should equal nil")
	}
	if !Int(5).Equal(Nil()) {
		t.Error("any value should equal nil per spec's either-side-nil rule")
	}
	if Int(5).Equal(Double(5)) {
		t.Error("int and double are distinct kinds and must not compare equal")
	}
}

func TestValueEqualObjectsCompareByIdentifier(t *testing.T) {
	if !Object(3).Equal(Object(3)) {
		t.Error("same identifier should compare equal")
	}
	if Object(3).Equal(Object(4)) {
		t.Error("different identifiers should not compare equal")
	}
}

func TestHeapAllocIsMonotonicAndNeverReused(t *testing.T) {
	h := NewHeap()
	id1 := h.Alloc("Point", map[string]Value{"x": Int(0)})
	id2 := h.Alloc("Point", map[string]Value{"x": Int(1)})
	if id1 == id2 {
		t.Fatal("heap identifiers must be distinct")
	}
	r1, ok := h.Get(id1)
	if !ok || r1.Fields["x"].Int != 0 {
		t.Errorf("got %+v, %v", r1, ok)
	}
	r2, ok := h.Get(id2)
	if !ok || r2.Fields["x"].Int != 1 {
		t.Errorf("got %+v, %v", r2, ok)
	}
}

func TestValueStringRendersLiteralText(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Int(42), "42"},
		{Str("hi"), "hi"},
		{Bool(true), "true"},
		{Char('a'), "a"},
		{Nil(), "nil"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}
