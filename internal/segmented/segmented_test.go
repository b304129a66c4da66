package segmented

import "testing"

func TestSetAndLookup(t *testing.T) {
	l := New(0, 100, "default", nil)
	l.Set(10, 20, "a")
	l.Set(15, 30, "b")

	cases := map[int]string{
		0:  "default",
		9:  "default",
		10: "a",
		14: "a",
		15: "b",
		29: "b",
		30: "default",
		99: "default",
	}
	for key, want := range cases {
		if got := l.Lookup(key); got != want {
			t.Errorf("Lookup(%d) = %v, want %v", key, got, want)
		}
	}
}

func TestCoverageInvariant(t *testing.T) {
	l := New(0, 1000, 0, nil)
	l.Set(100, 200, 1)
	l.Set(50, 150, 2)
	l.Set(500, 999, 3)

	bounds, _ := l.Segments()
	prev := l.Lo
	for _, b := range bounds {
		if b <= prev {
			t.Fatalf("non-increasing bound: %d after %d", b, prev)
		}
		prev = b
	}
	if bounds[len(bounds)-1] != l.Hi {
		t.Fatalf("last bound %d != Hi %d", bounds[len(bounds)-1], l.Hi)
	}
}

func TestModify(t *testing.T) {
	l := New(0, 10, 1, nil)
	l.Modify(2, 5, func(v interface{}) interface{} { return v.(int) + 10 })
	if got := l.Lookup(3); got != 11 {
		t.Errorf("Lookup(3) = %v, want 11", got)
	}
	if got := l.Lookup(6); got != 1 {
		t.Errorf("Lookup(6) = %v, want 1", got)
	}
}

// uncomparableValue has a slice field, so Go's built-in == panics on
// it; Line must use the supplied eq instead of == when merging
// adjacent segments, or Set below would crash at runtime.
type uncomparableValue struct {
	tag  string
	tags []string
}

func sameTag(a, b interface{}) bool {
	return a.(uncomparableValue).tag == b.(uncomparableValue).tag
}

func TestSetWithUncomparableValue(t *testing.T) {
	l := New(0, 100, uncomparableValue{tag: "x", tags: []string{"x"}}, sameTag)
	l.Set(10, 20, uncomparableValue{tag: "y", tags: []string{"y"}})
	if got := l.Lookup(5).(uncomparableValue).tag; got != "x" {
		t.Errorf("Lookup(5).tag = %q, want x", got)
	}
	if got := l.Lookup(15).(uncomparableValue).tag; got != "y" {
		t.Errorf("Lookup(15).tag = %q, want y", got)
	}
}

func TestIndexedTableLookup(t *testing.T) {
	keys := []int{10, 20, 30, 1000}
	values := []interface{}{"a", "b", "c", "d"}
	idx := BuildIndexedTable(keys, values, 1100, 3)

	cases := map[int]string{
		0:   "a",
		9:   "a",
		11:  "b",
		25:  "c",
		999: "d",
	}
	for key, want := range cases {
		i, ok := idx.Lookup(key)
		if !ok || idx.Value(i) != want {
			t.Errorf("Lookup(%d) = %v (ok=%v), want %v", key, idx.Value(i), ok, want)
		}
	}
}
