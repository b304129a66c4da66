// Package segmented implements SegmentedLine, an ordered set of
// half-open ranges over an integer key space that always fully covers
// a fixed [lo, hi) bound, used to build range-keyed tables such as the
// IDNA mapping table at data-generation time.
package segmented

// Line is a SegmentedLine<K,V>: a sequence of segments, each stored as
// its (exclusive) upper bound and a value, partitioning [Lo, Hi) with
// no gaps or overlaps. The first segment's implicit lower bound is Lo;
// the last segment's upper bound is always Hi.
type Line struct {
	Lo, Hi int
	bounds []int
	values []interface{}
	eq     func(a, b interface{}) bool
}

// New creates a Line covering [lo, hi) as a single segment with value v.
// eq reports whether two values are equal for the purposes of
// automatically merging adjacent segments after Set/Modify/MapValues;
// pass a value-aware comparison whenever V can hold an uncomparable
// type (e.g. one with a slice field) instead of relying on ==, which
// panics at runtime for such types. A nil eq defaults to ==.
func New(lo, hi int, v interface{}, eq func(a, b interface{}) bool) *Line {
	if hi <= lo {
		panic("segmented: hi must be > lo")
	}
	if eq == nil {
		eq = func(a, b interface{}) bool { return a == b }
	}
	return &Line{Lo: lo, Hi: hi, bounds: []int{hi}, values: []interface{}{v}, eq: eq}
}

// segmentIndex returns the index of the segment containing key.
func (l *Line) segmentIndex(key int) int {
	lo, hi := 0, len(l.bounds)
	for lo < hi {
		mid := (lo + hi) / 2
		if key < l.bounds[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

func (l *Line) lowerBoundOf(i int) int {
	if i == 0 {
		return l.Lo
	}
	return l.bounds[i-1]
}

// split ensures a segment boundary exists exactly at key (if key is
// within the line's bounds and not already a boundary), by splitting
// the segment that currently contains it.
func (l *Line) split(key int) {
	if key <= l.Lo || key >= l.Hi {
		return
	}
	i := l.segmentIndex(key)
	if l.lowerBoundOf(i) == key {
		return
	}
	l.bounds = append(l.bounds, 0)
	copy(l.bounds[i+1:], l.bounds[i:])
	l.bounds[i] = key
	l.values = append(l.values, nil)
	copy(l.values[i+1:], l.values[i:])
	l.values[i] = l.values[i+1]
}

// Set overwrites every segment overlapping [from, to) with value v.
func (l *Line) Set(from, to int, v interface{}) {
	l.Modify(from, to, func(interface{}) interface{} { return v })
}

// Modify applies f to the value of every segment overlapping
// [from, to), splitting segment endpoints as needed so the change
// applies to exactly that range.
func (l *Line) Modify(from, to int, f func(interface{}) interface{}) {
	if from >= to {
		return
	}
	if from < l.Lo {
		from = l.Lo
	}
	if to > l.Hi {
		to = l.Hi
	}
	l.split(from)
	l.split(to)

	start := l.segmentIndex(from)
	for i := start; i < len(l.bounds) && l.lowerBoundOf(i) < to; i++ {
		l.values[i] = f(l.values[i])
	}
	l.coalesce()
}

// MapValues applies f to every segment's value in place.
func (l *Line) MapValues(f func(interface{}) interface{}) {
	for i := range l.values {
		l.values[i] = f(l.values[i])
	}
	l.coalesce()
}

// Lookup returns the value of the segment containing key. Panics if
// key is outside [Lo, Hi).
func (l *Line) Lookup(key int) interface{} {
	if key < l.Lo || key >= l.Hi {
		panic("segmented: key out of bounds")
	}
	return l.values[l.segmentIndex(key)]
}

// CombineSegments folds adjacent segments together wherever eq
// reports their values should be merged, shrinking the segment count.
// Used to deduplicate a freshly-built table before serialization.
func (l *Line) CombineSegments(eq func(a, b interface{}) bool) {
	l.coalesceWith(eq)
}

func (l *Line) coalesce() {
	l.coalesceWith(l.eq)
}

func (l *Line) coalesceWith(eq func(a, b interface{}) bool) {
	if len(l.bounds) == 0 {
		return
	}
	newBounds := l.bounds[:1]
	newValues := l.values[:1]
	for i := 1; i < len(l.bounds); i++ {
		if eq(newValues[len(newValues)-1], l.values[i]) {
			newBounds[len(newBounds)-1] = l.bounds[i]
			continue
		}
		newBounds = append(newBounds, l.bounds[i])
		newValues = append(newValues, l.values[i])
	}
	l.bounds = newBounds
	l.values = newValues
}

// Segments returns the (upperBound, value) pairs in order, for
// serialization into a static table.
func (l *Line) Segments() (bounds []int, values []interface{}) {
	return append([]int(nil), l.bounds...), append([]interface{}(nil), l.values...)
}

// Len reports the number of segments currently in the line.
func (l *Line) Len() int { return len(l.bounds) }
