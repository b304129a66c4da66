package segmented

import "sort"

// IndexedTable narrows a binary search over a sorted key/value table
// using a small precomputed index: index[i] is the first table entry
// whose key's top bits are >= i, letting Lookup skip straight to the
// right neighborhood before doing a final binary search.
type IndexedTable struct {
	keys   []int
	values []interface{}
	index  []int
	shift  uint
}

// BuildIndexedTable builds an IndexedTable over parallel sorted
// keys/values slices. k controls the index size (2^k buckets); keys
// must fit within [0, maxKey).
func BuildIndexedTable(keys []int, values []interface{}, maxKey int, k uint) *IndexedTable {
	if len(keys) != len(values) {
		panic("segmented: keys/values length mismatch")
	}
	if !sort.IntsAreSorted(keys) {
		panic("segmented: keys must be sorted")
	}
	buckets := 1 << k
	shift := uint(0)
	for (1 << shift) < ((maxKey + buckets - 1) / buckets) {
		shift++
	}
	index := make([]int, buckets+1)
	ki := 0
	for b := 0; b <= buckets; b++ {
		threshold := b << shift
		for ki < len(keys) && keys[ki] < threshold {
			ki++
		}
		index[b] = ki
	}
	return &IndexedTable{keys: keys, values: values, index: index, shift: shift}
}

// Lookup returns the index of the entry whose range may contain key,
// and whether one was found at all (false when key is at or beyond
// the last entry's upper bound).
func (t *IndexedTable) Lookup(key int) (int, bool) {
	bucket := key >> t.shift
	if bucket >= len(t.index)-1 {
		bucket = len(t.index) - 2
	}
	// index[bucket] only narrows the left edge: a range can straddle a
	// bucket boundary, so the search still runs to the table's end.
	lo := t.index[bucket]
	i := sort.Search(len(t.keys)-lo, func(i int) bool { return t.keys[lo+i] > key }) + lo
	if i >= len(t.keys) {
		return 0, false
	}
	return i, true
}

// Value returns the value at entry i.
func (t *IndexedTable) Value(i int) interface{} { return t.values[i] }

// Key returns the key (upper bound) at entry i.
func (t *IndexedTable) Key(i int) int { return t.keys[i] }
