package idna

import "github.com/go-weburl/weburl/internal/segmented"

// Status is the IDNA mapping status of a code point, per UTS #46
// table 2.
type Status int

const (
	StatusValid Status = iota
	StatusIgnored
	StatusMapped
	StatusDeviation
	StatusDisallowed
	// StatusDisallowedSTD3Valid is valid unless use_std3_ascii_rules is
	// set, in which case it is disallowed.
	StatusDisallowedSTD3Valid
	// StatusDisallowedSTD3Mapped is mapped unless use_std3_ascii_rules
	// is set, in which case it is disallowed.
	StatusDisallowedSTD3Mapped
)

// entry is one IDNA mapping-table row: a status, and for mapped/
// disallowed-STD3-mapped rows, the replacement scalar(s). The real
// UTS46 table packs these into a 64-bit arena-indexed form;
// here the replacements arena is simply a []rune slice indexed by
// (offset, length), which is the same shape without the bit-packing.
type entry struct {
	status Status
	repl   []rune
}

var replacementsArena []rune

func internRepl(rs ...rune) []rune {
	start := len(replacementsArena)
	replacementsArena = append(replacementsArena, rs...)
	return replacementsArena[start : start+len(rs)][:len(rs):len(rs)]
}

var mappingTable *segmented.Line

// mappingIndex is the runtime lookup structure: mappingTable is built
// once at init time using SegmentedLine's split/coalesce machinery,
// then frozen into a flat sorted table plus a bucket index so lookup
// does a narrowed binary search instead of walking SegmentedLine's own
// (simpler but unindexed) segment search.
var mappingIndex *segmented.IndexedTable

func entriesEqual(a, b interface{}) bool {
	ea, eb := a.(entry), b.(entry)
	return ea.status == eb.status && reprEqual(ea.repl, eb.repl)
}

func init() {
	mappingTable = segmented.New(0, 0x110000, entry{status: StatusValid}, entriesEqual)

	// ASCII block, modeled on the real UTS46 table's ASCII section:
	// controls and most punctuation are STD3-gated, letters/digits are
	// valid, uppercase maps to lowercase, '-' and '.' are valid.
	set := func(lo, hi int, e entry) { mappingTable.Set(lo, hi, e) }

	set(0x00, 0x2D, entry{status: StatusDisallowedSTD3Valid})
	set(0x2D, 0x2E, entry{status: StatusValid})   // '-'
	set(0x2E, 0x2F, entry{status: StatusValid})   // '.'
	set(0x2F, 0x30, entry{status: StatusDisallowedSTD3Valid})
	set(0x30, 0x3A, entry{status: StatusValid}) // '0'-'9'
	set(0x3A, 0x41, entry{status: StatusDisallowedSTD3Valid})
	for c := 'A'; c <= 'Z'; c++ {
		mappingTable.Set(int(c), int(c)+1, entry{status: StatusMapped, repl: internRepl(c - 'A' + 'a')})
	}
	set(0x5B, 0x61, entry{status: StatusDisallowedSTD3Valid})
	set(0x7B, 0x80, entry{status: StatusDisallowedSTD3Valid})

	// Deviation characters (non-transitional processing: valid, pass
	// through unchanged).
	for _, c := range []rune{0x00DF, 0x03C2, 0x200C, 0x200D} {
		mappingTable.Set(int(c), int(c)+1, entry{status: StatusDeviation})
	}

	// Surrogates and BMP noncharacters can never appear in well-formed
	// UTF-8 input but are disallowed for completeness/robustness.
	set(0xD800, 0xE000, entry{status: StatusDisallowed})
	set(0xFDD0, 0xFDF0, entry{status: StatusDisallowed})
	for plane := 0; plane < 17; plane++ {
		base := plane * 0x10000
		mappingTable.Set(base+0xFFFE, base+0x10000, entry{status: StatusDisallowed})
	}

	mappingTable.CombineSegments(entriesEqual)

	bounds, values := mappingTable.Segments()
	mappingIndex = segmented.BuildIndexedTable(bounds, values, 0x110000, 8)
}

func reprEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// lookup returns the mapping entry for code point cp. Every code
// point in [0, 0x110000) has exactly one entry: the table is built as
// a single segment initially valid and is only ever narrowed, never
// leaving gaps, so mappingIndex always reports a hit for an in-range cp.
func lookup(cp rune) entry {
	if cp < 0 || int(cp) >= 0x110000 {
		return entry{status: StatusDisallowed}
	}
	i, ok := mappingIndex.Lookup(int(cp))
	if !ok {
		return entry{status: StatusDisallowed}
	}
	return mappingIndex.Value(i).(entry)
}
