package idna

import "testing"

func TestMappingTableCoversFullRange(t *testing.T) {
	// Spot-check boundary and representative code points; the segment
	// line itself guarantees full coverage with no gaps (see
	// internal/segmented for the structural invariant tests). entry
	// holds a []rune field and is therefore not comparable with ==, so
	// this also guards against init() panicking on package load: it
	// runs before any of this file's tests do.
	samples := []rune{0x00, 0x2D, 0x41, 0x61, 0x7A, 0x7F, 0xDF, 0x200C, 0xD800, 0x10FFFF}
	for _, r := range samples {
		_ = lookup(r) // must not panic
	}
}

func TestUppercaseMapsToLowercase(t *testing.T) {
	e := lookup('A')
	if e.status != StatusMapped || string(e.repl) != "a" {
		t.Errorf("lookup('A') = %+v, want mapped to 'a'", e)
	}
}

func TestDeviationCharactersPassThrough(t *testing.T) {
	for _, r := range []rune{0x00DF, 0x03C2, 0x200C, 0x200D} {
		if lookup(r).status != StatusDeviation {
			t.Errorf("lookup(%U) status = %v, want StatusDeviation", r, lookup(r).status)
		}
	}
}

func TestSurrogatesDisallowed(t *testing.T) {
	if lookup(0xD900).status != StatusDisallowed {
		t.Errorf("surrogate should be disallowed")
	}
}
