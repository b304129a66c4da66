package ipaddr

import "testing"

func TestParseIPv6(t *testing.T) {
	addr, err := ParseIPv6("2001::ce49:7601:e866:efff:62c3:fffe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [8]uint16{0x2001, 0, 0xce49, 0x7601, 0xe866, 0xefff, 0x62c3, 0xfffe}
	if addr != want {
		t.Errorf("got %v, want %v", addr, want)
	}
	// The single zero piece is not a run of two or more, so it is
	// written out rather than compressed to "::".
	if got := SerializeIPv6(addr); got != "[2001:0:ce49:7601:e866:efff:62c3:fffe]" {
		t.Errorf("Serialize = %q", got)
	}
}

func TestParseIPv6AllZero(t *testing.T) {
	addr, err := ParseIPv6("::")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != ([8]uint16{}) {
		t.Errorf("got %v, want all-zero", addr)
	}
	if got := SerializeIPv6(addr); got != "[::]" {
		t.Errorf("Serialize(all-zero) = %q", got)
	}
}

func TestParseIPv6EmbeddedIPv4(t *testing.T) {
	addr, err := ParseIPv6("::ffff:192.0.2.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [8]uint16{0, 0, 0, 0, 0, 0xffff, 0xc000, 0x0201}
	if addr != want {
		t.Errorf("got %v, want %v", addr, want)
	}
}

func TestParseIPv6Errors(t *testing.T) {
	cases := []string{":1", "1:", "1::2::3", "1:2:3:4:5:6:7:8:9", "12345::", "xyz::"}
	for _, c := range cases {
		if _, err := ParseIPv6(c); err == nil {
			t.Errorf("ParseIPv6(%q) expected error", c)
		}
	}
}

func TestIPv4RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 0xFFFFFFFF, 3237937669, 3926458368}
	for _, v := range values {
		s := SerializeIPv4(v)
		got, ok := ParseIPv4(s)
		if !ok || got != v {
			t.Errorf("round trip failed for %d: serialize=%q got=%d ok=%v", v, s, got, ok)
		}
	}
}

func TestParseIPv4Shorthands(t *testing.T) {
	cases := map[string]uint32{
		"0xC0.077601005": 3237937669,
		"234.011.0":       3926458368,
	}
	for in, want := range cases {
		got, ok := ParseIPv4(in)
		if !ok || got != want {
			t.Errorf("ParseIPv4(%q) = %d, %v; want %d", in, got, ok, want)
		}
	}
	if got := SerializeIPv4(3237937669); got != "192.255.2.5" {
		t.Errorf("Serialize(3237937669) = %q", got)
	}
	if got := SerializeIPv4(3926458368); got != "234.9.0.0" {
		t.Errorf("Serialize(3926458368) = %q", got)
	}
}

func TestParseIPv4Invalid(t *testing.T) {
	cases := []string{"1.2.3.4.5", "1..2", "1.2.3..", "256.0.0.1", ""}
	for _, c := range cases {
		if _, ok := ParseIPv4(c); ok {
			t.Errorf("ParseIPv4(%q) expected failure", c)
		}
	}
}
