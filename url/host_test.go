/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "testing"

func TestParseHostIPv4Shorthand(t *testing.T) {
	h, err := parseHost("0xC0.077601005", true)
	if err != nil {
		t.Fatalf("parseHost: %v", err)
	}
	if h.Kind != HostIPv4 || h.IPv4 != 3237937669 {
		t.Errorf("host = %+v, want IPv4(3237937669)", h)
	}
}

func TestParseHostIPv6Bracketed(t *testing.T) {
	h, err := parseHost("[2001::ce49:7601:e866:efff:62c3:fffe]", true)
	if err != nil {
		t.Fatalf("parseHost: %v", err)
	}
	if h.Kind != HostIPv6 {
		t.Fatalf("host kind = %v, want IPv6", h.Kind)
	}
	want := [8]uint16{0x2001, 0, 0xce49, 0x7601, 0xe866, 0xefff, 0x62c3, 0xfffe}
	if h.IPv6 != want {
		t.Errorf("host = %+v, want %+v", h.IPv6, want)
	}
}

func TestParseHostOpaqueNonSpecial(t *testing.T) {
	h, err := parseHost("Example.COM", false)
	if err != nil {
		t.Fatalf("parseHost: %v", err)
	}
	if h.Kind != HostOpaque || h.Opaque != "Example.COM" {
		t.Errorf("host = %+v, want opaque Example.COM (case preserved)", h)
	}
}

func TestParseHostRejectsForbiddenByte(t *testing.T) {
	if _, err := parseHost("exa mple.com", true); err == nil {
		t.Fatalf("expected rejection of an unescaped space in a special host")
	}
}

func TestOriginTuple(t *testing.T) {
	u, err := Parse("https://example.com:8443/x")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	o := u.Origin()
	if o.Opaque {
		t.Fatalf("origin should not be opaque")
	}
	if got := o.String(); got != "https://example.com:8443" {
		t.Errorf("Origin = %q", got)
	}
}

func TestOriginOmitsDefaultPort(t *testing.T) {
	u, err := Parse("https://example.com/x")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.Origin().String(); got != "https://example.com" {
		t.Errorf("Origin = %q, want https://example.com (no :443)", got)
	}
}

func TestOriginOpaqueForNonSpecialScheme(t *testing.T) {
	u, err := Parse("mailto:user@example.com")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !u.Origin().Opaque {
		t.Errorf("expected opaque origin for mailto:")
	}
	if u.Origin().String() != "null" {
		t.Errorf("Origin.String() = %q, want null", u.Origin().String())
	}
}
