/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "testing"

func TestSetHostnameRejectsBraceCharacter(t *testing.T) {
	u, err := Parse("http://example.com/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	before := u.String()

	if err := u.SetHostname("loc{al}host"); err == nil {
		t.Fatalf("expected SetHostname to reject \"loc{al}host\"")
	}
	if got := u.String(); got != before {
		t.Errorf("URL mutated on rejected setter: got %q, want %q", got, before)
	}
}

func TestSetSchemeRejectsSpecialCrossing(t *testing.T) {
	u, err := Parse("http://example.com/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := u.SetScheme("mailto"); err == nil {
		t.Fatalf("expected SetScheme to reject crossing special/non-special")
	}
}

func TestSetSchemeAllowsSpecialToSpecial(t *testing.T) {
	u, err := Parse("http://example.com/path")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := u.SetScheme("https"); err != nil {
		t.Fatalf("SetScheme: %v", err)
	}
	if got := u.String(); got != "https://example.com/path" {
		t.Errorf("String = %q", got)
	}
}

func TestSetPortElidesDefault(t *testing.T) {
	u, err := Parse("http://example.com/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := u.SetPort("8080"); err != nil {
		t.Fatalf("SetPort: %v", err)
	}
	if p, ok := u.Port(); !ok || p != 8080 {
		t.Errorf("Port = %d, %v", p, ok)
	}
	if err := u.SetPort("80"); err != nil {
		t.Fatalf("SetPort: %v", err)
	}
	if _, ok := u.Port(); ok {
		t.Errorf("default port should be elided")
	}
}

func TestSetUsernamePasswordRejectedWithoutHost(t *testing.T) {
	u, err := Parse("mailto:user@example.com")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := u.SetUsername("x"); err == nil {
		t.Fatalf("expected SetUsername to be rejected for an opaque-path URL with no authority")
	}
	if err := u.SetPassword("x"); err == nil {
		t.Fatalf("expected SetPassword to be rejected for an opaque-path URL with no authority")
	}
}

func TestSetPathnameNormalizesDotSegments(t *testing.T) {
	u, err := Parse("https://example.com/a/b")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := u.SetPathname("/x/../y/./z"); err != nil {
		t.Fatalf("SetPathname: %v", err)
	}
	if got := u.Path(); got != "/y/z" {
		t.Errorf("Path = %q, want /y/z", got)
	}
}

func TestSetSearchAndHash(t *testing.T) {
	u, err := Parse("https://example.com/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := u.SetSearch("?q=1&r=2"); err != nil {
		t.Fatalf("SetSearch: %v", err)
	}
	if err := u.SetHash("#section"); err != nil {
		t.Fatalf("SetHash: %v", err)
	}
	if got := u.String(); got != "https://example.com/?q=1&r=2#section" {
		t.Errorf("String = %q", got)
	}
}

func TestPathSegmentsViewMutation(t *testing.T) {
	u, err := Parse("https://example.com/a/b/c")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v := u.PathSegmentsView()
	v.Insert(1, "x")
	v.Remove(3)
	v.Append("tail")
	if got := u.Path(); got != "/a/x/b/tail" {
		t.Errorf("Path = %q, want /a/x/b/tail", got)
	}
}
