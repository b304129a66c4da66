/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "testing"

func TestParseBasic(t *testing.T) {
	u, err := Parse("https://example.org/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Scheme() != "https" {
		t.Errorf("Scheme = %q, want https", u.Scheme())
	}
	if u.Host().Kind != HostDomain || u.Host().Domain != "example.org" {
		t.Errorf("Host = %+v, want Domain(example.org)", u.Host())
	}
	if got := u.Path(); got != "/" {
		t.Errorf("Path = %q, want /", got)
	}
	if got := u.String(); got != "https://example.org/" {
		t.Errorf("round-trip = %q", got)
	}
}

func TestParseManySlashes(t *testing.T) {
	u, err := Parse("https://////example.org///")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Host().Domain != "example.org" {
		t.Errorf("Host = %+v", u.Host())
	}
	if got := u.Path(); got != "///" {
		t.Errorf("Path = %q, want ///", got)
	}
}

func TestParseDotDotAndCase(t *testing.T) {
	u, err := Parse("https://EXAMPLE.com/../x")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Host().Domain != "example.com" {
		t.Errorf("Host = %+v, want example.com", u.Host())
	}
	if got := u.Path(); got != "/x" {
		t.Errorf("Path = %q, want /x", got)
	}
}

func TestParseDoubleAtSign(t *testing.T) {
	u, err := Parse("http://foo@evil.com:80@example.com/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Host().Domain != "example.com" {
		t.Errorf("Host = %+v, want example.com", u.Host())
	}
	if u.Username() != "foo@evil.com" {
		t.Errorf("Username = %q, want foo@evil.com (decoded)", u.Username())
	}
	// The ":80" that looks like a port belongs to the first (shadowed)
	// userinfo, not to an authority port: it is consumed as the
	// password once the real boundary '@' is found.
	if pw, has := u.UserPassword(); !has || pw != "80" {
		t.Errorf("password = %q, %v; want \"80\", true", pw, has)
	}
	if _, has := u.Port(); has {
		t.Errorf("port should be absent")
	}
	want := "http://foo%40evil.com:80@example.com/"
	if got := u.String(); got != want {
		t.Errorf("Serialize = %q, want %q", got, want)
	}
}

func TestParseIDNAHost(t *testing.T) {
	u, err := Parse("https://\u4f60\u597d\u4f60\u597d.cn/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Host().Domain != "xn--6qqa088eba.cn" {
		t.Errorf("Host = %+v, want xn--6qqa088eba.cn", u.Host())
	}
}

func TestParseFileDriveLetterPipe(t *testing.T) {
	u, err := Parse("file:///C|/demo")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Host().Kind != HostEmpty {
		t.Errorf("Host = %+v, want empty", u.Host())
	}
	if got := u.Path(); got != "/C:/demo" {
		t.Errorf("Path = %q, want /C:/demo", got)
	}
}

func TestParseFileHostPreserved(t *testing.T) {
	u, err := Parse("file://server/share")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !u.HasAuthority() {
		t.Fatalf("expected HasAuthority true for file: URL")
	}
	if u.Host().Kind != HostDomain || u.Host().Domain != "server" {
		t.Errorf("Host = %+v, want domain \"server\"", u.Host())
	}
	if got := u.String(); got != "file://server/share" {
		t.Errorf("Serialize = %q, want file://server/share (host must survive round-trip)", got)
	}
}

func TestParseFileEmptyHostCanonicalForm(t *testing.T) {
	u, err := Parse("file:///etc/passwd")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !u.HasAuthority() {
		t.Fatalf("expected HasAuthority true even for an empty file: host")
	}
	if got := u.String(); got != "file:///etc/passwd" {
		t.Errorf("Serialize = %q, want file:///etc/passwd", got)
	}
}

func TestParseMissingSchemeFails(t *testing.T) {
	if _, err := Parse("example.org/path"); err == nil {
		t.Fatalf("expected an error for a schemeless absolute parse")
	}
}

func TestParseOpaquePath(t *testing.T) {
	u, err := Parse("mailto:user@example.com")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !u.HasOpaquePath() {
		t.Fatalf("expected opaque path")
	}
	if u.OpaquePath() != "user@example.com" {
		t.Errorf("OpaquePath = %q", u.OpaquePath())
	}
	if got := u.String(); got != "mailto:user@example.com" {
		t.Errorf("Serialize = %q", got)
	}
}

func TestResolveReference(t *testing.T) {
	base, err := Parse("https://example.org/a/b/c")
	if err != nil {
		t.Fatalf("Parse base: %v", err)
	}
	out, err := base.ResolveReference("../d?q=1#f")
	if err != nil {
		t.Fatalf("ResolveReference: %v", err)
	}
	if got := out.String(); got != "https://example.org/a/d?q=1#f" {
		t.Errorf("ResolveReference = %q", got)
	}
}

func TestResolveReferenceAbsolute(t *testing.T) {
	base, err := Parse("https://example.org/a/b/c")
	if err != nil {
		t.Fatalf("Parse base: %v", err)
	}
	out, err := base.ResolveReference("http://other.example/x")
	if err != nil {
		t.Fatalf("ResolveReference: %v", err)
	}
	if got := out.String(); got != "http://other.example/x" {
		t.Errorf("ResolveReference = %q", got)
	}
}

func TestParseIdempotence(t *testing.T) {
	inputs := []string{
		"https://example.org/a/b?x=1&y=2#frag",
		"http://foo%40evil.com:80@example.com/",
		"file:///C:/demo",
		"https://xn--6qqa088eba.cn/",
	}
	for _, in := range inputs {
		u, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		again, err := Parse(u.String())
		if err != nil {
			t.Fatalf("re-Parse(%q): %v", u.String(), err)
		}
		if again.String() != u.String() {
			t.Errorf("not idempotent: %q -> %q -> %q", in, u.String(), again.String())
		}
	}
}
