/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"strconv"
	"strings"

	"github.com/go-weburl/weburl/internal/pctencode"
)

// cannotHaveCredentialsOrPort reports the URL standard's "cannot have
// a username/password/port" predicate: true when there is no host, the
// host is the empty host, or the scheme is file (S9).
func (u *URL) cannotHaveCredentialsOrPort() bool {
	return !u.hasAuthority || u.host.Kind == HostEmpty || u.schemeKind == SchemeFile
}

var schemeSyntax = func(s string) bool {
	if s == "" || !isASCIIAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isASCIIAlphanumeric(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

// SetScheme rewrites the URL's scheme in place. It rejects a change
// that would cross the special/non-special boundary, or a move away
// from file: while its host is empty or the URL carries credentials
// or a port, leaving u unmodified (SetterRejected, per S9).
func (u *URL) SetScheme(scheme string) error {
	lower := strings.ToLower(scheme)
	if !schemeSyntax(lower) {
		return &SetterError{Field: "scheme", Value: scheme, Err: &ParseError{Kind: InvalidScheme}}
	}
	newKind := schemeKindOf(lower)
	if newKind.special() != u.schemeKind.special() {
		return &SetterError{Field: "scheme", Value: scheme, Err: &ParseError{Kind: InvalidScheme}}
	}
	if u.schemeKind == SchemeFile && (u.host.Kind == HostEmpty || u.username != "" || u.hasPassword || u.hasPort) && newKind != SchemeFile {
		return &SetterError{Field: "scheme", Value: scheme}
	}
	u.scheme = lower
	u.schemeKind = newKind
	if u.hasPort {
		if def, ok := newKind.defaultPort(); ok && strconv.Itoa(int(u.port)) == def {
			u.hasPort = false
		}
	}
	return nil
}

// SetUsername replaces the username, percent-encoding it with the
// userinfo encode-set. Rejected when the URL cannot carry credentials.
func (u *URL) SetUsername(username string) error {
	if u.cannotHaveCredentialsOrPort() {
		return &SetterError{Field: "username", Value: username}
	}
	u.username = pctencode.Encode(username, pctencode.Userinfo)
	return nil
}

// SetPassword replaces the password. Rejected when the URL cannot
// carry credentials.
func (u *URL) SetPassword(password string) error {
	if u.cannotHaveCredentialsOrPort() {
		return &SetterError{Field: "password", Value: password}
	}
	u.password = pctencode.Encode(password, pctencode.Userinfo)
	u.hasPassword = true
	return nil
}

// SetHost replaces the authority's host (and, if host carries a
// trailing ":port", the port too). Rejected for opaque-path URLs, or
// when host would be empty on a special scheme.
func (u *URL) SetHost(host string) error {
	if u.hasOpaquePath {
		return &SetterError{Field: "host", Value: host}
	}
	hostPart, portPart := splitHostPort(host)
	if hostPart == "" && u.IsSpecial() {
		return &SetterError{Field: "host", Value: host}
	}
	parsed, err := parseHost(hostPart, u.IsSpecial())
	if err != nil {
		return &SetterError{Field: "host", Value: host, Err: err}
	}
	if portPart != "" {
		n, err := strconv.Atoi(portPart)
		if err != nil || n < 0 || n > 0xFFFF {
			return &SetterError{Field: "host", Value: host, Err: &ParseError{Kind: InvalidPort}}
		}
		u.hasPort = true
		u.port = uint16(n)
		if def, ok := u.schemeKind.defaultPort(); ok && portPart == def {
			u.hasPort = false
		}
	}
	u.host = parsed
	u.hasAuthority = true
	return nil
}

// SetHostname replaces only the host, leaving any existing port
// untouched. Rejected if hostname embeds a ':' (use SetHost instead).
func (u *URL) SetHostname(hostname string) error {
	if u.hasOpaquePath {
		return &SetterError{Field: "hostname", Value: hostname}
	}
	if !strings.HasPrefix(hostname, "[") && strings.ContainsRune(hostname, ':') {
		return &SetterError{Field: "hostname", Value: hostname}
	}
	if hostname == "" && u.IsSpecial() {
		return &SetterError{Field: "hostname", Value: hostname}
	}
	parsed, err := parseHost(hostname, u.IsSpecial())
	if err != nil {
		return &SetterError{Field: "hostname", Value: hostname, Err: err}
	}
	u.host = parsed
	u.hasAuthority = true
	return nil
}

// splitHostPort splits "host[:port]" on the last unbracketed colon.
func splitHostPort(s string) (host, port string) {
	if strings.HasPrefix(s, "[") {
		if end := strings.IndexByte(s, ']'); end >= 0 {
			if colon := strings.IndexByte(s[end+1:], ':'); colon >= 0 {
				return s[:end+1], s[end+1+colon+1:]
			}
			return s, ""
		}
		return s, ""
	}
	if colon := strings.LastIndexByte(s, ':'); colon >= 0 {
		return s[:colon], s[colon+1:]
	}
	return s, ""
}

// SetPort replaces the port. An empty string clears it. Rejected when
// the URL cannot carry a port (S9).
func (u *URL) SetPort(port string) error {
	if u.cannotHaveCredentialsOrPort() {
		return &SetterError{Field: "port", Value: port}
	}
	if port == "" {
		u.hasPort = false
		return nil
	}
	for i := 0; i < len(port); i++ {
		if !isASCIIDigit(port[i]) {
			return &SetterError{Field: "port", Value: port, Err: &ParseError{Kind: InvalidPort}}
		}
	}
	n, err := strconv.Atoi(port)
	if err != nil || n > 0xFFFF {
		return &SetterError{Field: "port", Value: port, Err: &ParseError{Kind: InvalidPort}}
	}
	u.hasPort = true
	u.port = uint16(n)
	if def, ok := u.schemeKind.defaultPort(); ok && strconv.Itoa(n) == def {
		u.hasPort = false
	}
	return nil
}

// SetPathname replaces the hierarchical path, re-running the path
// state machine over input so "." / ".." segments, the file:
// drive-letter quirk and percent-encoding are all handled exactly as
// they would be during Parse. Rejected for opaque-path URLs.
func (u *URL) SetPathname(path string) error {
	if u.hasOpaquePath {
		return &SetterError{Field: "pathname", Value: path}
	}
	p := &parser{
		input:         preprocess(path),
		state:         statePathStart,
		stateOverride: true,
		u:             &URL{scheme: u.scheme, schemeKind: u.schemeKind},
	}
	if err := p.run(); err != nil {
		return &SetterError{Field: "pathname", Value: path, Err: err}
	}
	u.pathSegments = p.u.pathSegments
	return nil
}

// SetSearch replaces the query (accepting either a leading '?' or not).
func (u *URL) SetSearch(search string) error {
	search = strings.TrimPrefix(search, "?")
	if search == "" {
		u.hasQuery = false
		u.query = ""
		return nil
	}
	set := pctencode.Query
	if u.IsSpecial() {
		set = pctencode.SpecialQuery
	}
	u.hasQuery = true
	u.query = pctencode.Encode(search, set)
	return nil
}

// SetHash replaces the fragment (accepting either a leading '#' or not).
func (u *URL) SetHash(hash string) error {
	hash = strings.TrimPrefix(hash, "#")
	if hash == "" {
		u.hasFragment = false
		u.fragment = ""
		return nil
	}
	u.hasFragment = true
	u.fragment = pctencode.Encode(hash, pctencode.Fragment)
	return nil
}
