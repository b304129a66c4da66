/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"strconv"
	"strings"

	"github.com/go-weburl/weburl/internal/ipaddr"
	"github.com/go-weburl/weburl/internal/pctencode"
)

// URL is the value type: a scheme, an optional
// authority (username/password/host/port), a path (hierarchical
// segments or a single opaque token), an optional query and fragment,
// and the has-opaque-path / special-scheme classification flags.
//
// Every string field that holds part of a component is stored already
// percent-encoded, exactly as it appears in the serialization; the
// decoded forms are materialized on demand by the accessor methods.
type URL struct {
	scheme       string
	schemeKind   SchemeKind
	hasAuthority bool

	username    string
	password    string
	hasPassword bool

	host Host

	hasPort bool
	port    uint16

	hasOpaquePath bool
	opaquePath    string
	pathSegments  []string

	hasQuery bool
	query    string

	hasFragment bool
	fragment    string
}

// Scheme returns the URL's scheme, lowercase and without the trailing ':'.
func (u *URL) Scheme() string { return u.scheme }

// IsSpecial reports whether the scheme is one of http, https, ws, wss, ftp, file.
func (u *URL) IsSpecial() bool { return u.schemeKind.special() }

// HasOpaquePath reports the has-opaque-path flag.
func (u *URL) HasOpaquePath() bool { return u.hasOpaquePath }

// HasAuthority reports whether the URL has an authority component at all.
func (u *URL) HasAuthority() bool { return u.hasAuthority }

// Username returns the percent-decoded username, or "" if absent.
func (u *URL) Username() string { return pctencode.Decode(u.username) }

// UserPassword returns the percent-decoded password and whether one was set.
func (u *URL) UserPassword() (string, bool) { return pctencode.Decode(u.password), u.hasPassword }

// Host returns the URL's host value.
func (u *URL) Host() Host { return u.host }

// Hostname returns the host rendered as it would appear in the
// serialization (ASCII domain, dotted IPv4, bracketed IPv6, or opaque).
func (u *URL) Hostname() string { return serializeHost(u.host) }

// Port returns the port number and whether one is present (it is
// always absent when it equals the scheme's default port).
func (u *URL) Port() (uint16, bool) { return u.port, u.hasPort }

// PathSegments returns the percent-decoded hierarchical path segments.
// Empty for an opaque-path URL; use OpaquePath instead.
func (u *URL) PathSegments() []string {
	out := make([]string, len(u.pathSegments))
	for i, s := range u.pathSegments {
		out[i] = pctencode.Decode(s)
	}
	return out
}

// OpaquePath returns the percent-decoded opaque path, valid only when
// HasOpaquePath is true.
func (u *URL) OpaquePath() string { return pctencode.Decode(u.opaquePath) }

// Path returns the full serialized path component: segments joined
// with '/' (each still percent-encoded), or the opaque path verbatim.
func (u *URL) Path() string {
	if u.hasOpaquePath {
		return u.opaquePath
	}
	var b strings.Builder
	for _, seg := range u.pathSegments {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}

// RawQuery returns the query exactly as it appears in the
// serialization (still percent-encoded), without the leading '?'.
func (u *URL) RawQuery() (string, bool) { return u.query, u.hasQuery }

// Query parses RawQuery as application/x-www-form-urlencoded and
// returns the corresponding Values; empty pairs are skipped and
// malformed '%' escapes are decoded permissively (see ParseQuery).
func (u *URL) Query() Values {
	v, _ := ParseQuery(u.query)
	return v
}

// Fragment returns the percent-decoded fragment and whether one is present.
func (u *URL) Fragment() (string, bool) { return pctencode.Decode(u.fragment), u.hasFragment }

func serializeHost(h Host) string {
	switch h.Kind {
	case HostDomain:
		return h.Domain
	case HostIPv4:
		return ipaddr.SerializeIPv4(h.IPv4)
	case HostIPv6:
		return ipaddr.SerializeIPv6(h.IPv6)
	case HostOpaque:
		return h.Opaque
	default:
		return ""
	}
}

// Serialize reassembles the URL into its canonical string form.
// Re-parsing the result always yields a value byte-identical to u.
func (u *URL) Serialize(excludeFragment bool) string {
	var b strings.Builder
	b.WriteString(u.scheme)
	b.WriteByte(':')
	if u.hasAuthority {
		b.WriteString("//")
		if u.username != "" || u.hasPassword {
			b.WriteString(u.username)
			if u.hasPassword {
				b.WriteByte(':')
				b.WriteString(u.password)
			}
			b.WriteByte('@')
		}
		b.WriteString(serializeHost(u.host))
		if u.hasPort {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(int(u.port)))
		}
	}
	path := u.Path()
	if !u.hasAuthority && !u.hasOpaquePath && len(u.pathSegments) > 1 && u.pathSegments[0] == "" {
		// Without an authority, a path of the form "//x" would be
		// reparsed as an authority-introducing "//". Force it back
		// into a path by inserting a "/." segment ahead of it.
		b.WriteString("/.")
	}
	b.WriteString(path)
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.hasFragment && !excludeFragment {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}

// String implements fmt.Stringer and is equivalent to Serialize(false).
func (u *URL) String() string { return u.Serialize(false) }

// MarshalBinary implements encoding.BinaryMarshaler.
func (u *URL) MarshalBinary() ([]byte, error) { return []byte(u.String()), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *URL) UnmarshalBinary(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
