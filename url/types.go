/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

// SchemeKind classifies the URL's scheme for the special-case rules
// around authority/host strictness, default ports, and the
// file: drive-letter quirks.
type SchemeKind int

const (
	SchemeOther SchemeKind = iota
	SchemeHTTP
	SchemeHTTPS
	SchemeWS
	SchemeWSS
	SchemeFTP
	SchemeFile
)

// special reports whether the scheme is one of http, https, ws, wss,
// ftp, file.
func (k SchemeKind) special() bool { return k != SchemeOther }

func schemeKindOf(scheme string) SchemeKind {
	switch scheme {
	case "http":
		return SchemeHTTP
	case "https":
		return SchemeHTTPS
	case "ws":
		return SchemeWS
	case "wss":
		return SchemeWSS
	case "ftp":
		return SchemeFTP
	case "file":
		return SchemeFile
	default:
		return SchemeOther
	}
}

// defaultPort returns the scheme's default port and whether it has one.
func (k SchemeKind) defaultPort() (string, bool) {
	switch k {
	case SchemeHTTP, SchemeWS:
		return "80", true
	case SchemeHTTPS, SchemeWSS:
		return "443", true
	case SchemeFTP:
		return "21", true
	default:
		return "", false
	}
}

// HostKind tags which variant a Host value holds.
type HostKind int

const (
	HostEmpty HostKind = iota
	HostDomain
	HostIPv4
	HostIPv6
	HostOpaque
)

// Host is a sum type: a domain name (already in
// IDNA ASCII form), an IPv4 or IPv6 address, an opaque percent-encoded
// string (non-special schemes), or the empty host. Whether the URL has
// an authority at all (as opposed to an authority with an empty host)
// is tracked separately, on URL.hasAuthority.
type Host struct {
	Kind   HostKind
	Domain string    // HostDomain: ASCII form after IDNA ToASCII
	IPv4   uint32    // HostIPv4
	IPv6   [8]uint16 // HostIPv6
	Opaque string    // HostOpaque: percent-encoded ASCII
}

// The Userinfo type is an immutable encapsulation of username and
// password details for a URL. An existing Userinfo value is guaranteed
// to have a username set (potentially empty, as allowed by RFC 2396),
// and optionally a password.
type Userinfo struct {
	username    string
	password    string
	passwordSet bool
}

// Values maps a string key to a list of values, used for the
// application/x-www-form-urlencoded query-parameters view.
// Unlike http.Header, keys are case-sensitive, and may repeat.
type Values map[string][]string
