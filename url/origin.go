/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strconv"

// Origin is the result of the URL standard's origin algorithm: either
// a (scheme, host, port) tuple, or an opaque origin with no meaningful
// identity beyond "not equal to any other origin".
type Origin struct {
	Opaque bool
	Scheme string
	Host   string
	Port   uint16
}

// String renders the origin the way browsers expose it via
// window.location.origin: "scheme://host[:port]", or "null" if opaque.
func (o Origin) String() string {
	if o.Opaque {
		return "null"
	}
	s := o.Scheme + "://" + o.Host
	if o.Port != 0 {
		s += ":" + strconv.Itoa(int(o.Port))
	}
	return s
}

// Same reports whether two origins are "same origin" (scheme, host
// and port all equal; two opaque origins are never the same, even
// if produced from the same URL, matching how browsers treat them).
func (o Origin) Same(other Origin) bool {
	if o.Opaque || other.Opaque {
		return false
	}
	return o.Scheme == other.Scheme && o.Host == other.Host && o.Port == other.Port
}

// Origin computes the URL's origin. file: URLs are
// implementation-defined by the standard; this implementation treats
// them as opaque, matching most browsers' default behavior.
func (u *URL) Origin() Origin {
	switch u.schemeKind {
	case SchemeHTTP, SchemeHTTPS, SchemeWS, SchemeWSS, SchemeFTP:
		// u.port is only ever set (hasPort true) for a port that
		// differs from the scheme's default (see URL.Port), so a
		// default port is already absent here without re-deriving it.
		var port uint16
		if u.hasPort {
			port = u.port
		}
		return Origin{Scheme: u.scheme, Host: serializeHost(u.host), Port: port}
	default:
		return Origin{Opaque: true}
	}
}
