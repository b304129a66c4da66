/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package url implements the WHATWG URL Standard's parsing,
// serialization, host/IDNA, percent-encoding and query-string
// algorithms as a single self-contained Go package.
package url

import (
	"encoding/base64"

	"github.com/go-weburl/weburl/internal/pctencode"
)

// QueryEscape percent-encodes s for safe inclusion in a URL query
// using the application/x-www-form-urlencoded convention (space -> '+').
func QueryEscape(s string) string { return pctencode.FormEncode(s) }

// QueryUnescape reverses QueryEscape. It returns an EscapeError if any
// '%' in s is not followed by two hexadecimal digits.
func QueryUnescape(s string) (string, error) {
	decoded, offset, ok := pctencode.FormDecodeStrict(s)
	if !ok {
		return "", EscapeError(escapeContext(s, offset))
	}
	return decoded, nil
}

// PathEscape percent-encodes s for safe inclusion in one path segment.
func PathEscape(s string) string { return pctencode.Encode(s, pctencode.Userinfo) }

// PathUnescape percent-decodes a path segment produced by PathEscape.
// It returns an EscapeError if any '%' in s is not followed by two
// hexadecimal digits. Unlike QueryUnescape, it does not convert '+'
// to ' '.
func PathUnescape(s string) (string, error) {
	decoded, offset, ok := pctencode.DecodeStrict(s)
	if !ok {
		return "", EscapeError(escapeContext(s, offset))
	}
	return decoded, nil
}

// escapeContext returns the malformed escape (or as much of it as is
// present) starting at offset, for inclusion in an EscapeError.
func escapeContext(s string, offset int) string {
	end := offset + 3
	if end > len(s) {
		end = len(s)
	}
	return s[offset:end]
}

// BasicAuth returns the base64 encoding of "username:password", as
// used in the Authorization header for HTTP Basic authentication.
// See RFC 2617 §2; the result is not itself URL-encoded.
func BasicAuth(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}

// JoinPath returns a copy of base with elem appended as literal path
// segments: each is percent-encoded independently, and "." / ".."
// are not given any special meaning (unlike the path parser's dot-
// segment handling during Parse/ResolveReference).
func JoinPath(base *URL, elem ...string) *URL {
	out := *base
	out.pathSegments = append([]string(nil), base.pathSegments...)
	out.hasOpaquePath = false
	for _, e := range elem {
		for _, seg := range splitSlash(e) {
			out.pathSegments = append(out.pathSegments, pctencode.Encode(seg, pctencode.Path))
		}
	}
	return &out
}

func splitSlash(s string) []string {
	var segs []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			segs = append(segs, s[start:i])
			start = i + 1
		}
	}
	return append(segs, s[start:])
}
