/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"strings"

	"github.com/go-weburl/weburl/internal/idna"
	"github.com/go-weburl/weburl/internal/ipaddr"
	"github.com/go-weburl/weburl/internal/pctencode"
)

// forbiddenHostByte reports whether c can never appear unescaped in a host.
func forbiddenHostByte(c byte) bool {
	switch c {
	case 0x09, 0x0A, 0x0D, ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	}
	return false
}

// forbiddenOpaqueHostByte is the forbidden set for opaque (non-special)
// hosts: the host-forbidden set minus ':' (ports are still separate,
// but ':' can appear percent-encoded in an opaque host) and plus
// nothing else; C0 controls are always rejected unescaped.
func forbiddenOpaqueHostByte(c byte) bool {
	switch c {
	case 0x09, 0x0A, 0x0D, ' ', '#', '/', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	}
	return c < 0x20
}

// parseHost parses the host token between the authority delimiters
// (an IPv6 literal still wrapped in its brackets, which parseHost
// strips itself) into the Host sum type. isSpecial selects domain/IPv4
// parsing vs. opaque-host parsing.
func parseHost(input string, isSpecial bool) (Host, error) {
	if input == "" {
		return Host{Kind: HostEmpty}, nil
	}

	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			return Host{}, &ParseError{Kind: InvalidIPv6}
		}
		addr, err := ipaddr.ParseIPv6(input[1 : len(input)-1])
		if err != nil {
			return Host{}, &ParseError{Kind: InvalidIPv6, Err: err}
		}
		return Host{Kind: HostIPv6, IPv6: addr}, nil
	}

	if !isSpecial {
		for i := 0; i < len(input); i++ {
			if forbiddenOpaqueHostByte(input[i]) {
				return Host{}, &ParseError{Kind: ForbiddenHostCharacter, Err: InvalidHostError(string(input[i]))}
			}
		}
		return Host{Kind: HostOpaque, Opaque: pctencode.Encode(input, pctencode.C0Control)}, nil
	}

	for i := 0; i < len(input); i++ {
		if forbiddenHostByte(input[i]) {
			return Host{}, &ParseError{Kind: ForbiddenHostCharacter, Err: InvalidHostError(string(input[i]))}
		}
	}

	decoded := pctencode.Decode(input)
	asciiDomain, err := idna.ToASCII(decoded, true)
	if err != nil {
		return Host{}, &ParseError{Kind: InvalidHost, Err: err}
	}
	if asciiDomain == "" {
		return Host{}, &ParseError{Kind: InvalidHost}
	}

	if endsInNumber(asciiDomain) {
		v4, ok := ipaddr.ParseIPv4(asciiDomain)
		if !ok {
			return Host{}, &ParseError{Kind: InvalidIPv4}
		}
		return Host{Kind: HostIPv4, IPv4: v4}, nil
	}

	return Host{Kind: HostDomain, Domain: asciiDomain}, nil
}

// endsInNumber implements the URL standard's "ends in a number" check
// on the last dot-separated label of an ASCII domain: a label that
// could plausibly be an IPv4 part (decimal, or 0x-prefixed hex)
// triggers an IPv4 parse attempt instead of treating the string as a
// domain name.
func endsInNumber(domain string) bool {
	domain = strings.TrimSuffix(domain, ".")
	idx := strings.LastIndexByte(domain, '.')
	last := domain[idx+1:]
	if last == "" {
		return false
	}
	if len(last) >= 2 && last[0] == '0' && (last[1] == 'x' || last[1] == 'X') {
		if len(last) == 2 {
			return true
		}
		for _, c := range []byte(last[2:]) {
			if !isHex(c) {
				return false
			}
		}
		return true
	}
	for _, c := range []byte(last) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
