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

// parserState is one node of the basic URL parser's state machine.
// Each state consumes input from the current pointer and
// either advances the pointer and stays, transitions to another
// state without advancing ("reconsume"), or terminates the parse.
type parserState int

const (
	stateSchemeStart parserState = iota
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment
)

// parser holds the mutable state threaded through the state machine
// for a single parse (or a single setter re-entry via stateOverride).
type parser struct {
	input []byte
	base  *URL

	state         parserState
	stateOverride bool

	buffer strings.Builder

	pointer int

	atSignSeen        bool
	passwordTokenSeen bool
	insideBrackets    bool

	u *URL
}

// Parse parses input as an absolute URL.
func Parse(input string) (*URL, error) {
	return parse(input, nil, 0, false)
}

// ParseRef parses input as a possibly-relative reference against base.
func ParseRef(input string, base *URL) (*URL, error) {
	return parse(input, base, 0, false)
}

func parse(input string, base *URL, initial parserState, override bool) (*URL, error) {
	filtered := preprocess(input)

	p := &parser{
		input:         filtered,
		base:          base,
		state:         stateSchemeStart,
		stateOverride: override,
		u:             &URL{},
	}
	if override {
		p.state = initial
	}

	if err := p.run(); err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Op, pe.Input = "parse", input
			return nil, pe
		}
		return nil, &ParseError{Op: "parse", Input: input, Kind: InvalidHost, Err: err}
	}
	if !override && p.u.scheme == "" {
		return nil, &ParseError{Op: "parse", Input: input, Kind: MissingScheme}
	}
	return p.u, nil
}

// preprocess strips leading/trailing C0-control-or-space bytes and
// removes every internal tab, LF, CR byte.
func preprocess(s string) []byte {
	b := []byte(s)
	start, end := 0, len(b)
	for start < end && (b[start] <= 0x20) {
		start++
	}
	for end > start && (b[end-1] <= 0x20) {
		end--
	}
	b = b[start:end]

	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c == 0x09 || c == 0x0A || c == 0x0D {
			continue
		}
		out = append(out, c)
	}
	return out
}

func isASCIIAlpha(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isASCIIDigit(c byte) bool { return c >= '0' && c <= '9' }
func isASCIIAlphanumeric(c byte) bool { return isASCIIAlpha(c) || isASCIIDigit(c) }

// run drives the state machine to completion. States that need to
// reprocess already-scanned input (the authority -> host handoff, any
// "reconsume" transition) may rewind p.pointer directly.
func (p *parser) run() error {
	p.pointer = 0
	for {
		var c byte
		eof := p.pointer >= len(p.input)
		if !eof {
			c = p.input[p.pointer]
		}

		advance, err := p.step(c, eof, p.pointer)
		if err != nil {
			return err
		}
		if advance {
			p.pointer++
		}
		if eof && advance {
			return nil
		}
	}
}

// step executes one transition of the state machine at the given
// input position, returning whether the pointer should advance.
func (p *parser) step(c byte, eof bool, pointer int) (bool, error) {
	switch p.state {
	case stateSchemeStart:
		return p.stepSchemeStart(c, eof, pointer)
	case stateScheme:
		return p.stepScheme(c, eof, pointer)
	case stateNoScheme:
		return p.stepNoScheme(c, eof, pointer)
	case stateSpecialRelativeOrAuthority:
		return p.stepSpecialRelativeOrAuthority(c, eof, pointer)
	case statePathOrAuthority:
		return p.stepPathOrAuthority(c, eof, pointer)
	case stateRelative:
		return p.stepRelative(c, eof, pointer)
	case stateRelativeSlash:
		return p.stepRelativeSlash(c, eof, pointer)
	case stateSpecialAuthoritySlashes:
		return p.stepSpecialAuthoritySlashes(c, eof, pointer)
	case stateSpecialAuthorityIgnoreSlashes:
		return p.stepSpecialAuthorityIgnoreSlashes(c, eof, pointer)
	case stateAuthority:
		return p.stepAuthority(c, eof, pointer)
	case stateHost:
		return p.stepHost(c, eof, pointer)
	case statePort:
		return p.stepPort(c, eof, pointer)
	case stateFile:
		return p.stepFile(c, eof, pointer)
	case stateFileSlash:
		return p.stepFileSlash(c, eof, pointer)
	case stateFileHost:
		return p.stepFileHost(c, eof, pointer)
	case statePathStart:
		return p.stepPathStart(c, eof, pointer)
	case statePath:
		return p.stepPath(c, eof, pointer)
	case stateOpaquePath:
		return p.stepOpaquePath(c, eof, pointer)
	case stateQuery:
		return p.stepQuery(c, eof, pointer)
	case stateFragment:
		return p.stepFragment(c, eof, pointer)
	}
	return true, nil
}

func (p *parser) remaining(pointer int) []byte {
	if pointer+1 >= len(p.input) {
		return nil
	}
	return p.input[pointer+1:]
}

func (p *parser) isSpecial() bool { return p.u.schemeKind.special() }

func windowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(s[0]) && (s[1] == ':' || s[1] == '|')
}

func normalizedWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(s[0]) && s[1] == ':'
}

func startsWithWindowsDriveLetter(s string) bool {
	if len(s) < 2 || !windowsDriveLetter(s[:2]) {
		return false
	}
	return len(s) == 2 || s[2] == '/' || s[2] == '\\' || s[2] == '?' || s[2] == '#'
}

// ---- scheme start / scheme ----

func (p *parser) stepSchemeStart(c byte, eof bool, pointer int) (bool, error) {
	if !eof && isASCIIAlpha(c) {
		p.buffer.WriteByte(c | 0x20)
		p.state = stateScheme
		return true, nil
	}
	p.state = stateNoScheme
	return false, nil
}

func (p *parser) stepScheme(c byte, eof bool, pointer int) (bool, error) {
	if !eof && (isASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.') {
		lc := c
		if c >= 'A' && c <= 'Z' {
			lc = c | 0x20
		}
		p.buffer.WriteByte(lc)
		return true, nil
	}
	if !eof && c == ':' {
		scheme := p.buffer.String()
		p.buffer.Reset()

		p.u.scheme = scheme
		p.u.schemeKind = schemeKindOf(scheme)

		if p.stateOverride {
			if p.u.hasPort {
				if def, ok := p.u.schemeKind.defaultPort(); ok && strconv.Itoa(int(p.u.port)) == def {
					p.u.hasPort = false
				}
			}
			return true, nil
		}

		if p.u.schemeKind == SchemeFile {
			p.state = stateFile
			return true, nil
		}
		if p.isSpecial() {
			if p.base != nil && p.base.schemeKind == p.u.schemeKind {
				p.state = stateSpecialRelativeOrAuthority
			} else {
				p.state = stateSpecialAuthoritySlashes
			}
			return true, nil
		}
		rest := p.remaining(pointer)
		if len(rest) > 0 && rest[0] == '/' {
			p.state = statePathOrAuthority
			return true, nil
		}
		p.u.hasOpaquePath = true
		p.state = stateOpaquePath
		return true, nil
	}

	if p.stateOverride {
		return false, &ParseError{Kind: InvalidScheme}
	}
	p.buffer.Reset()
	p.state = stateNoScheme
	// Not a scheme after all: start over from the first byte so the
	// bytes scanned as a would-be scheme are reparsed as a reference.
	p.pointer = 0
	return false, nil
}

func (p *parser) stepNoScheme(c byte, eof bool, pointer int) (bool, error) {
	if p.base == nil || (p.base.hasOpaquePath && !(!eof && c == '#')) {
		if p.base != nil && p.base.hasOpaquePath && !eof && c == '#' {
			p.u.scheme = p.base.scheme
			p.u.schemeKind = p.base.schemeKind
			p.u.hasOpaquePath = true
			p.u.opaquePath = p.base.opaquePath
			p.u.hasQuery = p.base.hasQuery
			p.u.query = p.base.query
			p.state = stateFragment
			return true, nil
		}
		return false, &ParseError{Kind: InvalidBase}
	}
	p.inheritFromBase()
	if p.base.schemeKind == SchemeFile {
		p.state = stateFile
		return false, nil
	}
	p.state = stateRelative
	return false, nil
}

func (p *parser) inheritFromBase() {
	p.u.scheme = p.base.scheme
	p.u.schemeKind = p.base.schemeKind
}

// ---- relative / authority dispatch ----

func (p *parser) stepSpecialRelativeOrAuthority(c byte, eof bool, pointer int) (bool, error) {
	if !eof && c == '/' {
		rest := p.remaining(pointer)
		if len(rest) > 0 && rest[0] == '/' {
			p.state = stateSpecialAuthorityIgnoreSlashes
			return true, nil
		}
	}
	p.inheritFromBase()
	p.state = stateRelative
	return false, nil
}

func (p *parser) stepPathOrAuthority(c byte, eof bool, pointer int) (bool, error) {
	if !eof && c == '/' {
		p.state = stateAuthority
		return true, nil
	}
	p.state = statePathStart
	return false, nil
}

func (p *parser) stepRelative(c byte, eof bool, pointer int) (bool, error) {
	p.u.scheme = p.base.scheme
	p.u.schemeKind = p.base.schemeKind
	if eof {
		p.copyAuthorityAndPathFromBase()
		return true, nil
	}
	switch c {
	case '/':
		p.state = stateRelativeSlash
		return true, nil
	case '?':
		p.copyAuthorityAndPathFromBase()
		p.u.hasQuery = true
		p.u.query = ""
		p.state = stateQuery
		return true, nil
	case '#':
		p.copyAuthorityAndPathFromBase()
		p.u.hasQuery = p.base.hasQuery
		p.u.query = p.base.query
		p.u.hasFragment = true
		p.u.fragment = ""
		p.state = stateFragment
		return true, nil
	case '\\':
		if p.isSpecial() {
			p.state = stateRelativeSlash
			return true, nil
		}
	}
	p.copyAuthorityFromBase()
	p.u.pathSegments = append([]string(nil), p.base.pathSegments[:max(0, len(p.base.pathSegments)-1)]...)
	p.state = statePath
	return false, nil
}

func (p *parser) copyAuthorityFromBase() {
	p.u.hasAuthority = p.base.hasAuthority
	p.u.username = p.base.username
	p.u.password = p.base.password
	p.u.hasPassword = p.base.hasPassword
	p.u.host = p.base.host
	p.u.port = p.base.port
	p.u.hasPort = p.base.hasPort
}

func (p *parser) copyAuthorityAndPathFromBase() {
	p.copyAuthorityFromBase()
	p.u.hasOpaquePath = p.base.hasOpaquePath
	p.u.opaquePath = p.base.opaquePath
	p.u.pathSegments = append([]string(nil), p.base.pathSegments...)
}

func (p *parser) stepRelativeSlash(c byte, eof bool, pointer int) (bool, error) {
	if p.isSpecial() && !eof && (c == '/' || c == '\\') {
		p.state = stateSpecialAuthorityIgnoreSlashes
		return true, nil
	}
	if !eof && c == '/' {
		p.state = stateAuthority
		return true, nil
	}
	p.copyAuthorityFromBase()
	p.state = statePathStart
	return false, nil
}

func (p *parser) stepSpecialAuthoritySlashes(c byte, eof bool, pointer int) (bool, error) {
	if !eof && c == '/' {
		rest := p.remaining(pointer)
		if len(rest) > 0 && rest[0] == '/' {
			p.state = stateSpecialAuthorityIgnoreSlashes
			return true, nil
		}
	}
	p.state = stateSpecialAuthorityIgnoreSlashes
	return false, nil
}

func (p *parser) stepSpecialAuthorityIgnoreSlashes(c byte, eof bool, pointer int) (bool, error) {
	if !eof && (c == '/' || c == '\\') {
		return true, nil
	}
	p.state = stateAuthority
	return false, nil
}

// ---- authority / host / port ----

func (p *parser) stepAuthority(c byte, eof bool, pointer int) (bool, error) {
	if !eof && c == '@' {
		info := p.buffer.String()
		if p.atSignSeen {
			info = "%40" + info
		}
		p.atSignSeen = true
		p.buffer.Reset()
		for i := 0; i < len(info); i++ {
			if info[i] == ':' && !p.passwordTokenSeen {
				p.passwordTokenSeen = true
				p.u.hasPassword = true
				continue
			}
			if p.passwordTokenSeen {
				p.u.password += pctencode.Encode(string(info[i]), pctencode.Userinfo)
			} else {
				p.u.username += pctencode.Encode(string(info[i]), pctencode.Userinfo)
			}
		}
		return true, nil
	}
	if eof || c == '/' || c == '?' || c == '#' || (p.isSpecial() && c == '\\') {
		if p.atSignSeen && p.buffer.Len() == 0 {
			return false, &ParseError{Kind: InvalidHost}
		}
		// The accumulated buffer holds the whole host[:port] token;
		// rewind the pointer so the host state rescans it byte by
		// byte instead of starting from the boundary character.
		p.pointer -= p.buffer.Len()
		p.buffer.Reset()
		p.state = stateHost
		p.u.hasAuthority = true
		return false, nil
	}
	p.buffer.WriteByte(c)
	return true, nil
}

func (p *parser) stepHost(c byte, eof bool, pointer int) (bool, error) {
	if p.stateOverride && p.u.schemeKind == SchemeFile {
		p.state = stateFileHost
		return false, nil
	}
	if c == ':' && !p.insideBrackets {
		if p.buffer.Len() == 0 && p.isSpecial() {
			return false, &ParseError{Kind: InvalidHost}
		}
		host, err := parseHost(p.buffer.String(), p.isSpecial())
		if err != nil {
			return false, err
		}
		p.u.host = host
		p.buffer.Reset()
		p.state = statePort
		return true, nil
	}
	if eof || c == '/' || c == '?' || c == '#' || (p.isSpecial() && c == '\\') {
		p.state = statePathStart
		if p.buffer.Len() == 0 && p.isSpecial() {
			return false, &ParseError{Kind: InvalidHost}
		}
		host, err := parseHost(p.buffer.String(), p.isSpecial())
		if err != nil {
			return false, err
		}
		p.u.host = host
		p.buffer.Reset()
		return false, nil
	}
	if c == '[' {
		p.insideBrackets = true
	} else if c == ']' {
		p.insideBrackets = false
	}
	p.buffer.WriteByte(c)
	return true, nil
}

func (p *parser) stepPort(c byte, eof bool, pointer int) (bool, error) {
	if !eof && isASCIIDigit(c) {
		p.buffer.WriteByte(c)
		return true, nil
	}
	if eof || c == '/' || c == '?' || c == '#' || (p.isSpecial() && c == '\\') || p.stateOverride {
		if p.buffer.Len() > 0 {
			n, err := strconv.Atoi(p.buffer.String())
			if err != nil || n > 0xFFFF {
				return false, &ParseError{Kind: InvalidPort}
			}
			p.buffer.Reset()
			p.u.hasPort = true
			p.u.port = uint16(n)
			if def, ok := p.u.schemeKind.defaultPort(); ok && strconv.Itoa(n) == def {
				p.u.hasPort = false
			}
		}
		if p.stateOverride {
			return false, nil
		}
		p.state = statePathStart
		return false, nil
	}
	return false, &ParseError{Kind: InvalidPort}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ---- file: host ----

func (p *parser) stepFile(c byte, eof bool, pointer int) (bool, error) {
	p.u.scheme = "file"
	p.u.schemeKind = SchemeFile
	p.u.host = Host{Kind: HostEmpty}
	// file: URLs always have a host slot (possibly empty), so their
	// serialization always includes the "//" authority marker.
	p.u.hasAuthority = true

	if !eof && (c == '/' || c == '\\') {
		p.state = stateFileSlash
		return true, nil
	}

	if p.base != nil && p.base.schemeKind == SchemeFile {
		p.u.host = p.base.host
		p.u.pathSegments = append([]string(nil), p.base.pathSegments...)
		p.u.hasQuery = p.base.hasQuery
		p.u.query = p.base.query

		if !eof && c == '?' {
			p.u.hasQuery = true
			p.u.query = ""
			p.state = stateQuery
			return true, nil
		}
		if !eof && c == '#' {
			p.u.hasFragment = true
			p.u.fragment = ""
			p.state = stateFragment
			return true, nil
		}
		if !eof {
			p.u.hasQuery = false
			p.u.query = ""
			if !startsWithWindowsDriveLetter(string(p.input[pointer:])) {
				p.shortenPath()
			} else {
				p.u.pathSegments = nil
			}
			p.state = statePath
			return false, nil
		}
		p.state = statePath
		return false, nil
	}

	p.state = statePath
	return false, nil
}

func (p *parser) stepFileSlash(c byte, eof bool, pointer int) (bool, error) {
	if !eof && (c == '/' || c == '\\') {
		p.state = stateFileHost
		return true, nil
	}
	if p.base != nil && p.base.schemeKind == SchemeFile {
		p.u.host = p.base.host
		base0 := ""
		if len(p.base.pathSegments) > 0 {
			base0 = p.base.pathSegments[0]
		}
		if len(p.base.pathSegments) > 0 && normalizedWindowsDriveLetter(base0) {
			p.u.pathSegments = []string{base0}
		}
	}
	p.state = statePath
	return false, nil
}

func (p *parser) stepFileHost(c byte, eof bool, pointer int) (bool, error) {
	if eof || c == '/' || c == '\\' || c == '?' || c == '#' {
		p.state = statePathStart
		buf := p.buffer.String()
		if windowsDriveLetter(buf) {
			p.state = statePath
			return false, nil
		}
		if buf == "" {
			p.u.host = Host{Kind: HostEmpty}
			return false, nil
		}
		host, err := parseHost(buf, true)
		if err != nil {
			return false, err
		}
		if host.Kind == HostDomain && host.Domain == "localhost" {
			host = Host{Kind: HostEmpty}
		}
		p.u.host = host
		p.buffer.Reset()
		return false, nil
	}
	p.buffer.WriteByte(c)
	return true, nil
}

// ---- path ----

func (p *parser) shortenPath() {
	segs := p.u.pathSegments
	if p.u.schemeKind == SchemeFile && len(segs) == 1 && normalizedWindowsDriveLetter(segs[0]) {
		return
	}
	if len(segs) > 0 {
		p.u.pathSegments = segs[:len(segs)-1]
	}
}

func normalizeDotSegment(s string) string {
	return strings.ToLower(pctencode.Decode(s))
}

func isSingleDotSegment(s string) bool {
	n := normalizeDotSegment(s)
	return n == "."
}

func isDoubleDotSegment(s string) bool {
	n := normalizeDotSegment(s)
	return n == ".."
}

func (p *parser) stepPathStart(c byte, eof bool, pointer int) (bool, error) {
	if p.isSpecial() {
		p.state = statePath
		if !eof && (c == '/' || c == '\\') {
			return true, nil
		}
		return false, nil
	}
	if !p.stateOverride && !eof && c == '?' {
		p.u.hasQuery = true
		p.u.query = ""
		p.state = stateQuery
		return true, nil
	}
	if !p.stateOverride && !eof && c == '#' {
		p.u.hasFragment = true
		p.u.fragment = ""
		p.state = stateFragment
		return true, nil
	}
	p.state = statePath
	if !eof && c == '/' {
		return true, nil
	}
	return false, nil
}

func (p *parser) stepPath(c byte, eof bool, pointer int) (bool, error) {
	boundary := eof || c == '/' || (p.isSpecial() && c == '\\') || (!p.stateOverride && (c == '?' || c == '#'))
	if boundary {
		seg := p.buffer.String()
		p.buffer.Reset()

		switch {
		case isDoubleDotSegment(seg):
			p.shortenPath()
			if !(!eof && (c == '/' || (p.isSpecial() && c == '\\'))) {
				p.u.pathSegments = append(p.u.pathSegments, "")
			}
		case isSingleDotSegment(seg):
			if !(!eof && (c == '/' || (p.isSpecial() && c == '\\'))) {
				p.u.pathSegments = append(p.u.pathSegments, "")
			}
		default:
			if p.u.schemeKind == SchemeFile && len(p.u.pathSegments) == 0 && windowsDriveLetter(seg) {
				seg = string(seg[0]) + ":"
			}
			p.u.pathSegments = append(p.u.pathSegments, seg)
		}

		if !eof && c == '?' {
			p.u.hasQuery = true
			p.u.query = ""
			p.state = stateQuery
			return true, nil
		}
		if !eof && c == '#' {
			p.u.hasFragment = true
			p.u.fragment = ""
			p.state = stateFragment
			return true, nil
		}
		return true, nil
	}

	p.buffer.WriteString(pctencode.Encode(string(c), pctencode.Path))
	return true, nil
}

func (p *parser) stepOpaquePath(c byte, eof bool, pointer int) (bool, error) {
	if !eof && c == '?' {
		p.u.opaquePath = p.buffer.String()
		p.buffer.Reset()
		p.u.hasQuery = true
		p.u.query = ""
		p.state = stateQuery
		return true, nil
	}
	if !eof && c == '#' {
		p.u.opaquePath = p.buffer.String()
		p.buffer.Reset()
		p.u.hasFragment = true
		p.u.fragment = ""
		p.state = stateFragment
		return true, nil
	}
	if eof {
		p.u.opaquePath = p.buffer.String()
		p.buffer.Reset()
		return true, nil
	}
	p.buffer.WriteString(pctencode.Encode(string(c), pctencode.C0Control))
	return true, nil
}

func (p *parser) stepQuery(c byte, eof bool, pointer int) (bool, error) {
	if eof || (!p.stateOverride && c == '#') {
		p.u.query = p.buffer.String()
		p.buffer.Reset()
		if !eof && c == '#' {
			p.u.hasFragment = true
			p.u.fragment = ""
			p.state = stateFragment
		}
		return true, nil
	}
	set := pctencode.Query
	if p.isSpecial() {
		set = pctencode.SpecialQuery
	}
	p.buffer.WriteString(pctencode.Encode(string(c), set))
	return true, nil
}

func (p *parser) stepFragment(c byte, eof bool, pointer int) (bool, error) {
	if eof {
		p.u.fragment = p.buffer.String()
		p.buffer.Reset()
		return true, nil
	}
	p.buffer.WriteString(pctencode.Encode(string(c), pctencode.Fragment))
	return true, nil
}
