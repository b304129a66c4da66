/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strconv"

// ParseFailureKind enumerates the reasons Parse can fail.
type ParseFailureKind int

const (
	_ ParseFailureKind = iota
	InvalidScheme
	MissingScheme
	InvalidBase
	InvalidHost
	InvalidIPv4
	InvalidIPv6
	InvalidPort
	InvalidPercentEncoding
	ForbiddenHostCharacter
	OpaquePathForbiddenCharacter
	FileDriveLetterIssue
)

func (k ParseFailureKind) String() string {
	switch k {
	case InvalidScheme:
		return "invalid scheme"
	case MissingScheme:
		return "missing scheme"
	case InvalidBase:
		return "invalid base URL"
	case InvalidHost:
		return "invalid host"
	case InvalidIPv4:
		return "invalid IPv4 address"
	case InvalidIPv6:
		return "invalid IPv6 address"
	case InvalidPort:
		return "invalid port"
	case InvalidPercentEncoding:
		return "invalid percent-encoding"
	case ForbiddenHostCharacter:
		return "forbidden host code point"
	case OpaquePathForbiddenCharacter:
		return "forbidden code point in opaque path"
	case FileDriveLetterIssue:
		return "invalid file: drive letter"
	default:
		return "parse failure"
	}
}

// ParseError reports why Parse rejected an input string.
type ParseError struct {
	Op    string
	Input string
	Kind  ParseFailureKind
	Err   error
}

func (e *ParseError) Error() string {
	s := e.Op + " " + quoteForError(e.Input) + ": " + e.Kind.String()
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *ParseError) Unwrap() error { return e.Err }

func quoteForError(s string) string {
	truncated := s
	if len(truncated) > 64 {
		truncated = truncated[:64] + "..."
	}
	return strconv.Quote(truncated)
}

// SetterError reports that a setter rejected a new value because it
// would have violated an invariant; the URL is left unchanged.
type SetterError struct {
	Field string
	Value string
	Err   error
}

func (e *SetterError) Error() string {
	s := "set " + e.Field + " " + quoteForError(e.Value) + ": rejected"
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *SetterError) Unwrap() error { return e.Err }
