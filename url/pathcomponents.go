/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "github.com/go-weburl/weburl/internal/pctencode"

// PathSegmentsView is a mutable, bidirectional view over a URL's
// hierarchical path segments. Each method re-percent-encodes and
// writes straight back into the owning URL, so callers can build a
// path incrementally (Append, then the next) without holding
// an intermediate copy out of sync with u.
type PathSegmentsView struct {
	u *URL
}

// PathSegmentsView returns a view over u's path segments. It panics if
// u has an opaque path; check HasOpaquePath first.
func (u *URL) PathSegmentsView() *PathSegmentsView {
	if u.hasOpaquePath {
		panic("url: PathSegmentsView called on an opaque-path URL")
	}
	return &PathSegmentsView{u: u}
}

// Len returns the number of path segments.
func (v *PathSegmentsView) Len() int { return len(v.u.pathSegments) }

// At returns the percent-decoded segment at index i.
func (v *PathSegmentsView) At(i int) string { return pctencode.Decode(v.u.pathSegments[i]) }

// SetAt replaces the segment at index i.
func (v *PathSegmentsView) SetAt(i int, segment string) {
	v.u.pathSegments[i] = pctencode.Encode(segment, pctencode.Path)
}

// Append adds segment to the end of the path.
func (v *PathSegmentsView) Append(segment string) {
	v.u.pathSegments = append(v.u.pathSegments, pctencode.Encode(segment, pctencode.Path))
}

// Insert inserts segment at index i, shifting later segments right.
func (v *PathSegmentsView) Insert(i int, segment string) {
	enc := pctencode.Encode(segment, pctencode.Path)
	segs := v.u.pathSegments
	segs = append(segs, "")
	copy(segs[i+1:], segs[i:])
	segs[i] = enc
	v.u.pathSegments = segs
}

// Remove deletes the segment at index i.
func (v *PathSegmentsView) Remove(i int) {
	segs := v.u.pathSegments
	v.u.pathSegments = append(segs[:i], segs[i+1:]...)
}

// ReplaceSubrange replaces the segments in [start, end) with newSegments.
func (v *PathSegmentsView) ReplaceSubrange(start, end int, newSegments ...string) {
	enc := make([]string, len(newSegments))
	for i, s := range newSegments {
		enc[i] = pctencode.Encode(s, pctencode.Path)
	}
	tail := append([]string(nil), v.u.pathSegments[end:]...)
	segs := append(v.u.pathSegments[:start], enc...)
	v.u.pathSegments = append(segs, tail...)
}

// Segments returns a fresh slice of all percent-decoded segments.
func (v *PathSegmentsView) Segments() []string { return v.u.PathSegments() }
