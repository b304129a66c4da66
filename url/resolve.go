/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

// ResolveReference resolves ref, which may be a full URL or a
// relative reference, against u as the base ("basic URL parser
// with a base"). u itself is never modified.
func (u *URL) ResolveReference(ref string) (*URL, error) {
	out, err := ParseRef(ref, u)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Op = "resolve"
			return nil, pe
		}
		return nil, err
	}
	return out, nil
}
