/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"sort"
	"strings"

	"github.com/go-weburl/weburl/internal/pctencode"
)

// Get returns the first value associated with key, or "" if there are none.
func (v Values) Get(key string) string {
	vs := v[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Set sets the key to value, replacing any existing values.
func (v Values) Set(key, value string) { v[key] = []string{value} }

// Add appends value to the list of values for key.
func (v Values) Add(key, value string) { v[key] = append(v[key], value) }

// Del deletes the values associated with key.
func (v Values) Del(key string) { delete(v, key) }

// Has reports whether a value exists for key.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Encode serializes v into application/x-www-form-urlencoded form,
// sorted by key and then by insertion order within a key.
func (v Values) Encode() string {
	if len(v) == 0 {
		return ""
	}
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		encKey := pctencode.FormEncode(k)
		for _, val := range v[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(encKey)
			b.WriteByte('=')
			b.WriteString(pctencode.FormEncode(val))
		}
	}
	return b.String()
}

// ParseQuery decodes a application/x-www-form-urlencoded query string
// into Values. Malformed '%' sequences are decoded permissively rather
// than rejected; a semicolon is treated as an ordinary byte, not a
// pair separator (only '&' separates pairs).
func ParseQuery(query string) (Values, error) {
	v := make(Values)
	err := parseQuery(v, query)
	return v, err
}

func parseQuery(v Values, query string) error {
	var firstErr error
	for query != "" {
		var pair string
		pair, query, _ = strings.Cut(query, "&")
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key, err1 := decodeFormComponent(key)
		if err1 != nil && firstErr == nil {
			firstErr = err1
		}
		value, err2 := decodeFormComponent(value)
		if err2 != nil && firstErr == nil {
			firstErr = err2
		}
		v[key] = append(v[key], value)
	}
	return firstErr
}

func decodeFormComponent(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 && strings.IndexByte(s, '+') < 0 {
		return s, nil
	}
	return pctencode.FormDecode(s), nil
}
