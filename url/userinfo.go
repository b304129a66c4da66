/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "github.com/go-weburl/weburl/internal/pctencode"

// User returns a Userinfo containing the provided username and no password set.
func User(username string) *Userinfo {
	return &Userinfo{username: username}
}

// UserPassword returns a Userinfo containing the provided username and password.
func UserPassword(username, password string) *Userinfo {
	return &Userinfo{username: username, password: password, passwordSet: true}
}

// Username returns the decoded username.
func (u *Userinfo) Username() string {
	if u == nil {
		return ""
	}
	return u.username
}

// Password returns the password in case it is set, and whether it is set.
func (u *Userinfo) Password() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.password, u.passwordSet
}

// String returns the percent-encoded userinfo in the standard form
// "username[:password]".
func (u *Userinfo) String() string {
	if u == nil {
		return ""
	}
	s := pctencode.Encode(u.username, pctencode.Userinfo)
	if u.passwordSet {
		s += ":" + pctencode.Encode(u.password, pctencode.Userinfo)
	}
	return s
}

// User returns a Userinfo view of the URL's username/password.
func (u *URL) User() *Userinfo {
	if u.username == "" && !u.hasPassword {
		return nil
	}
	return &Userinfo{username: u.Username(), password: pctencode.Decode(u.password), passwordSet: u.hasPassword}
}
