// This file is part of argh.
//
// Copyright (C) 2016-2025  The argh authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argh

import (
	"regexp"
	"strings"
)

// 1: leading dashes
// 2: keys or long name
// 3: =value
var tokenRegex = regexp.MustCompile(`^(--?)([^=]+)(.*?)$`)

// token - a flag shaped command line token split into its components.
// For short tokens body holds the key characters; whether trailing characters
// after a typed key are part of its value is the scanner's call since it
// knows each key's type.
type token struct {
	long       bool   // --name form
	body       string // name or key characters, without the leading dashes
	value      string // inline value following '='
	hasValue   bool
	terminator bool // the "--" end of named arguments marker
}

/*
classifyToken - Check if the given string is flag shaped and split it.

Returns false for anything that can't address a parameter: a token with no
leading dash, a lone "-", or an empty string. Such a token starts the
remainder. "--" on its own is flag shaped but only terminates named argument
scanning.
*/
func classifyToken(s string) (token, bool) {
	// Handle especial cases
	switch s {
	case "--":
		return token{terminator: true}, true
	case "-":
		return token{}, false
	}

	match := tokenRegex.FindStringSubmatch(s)
	if len(match) == 0 {
		return token{}, false
	}
	t := token{
		long: match[1] == "--",
		body: match[2],
	}
	if strings.HasPrefix(match[3], "=") {
		t.hasValue = true
		t.value = strings.TrimPrefix(match[3], "=")
	}
	return t, true
}
