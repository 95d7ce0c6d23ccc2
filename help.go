// This file is part of argh.
//
// Copyright (C) 2016-2025  The argh authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argh

// Usage - one line summary: the process name, every registered key
// concatenated in registration order and the remainder label when declared.
// For example:
//
//	Usage: foo -itrdv <output path>
//
// Pure render over registration state, repeated calls yield identical output.
func (a *Args) Usage() string {
	out := "Usage: " + a.procName
	keys := ""
	for _, p := range a.params {
		if p.Key != NoKey {
			keys += string(p.Key)
		}
	}
	if keys != "" {
		out += " -" + keys
	}
	if a.labelDefined {
		out += " <" + a.remainderLabel + ">"
	}
	return out + "\n"
}

// Help - the usage line followed by one fixed column line per parameter, in
// registration order: key, long name, default annotation (only when a
// default was supplied) and the help text.
func (a *Args) Help() string {
	out := a.Usage()
	for _, p := range a.params {
		out += p.HelpLine()
	}
	return out + "\n"
}
