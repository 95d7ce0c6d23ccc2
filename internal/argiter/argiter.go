// This file is part of argh.
//
// Copyright (C) 2016-2025  The argh authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package argiter - a peekable iterator over a borrowed argument vector.
// Peeking allows the scanner to decide whether the next token should be
// consumed as a value without committing to it.
package argiter

// Iter - iteration state over a borrowed token slice.
// The slice is never copied or mutated.
type Iter struct {
	tokens []string
	idx    int
}

// New - builds an iterator positioned before the first token.
func New(tokens []string) *Iter {
	return &Iter{tokens: tokens, idx: -1}
}

// Next - moves the index forward and reports whether a token is available.
func (it *Iter) Next() bool {
	if it.idx < len(it.tokens) {
		it.idx++
	}
	return it.idx < len(it.tokens)
}

// Index - current position, -1 before the first call to Next.
func (it *Iter) Index() int {
	return it.idx
}

// Value - token at the current position or an empty string when the iterator
// hasn't started or is exhausted.
func (it *Iter) Value() string {
	if it.idx < 0 || it.idx >= len(it.tokens) {
		return ""
	}
	return it.tokens[it.idx]
}

// ExistsNext - reports whether a token follows the current position.
func (it *Iter) ExistsNext() bool {
	return it.idx+1 < len(it.tokens)
}

// PeekNextValue - returns the next token without advancing and indicates
// whether it is valid.
func (it *Iter) PeekNextValue() (string, bool) {
	if it.idx+1 >= len(it.tokens) {
		return "", false
	}
	return it.tokens[it.idx+1], true
}

// Remaining - every token from the current position on, current included.
func (it *Iter) Remaining() []string {
	if it.idx < 0 || it.idx >= len(it.tokens) {
		return []string{}
	}
	return it.tokens[it.idx:]
}
