// This file is part of argh.
//
// Copyright (C) 2016-2025  The argh authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argh

import (
	"fmt"

	"github.com/vrtx/argh/text"
)

// ErrorKind - classifies a ParseError.
type ErrorKind int

// Error kinds
const (
	// InvalidArgument - a value token could not be converted to the target type.
	InvalidArgument ErrorKind = iota
	// OutOfRange - a value token was well formed but outside the representable
	// range of the target type.
	OutOfRange
	// UnknownOption - a token referenced a key or long name never registered.
	UnknownOption
	// MissingValue - a non boolean parameter was matched but the argument
	// vector had no token left to serve as its value.
	MissingValue
	// DuplicateDefinition - two parameters registered under the same key or
	// name. Delivered through a panic at registration time, never through the
	// accumulated error list.
	DuplicateDefinition
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return text.DescInvalidArgument
	case OutOfRange:
		return text.DescOutOfRange
	case UnknownOption:
		return text.DescUnknownOption
	case MissingValue:
		return text.DescMissingValue
	case DuplicateDefinition:
		return text.DescDuplicateDefinition
	}
	return "Parse Error"
}

// ParseError - a single recorded parsing failure.
//
// Option is a non owning back reference: it holds the name of the related
// parameter when one was resolved and is empty otherwise.
type ParseError struct {
	Kind   ErrorKind
	Token  string // offending token or value
	Argv   int    // index into the borrowed argument vector, -1 when not positional
	Option string // related parameter name, "" when none
	Detail string // human readable detail
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s @ [%s]: %s", e.Kind, e.Token, e.Detail)
}
