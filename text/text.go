// This file is part of argh.
//
// Copyright (C) 2016-2025  The argh authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing message templates.
// Exposed as variables so they can be overridden for rebranding or
// translation by the caller.
package text

// Error descriptions used when rendering the accumulated error list.
var (
	DescInvalidArgument     = "Invalid Argument"
	DescOutOfRange          = "Value Out of Range"
	DescUnknownOption       = "Unknown Option"
	DescMissingValue        = "Missing Value"
	DescDuplicateDefinition = "Duplicate Definition"
)

// ErrorConvertToInt holds the text for an int conversion failure.
// It has a string placeholder '%s' for the offending value.
var ErrorConvertToInt = "Can't convert string to int: '%s'"

// ErrorConvertToInt64 holds the text for an int64 conversion failure.
// It has a string placeholder '%s' for the offending value.
var ErrorConvertToInt64 = "Can't convert string to int64: '%s'"

// ErrorConvertToFloat64 holds the text for a float64 conversion failure.
// It has a string placeholder '%s' for the offending value.
var ErrorConvertToFloat64 = "Can't convert string to float64: '%s'"

// ErrorValueOutOfRange holds the text for a value that is well formed but
// doesn't fit the receiver type.
// It has a string placeholder '%s' for the offending value.
var ErrorValueOutOfRange = "Value '%s' is out of range"

// ErrorInvalidValue holds the text for a caller provided Value receiver
// rejecting its argument.
// It has string placeholders '%s' for the offending value and the underlying
// error.
var ErrorInvalidValue = "Invalid value '%s': %s"

// ErrorMissingValue holds the text for a non boolean parameter matched at the
// end of the argument vector.
// It has a string placeholder '%s' for the parameter name.
var ErrorMissingValue = "Missing value for option '%s'!"

// ErrorUnknownOption holds the text for an unregistered long name.
// It has a string placeholder '%s' for the name.
var ErrorUnknownOption = "Unknown option '%s'"

// ErrorUnknownKey holds the text for an unregistered single character key.
// It has a rune placeholder '%c' for the key.
var ErrorUnknownKey = "Unknown key '%c'"

// Registration misuse messages. These are programmer errors and are delivered
// through a panic, not through the accumulated error list.
var (
	ErrorEmptyName          = "Option name can't be empty"
	ErrorDuplicateOption    = "Option '%s' is already defined"
	ErrorDuplicateKey       = "Key '%c' is already defined for option '%s'"
	ErrorDuplicateRemainder = "Remainder is already defined"
)
