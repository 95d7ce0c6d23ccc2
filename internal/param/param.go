// This file is part of argh.
//
// Copyright (C) 2016-2025  The argh authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package param - internal parameter entry and typed conversion methods.
package param

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/vrtx/argh/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// ErrOutOfRange - reported through errors.Is when a value is well formed but
// outside the representable range of the receiver type.
var ErrOutOfRange = errors.New("")

// Type - indicates the type of parameter.
type Type int

// Parameter types
const (
	BoolType Type = iota
	StringType
	IntType
	Int64Type
	Float64Type
	SetterType
)

// Param - a single registered parameter.
//
// The entry is type erased: the typed receiver pointer is captured at
// registration time and written through exactly once per successful Save.
// The receiver points into caller owned memory, it is never copied.
type Param struct {
	Key         rune   // single character key, 0 when addressable by long name only
	Name        string // long name
	Description string // help text
	OptType     Type
	Called      bool   // indicates if the parameter was set on the command line
	HasDefault  bool   // a default was supplied at registration
	DefaultStr  string // string representation of the default value

	// Receiver pointers:
	pBool    *bool              // receiver for bool pointer
	pString  *string            // receiver for string pointer
	pInt     *int               // receiver for int pointer
	pInt64   *int64             // receiver for int64 pointer
	pFloat64 *float64           // receiver for float64 pointer
	setFn    func(string) error // receiver for a caller provided Value
}

// New - returns a new parameter bound to the given receiver.
// data must be a pointer matching optType, or a `func(string) error` for
// SetterType.
func New(key rune, name string, description string, optType Type, data interface{}) *Param {
	p := &Param{
		Key:         key,
		Name:        name,
		Description: description,
		OptType:     optType,
	}
	switch optType {
	case StringType:
		p.pString = data.(*string)
	case IntType:
		p.pInt = data.(*int)
	case Int64Type:
		p.pInt64 = data.(*int64)
	case Float64Type:
		p.pFloat64 = data.(*float64)
	case SetterType:
		p.setFn = data.(func(string) error)
	default: // BoolType
		p.pBool = data.(*bool)
	}
	return p
}

// SetDefaultStr - records the help rendering of the default value.
// Writing the default through the receiver is the registration caller's job.
func (p *Param) SetDefaultStr(s string) *Param {
	p.HasDefault = true
	p.DefaultStr = s
	return p
}

// Save - converts the raw value and writes it through the receiver pointer.
// Called with no value it handles presence-only parameters: a boolean is set
// to true, anything else is a no-op.
//
// On a conversion failure the receiver is left untouched, the parameter is
// not marked as called and the returned error wraps ErrOutOfRange when the
// value didn't fit the receiver type.
func (p *Param) Save(a ...string) error {
	Logger.Printf("name: %s, optType: %d\n", p.Name, p.OptType)
	if len(a) < 1 {
		if p.OptType == BoolType {
			*p.pBool = true
			p.Called = true
		}
		return nil
	}
	switch p.OptType {
	case StringType:
		*p.pString = a[0]
	case IntType:
		i, err := strconv.ParseInt(a[0], 10, strconv.IntSize)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return fmt.Errorf("%w"+text.ErrorValueOutOfRange, ErrOutOfRange, a[0])
			}
			return fmt.Errorf(text.ErrorConvertToInt, a[0])
		}
		*p.pInt = int(i)
	case Int64Type:
		i, err := strconv.ParseInt(a[0], 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return fmt.Errorf("%w"+text.ErrorValueOutOfRange, ErrOutOfRange, a[0])
			}
			return fmt.Errorf(text.ErrorConvertToInt64, a[0])
		}
		*p.pInt64 = i
	case Float64Type:
		f, err := strconv.ParseFloat(a[0], 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return fmt.Errorf("%w"+text.ErrorValueOutOfRange, ErrOutOfRange, a[0])
			}
			return fmt.Errorf(text.ErrorConvertToFloat64, a[0])
		}
		*p.pFloat64 = f
	case SetterType:
		err := p.setFn(a[0])
		if err != nil {
			return fmt.Errorf(text.ErrorInvalidValue, a[0], err)
		}
	default: // BoolType
		// A boolean is a pure flag, the value is ignored.
		*p.pBool = true
	}
	p.Called = true
	return nil
}

// HelpLine - fixed column help rendering for a single parameter:
// key, long name, default annotation (only when a default was supplied) and
// the help text.
func (p *Param) HelpLine() string {
	key := ""
	if p.Key != 0 {
		key = fmt.Sprintf(" -%c", p.Key)
	}
	def := ""
	if p.HasDefault {
		def = fmt.Sprintf("[default: %s] ", p.DefaultStr)
	}
	return fmt.Sprintf("%-5s%-14s%-24s%s\n", key, "  --"+p.Name, def, p.Description)
}
