// This file is part of argh.
//
// Copyright (C) 2016-2025  The argh authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package argh - command line argument parser that writes flag values straight
into the fields of a caller supplied struct, with no intermediate result
object.

It operates on the raw argument vector (position 0 is the process name) and
leaves every token after the last recognized argument in the remainder.

Usage

The following is a basic example:

	import "github.com/vrtx/argh"

	var cfg struct {
		Infile  string
		TmpPath string
		Rate    float64
		Debug   bool
		Verbose bool
	}

	args := argh.New(os.Args)
	args.StringVar(&cfg.Infile, 'i', "input", "Specify the input file", "./in.foo")
	args.StringVar(&cfg.TmpPath, 't', "temp", "Path for temporary files", "/tmp/")
	args.Float64Var(&cfg.Rate, 'r', "rate", "Rate of entropy", 0.75)
	args.BoolVar(&cfg.Debug, 'd', "debug", "Start in daemon mode")
	args.BoolVar(&cfg.Verbose, 'v', "verbose", "Level of verbosity")
	args.Remainder("output path")

	if !args.Parse() {
		fmt.Fprint(os.Stderr, args.Errors())
		fmt.Fprint(os.Stderr, args.Help())
		os.Exit(2)
	}
	// cfg now holds command line values or the registration defaults.
	// Required/conflicting argument checks and value ranges are the caller's
	// job from here on.

Features

* `--name`, `--name=value` and `--name value` long forms.

* `-k`, `-k=value` and `-k value` single key forms.

* Concatenated boolean keys: `-dv` sets both 'd' and 'v'. A typed key inside
a concatenation consumes the rest of the token as its value, or the next
token when it is the last character.

* `--` stops named argument scanning, everything after it is remainder.

* Parsing never aborts: every malformed token is recorded and scanning
continues, so one pass reports every error.

* The parser only produces strings, it never writes to a stream or exits the
process. Exit code policy belongs to the caller.

Panic

The library will panic if the programmer defines the same key or long name
twice.
*/
package argh

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/vrtx/argh/internal/argiter"
	"github.com/vrtx/argh/internal/param"
	"github.com/vrtx/argh/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// NoKey - declares a parameter addressable by its long name only.
const NoKey rune = 0

// Value - extension point for parameter types beyond the built in ones.
// Set receives the raw value token and reports conversion failures, which
// are recorded as invalid argument errors.
type Value interface {
	Set(string) error
}

// Args - main object. It owns the parameter registry and the accumulated
// error list, and borrows the caller's argument vector for its lifetime.
type Args struct {
	argv     []string // borrowed, never mutated; argv[0] is the process name
	procName string

	params []*param.Param // registration order, drives help and usage output
	byKey  map[rune]*param.Param
	byName map[string]*param.Param

	remainderLabel string
	labelDefined   bool

	remaining []string
	errors    []*ParseError
}

// New - returns an empty registry over the given argument vector.
// This is the starting point when using argh.
// For example:
//
//	args := argh.New(os.Args)
//
// argv is borrowed, not copied: position 0 is the process name and is only
// used for the usage line, positions 1..N-1 are scanned by Parse.
func New(argv []string) *Args {
	a := &Args{
		argv:   argv,
		byKey:  map[rune]*param.Param{},
		byName: map[string]*param.Param{},
	}
	if len(argv) > 0 {
		a.procName = filepath.Base(argv[0])
	}
	return a
}

// failIfDefined will *panic* if a parameter is defined twice.
// This is not an accumulated error because the programmer has to fix this!
func (a *Args) failIfDefined(key rune, name string) {
	Logger.Printf("checking parameter %s", name)
	if name == "" {
		panic(&ParseError{Kind: DuplicateDefinition, Argv: -1, Detail: text.ErrorEmptyName})
	}
	if _, ok := a.byName[name]; ok {
		panic(&ParseError{
			Kind:   DuplicateDefinition,
			Argv:   -1,
			Option: name,
			Detail: fmt.Sprintf(text.ErrorDuplicateOption, name),
		})
	}
	if key != NoKey {
		if prev, ok := a.byKey[key]; ok {
			panic(&ParseError{
				Kind:   DuplicateDefinition,
				Argv:   -1,
				Option: prev.Name,
				Detail: fmt.Sprintf(text.ErrorDuplicateKey, key, prev.Name),
			})
		}
	}
}

func (a *Args) add(p *param.Param) {
	a.params = append(a.params, p)
	a.byName[p.Name] = p
	if p.Key != NoKey {
		a.byKey[p.Key] = p
	}
}

// BoolVar - declares a `bool` parameter.
// A boolean is a pure flag: presence sets it to true and it never consumes a
// value token, in any of its forms. There is no default annotation in help.
func (a *Args) BoolVar(p *bool, key rune, name string, help string) {
	a.failIfDefined(key, name)
	a.add(param.New(key, name, help, param.BoolType, p))
}

// StringVar - declares a `string` parameter.
// The optional trailing argument is the default: it is written through the
// pointer immediately and rendered in the help output. Without it the field
// keeps whatever the caller stored there.
func (a *Args) StringVar(p *string, key rune, name string, help string, def ...string) {
	a.failIfDefined(key, name)
	entry := param.New(key, name, help, param.StringType, p)
	if len(def) > 0 {
		*p = def[0]
		entry.SetDefaultStr(def[0])
	}
	a.add(entry)
}

// IntVar - declares an `int` parameter with an optional default.
func (a *Args) IntVar(p *int, key rune, name string, help string, def ...int) {
	a.failIfDefined(key, name)
	entry := param.New(key, name, help, param.IntType, p)
	if len(def) > 0 {
		*p = def[0]
		entry.SetDefaultStr(fmt.Sprintf("%v", def[0]))
	}
	a.add(entry)
}

// Int64Var - declares an `int64` parameter with an optional default.
func (a *Args) Int64Var(p *int64, key rune, name string, help string, def ...int64) {
	a.failIfDefined(key, name)
	entry := param.New(key, name, help, param.Int64Type, p)
	if len(def) > 0 {
		*p = def[0]
		entry.SetDefaultStr(fmt.Sprintf("%v", def[0]))
	}
	a.add(entry)
}

// Float64Var - declares a `float64` parameter with an optional default.
func (a *Args) Float64Var(p *float64, key rune, name string, help string, def ...float64) {
	a.failIfDefined(key, name)
	entry := param.New(key, name, help, param.Float64Type, p)
	if len(def) > 0 {
		*p = def[0]
		entry.SetDefaultStr(fmt.Sprintf("%v", def[0]))
	}
	a.add(entry)
}

// Var - declares a parameter backed by a caller provided Value.
// The value token is handed to v.Set and a non nil error is recorded as an
// invalid argument.
func (a *Args) Var(v Value, key rune, name string, help string) {
	a.failIfDefined(key, name)
	a.add(param.New(key, name, help, param.SetterType, v.Set))
}

// Remainder - declares the label shown in the usage line for the trailing
// positional arguments. It does not constrain their count or content.
// Only one remainder declaration is allowed per session.
func (a *Args) Remainder(label string) {
	if a.labelDefined {
		panic(&ParseError{Kind: DuplicateDefinition, Argv: -1, Detail: text.ErrorDuplicateRemainder})
	}
	a.labelDefined = true
	a.remainderLabel = label
}

// Parse - call the parse method when done describing.
// It scans the borrowed argument vector left to right, writes every
// successfully converted value through its registered pointer and collects
// the trailing tokens in the remainder.
//
// Scanning is best effort: a malformed token is recorded and scanning
// continues with the next token. Parse returns true only when the error list
// is empty at the end; the specifics stay inspectable through ParseErrors
// and Errors.
func (a *Args) Parse() bool {
	a.errors = nil
	a.remaining = nil
	if len(a.argv) < 2 {
		return true
	}
	iter := argiter.New(a.argv[1:])
	for iter.Next() {
		raw := iter.Value()
		Logger.Printf("parse arg: %s\n", raw)
		tok, ok := classifyToken(raw)
		if !ok {
			// First non flag token: this and everything after it is
			// remainder, flag shaped or not.
			a.remaining = append(a.remaining, iter.Remaining()...)
			break
		}
		if tok.terminator {
			if iter.Next() {
				a.remaining = append(a.remaining, iter.Remaining()...)
			}
			break
		}
		if tok.long {
			a.handleLong(iter, tok)
			continue
		}
		a.handleShort(iter, tok)
	}
	Logger.Printf("remaining: %v, errors: %d\n", a.remaining, len(a.errors))
	return len(a.errors) == 0
}

// argvIndex - position of the iterator's current token in the full argv.
func argvIndex(iter *argiter.Iter) int {
	return iter.Index() + 1
}

func (a *Args) handleLong(iter *argiter.Iter, tok token) {
	p, ok := a.byName[tok.body]
	if !ok {
		a.record(&ParseError{
			Kind:   UnknownOption,
			Token:  iter.Value(),
			Argv:   argvIndex(iter),
			Detail: fmt.Sprintf(text.ErrorUnknownOption, tok.body),
		})
		return
	}
	if p.OptType == param.BoolType {
		// Presence alone sets the flag, an inline value is ignored.
		_ = p.Save()
		return
	}
	if tok.hasValue {
		a.saveValue(p, tok.value, argvIndex(iter))
		return
	}
	a.consumeNext(iter, p)
}

func (a *Args) handleShort(iter *argiter.Iter, tok token) {
	keys := []rune(tok.body)
	for i, key := range keys {
		p, ok := a.byKey[key]
		if !ok {
			a.record(&ParseError{
				Kind:   UnknownOption,
				Token:  iter.Value(),
				Argv:   argvIndex(iter),
				Detail: fmt.Sprintf(text.ErrorUnknownKey, key),
			})
			continue
		}
		if p.OptType == param.BoolType {
			_ = p.Save()
			continue
		}
		// A typed key consumes the rest of the token as its value. As the
		// last character it takes the inline value, or the next token.
		if i+1 < len(keys) {
			value := string(keys[i+1:])
			if tok.hasValue {
				value += "=" + tok.value
			}
			a.saveValue(p, value, argvIndex(iter))
			return
		}
		if tok.hasValue {
			a.saveValue(p, tok.value, argvIndex(iter))
			return
		}
		a.consumeNext(iter, p)
		return
	}
}

// consumeNext - takes the next token as the parameter's value or records a
// missing value error when the vector is exhausted.
func (a *Args) consumeNext(iter *argiter.Iter, p *param.Param) {
	value, ok := iter.PeekNextValue()
	if !ok {
		a.record(&ParseError{
			Kind:   MissingValue,
			Token:  iter.Value(),
			Argv:   argvIndex(iter),
			Option: p.Name,
			Detail: fmt.Sprintf(text.ErrorMissingValue, p.Name),
		})
		return
	}
	iter.Next()
	a.saveValue(p, value, argvIndex(iter))
}

// saveValue - hands the raw value to the parameter and records a typed error
// on conversion failure. The target field is only written on success.
func (a *Args) saveValue(p *param.Param, value string, argvIdx int) {
	err := p.Save(value)
	if err == nil {
		return
	}
	kind := InvalidArgument
	if errors.Is(err, param.ErrOutOfRange) {
		kind = OutOfRange
	}
	a.record(&ParseError{
		Kind:   kind,
		Token:  value,
		Argv:   argvIdx,
		Option: p.Name,
		Detail: err.Error(),
	})
}

func (a *Args) record(e *ParseError) {
	Logger.Printf("error: %s\n", e)
	a.errors = append(a.errors, e)
}

// Called - indicates if the parameter was set on the command line.
func (a *Args) Called(name string) bool {
	if p, ok := a.byName[name]; ok {
		return p.Called
	}
	return false
}

// Remaining - the ordered trailing tokens found after the last recognized
// argument, possibly empty.
func (a *Args) Remaining() []string {
	return a.remaining
}

// ParseErrors - the errors recorded by the last Parse call, in scan order.
func (a *Args) ParseErrors() []*ParseError {
	return a.errors
}

// Errors - renders the accumulated errors for display, one per line:
//
//	Error: <description> @ [<offending token>]
//
// Returns an empty string when the last Parse succeeded.
func (a *Args) Errors() string {
	out := ""
	for _, e := range a.errors {
		out += fmt.Sprintf("Error: %s @ [%s]\n", e.Kind, e.Token)
	}
	return out
}
