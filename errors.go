// errors.go: Error values for the cyclefmt library
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

import (
	"errors"
	"fmt"
)

// Errors reported by the formatter. Render returns them wrapped in a
// *FormatError that records the position of the offending directive; no
// slot storage is modified when a render fails.
var (
	// ErrBadVerb reports a directive with an unsupported verb character.
	ErrBadVerb = errors.New("unknown format verb")
	// ErrNoVerb reports a format string that ends with a bare '%'.
	ErrNoVerb = errors.New("format string ends before verb")
	// ErrMissingArg reports a directive with no argument left to consume.
	ErrMissingArg = errors.New("not enough arguments for format")
	// ErrExtraArgs reports arguments left over after the last directive.
	ErrExtraArgs = errors.New("too many arguments for format")
	// ErrArgMismatch reports an argument kind the verb cannot render.
	ErrArgMismatch = errors.New("argument kind does not match verb")
	// ErrBadRune reports a rune argument that is not valid UTF-8.
	ErrBadRune = errors.New("invalid rune argument")
	// ErrRange reports an append target with no room left, mirroring the
	// ERANGE outcome of bounded C-style string concatenation.
	ErrRange = errors.New("no room in destination buffer")
)

// FormatError describes a failed format measurement. Offset is the byte
// index of the '%' that introduced the failing directive (or len(format)
// for ErrExtraArgs), Verb is the directive's verb character (0 when the
// verb itself is missing).
type FormatError struct {
	Offset int
	Verb   byte
	Err    error
}

// Error implements the error interface
func (e *FormatError) Error() string {
	if e.Verb != 0 {
		return fmt.Sprintf("cyclefmt: %v (verb %%%c at offset %d)", e.Err, e.Verb, e.Offset)
	}
	return fmt.Sprintf("cyclefmt: %v (at offset %d)", e.Err, e.Offset)
}

// Unwrap returns the underlying sentinel error for errors.Is checks
func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErr(offset int, verb byte, err error) error {
	return &FormatError{Offset: offset, Verb: verb, Err: err}
}
