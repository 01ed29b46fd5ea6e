// format.go: Two-pass template formatter for the cyclefmt library
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

import "strings"

// Supported directives: %s %q %d %x %X %f %g %t %c %v and the literal %%.
// Directives consume typed arguments in order; the verb/kind pairs each
// verb accepts are defined by Arg.size.

// isVerb reports whether c is a supported verb character
func isVerb(c byte) bool {
	switch c {
	case 's', 'q', 'd', 'x', 'X', 'f', 'g', 't', 'c', 'v':
		return true
	}
	return false
}

// measureFormat computes the exact rendered length of format with args
// without producing any output. It validates the whole template: every
// error the formatter can report surfaces here, so a successful
// measurement guarantees emitFormat cannot fail.
func measureFormat(format string, args []Arg) (int, error) {
	n := 0
	ai := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			j := strings.IndexByte(format[i:], '%')
			if j < 0 {
				n += len(format) - i
				break
			}
			n += j
			i += j
			continue
		}
		if i+1 >= len(format) {
			return 0, formatErr(i, 0, ErrNoVerb)
		}
		verb := format[i+1]
		if verb == '%' {
			n++
			i += 2
			continue
		}
		if !isVerb(verb) {
			return 0, formatErr(i, verb, ErrBadVerb)
		}
		if ai >= len(args) {
			return 0, formatErr(i, verb, ErrMissingArg)
		}
		m, err := args[ai].size(verb)
		if err != nil {
			return 0, formatErr(i, verb, err)
		}
		n += m
		ai++
		i += 2
	}
	if ai != len(args) {
		return 0, formatErr(len(format), 0, ErrExtraArgs)
	}
	return n, nil
}

// emitFormat appends the rendered output to dst. It walks the template the
// same way measureFormat does and must only run after a successful
// measurement of the same format and args.
func emitFormat(dst []byte, format string, args []Arg) []byte {
	ai := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			j := strings.IndexByte(format[i:], '%')
			if j < 0 {
				return append(dst, format[i:]...)
			}
			dst = append(dst, format[i:i+j]...)
			i += j
			continue
		}
		verb := format[i+1]
		if verb == '%' {
			dst = append(dst, '%')
			i += 2
			continue
		}
		dst = args[ai].appendTo(dst, verb)
		ai++
		i += 2
	}
	return dst
}
