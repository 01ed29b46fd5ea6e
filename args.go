// args.go: Typed format arguments for the cyclefmt library
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

import (
	"strconv"
	"unicode/utf8"
)

// argKind identifies the payload carried by an Arg
type argKind uint8

const (
	kindString argKind = iota + 1
	kindBytes
	kindInt
	kindUint
	kindFloat
	kindBool
	kindRune
)

// Arg is one typed format argument. Both formatter passes (measurement and
// emission) consume the same Arg through the same per-kind sizing, so the
// measured length always matches the emitted length. Construct values with
// String, Bytes, Int, Int64, Uint, Float, Bool or Rune.
type Arg struct {
	kind argKind
	str  string
	raw  []byte
	num  int64
	unum uint64
	fnum float64
}

// String wraps a string argument for %s, %x, %X or %v
func String(s string) Arg { return Arg{kind: kindString, str: s} }

// Bytes wraps a byte slice argument for %s, %x, %X or %v
func Bytes(b []byte) Arg { return Arg{kind: kindBytes, raw: b} }

// Int wraps an int argument for %d, %x, %X or %v
func Int(v int) Arg { return Arg{kind: kindInt, num: int64(v)} }

// Int64 wraps an int64 argument for %d, %x, %X or %v
func Int64(v int64) Arg { return Arg{kind: kindInt, num: v} }

// Uint wraps a uint64 argument for %d, %x, %X or %v
func Uint(v uint64) Arg { return Arg{kind: kindUint, unum: v} }

// Float wraps a float64 argument for %f, %g or %v
func Float(v float64) Arg { return Arg{kind: kindFloat, fnum: v} }

// Bool wraps a bool argument for %t or %v
func Bool(v bool) Arg {
	a := Arg{kind: kindBool}
	if v {
		a.num = 1
	}
	return a
}

// Rune wraps a rune argument for %c, %s or %v
func Rune(r rune) Arg { return Arg{kind: kindRune, num: int64(r)} }

// defaultVerb maps an argument kind to the verb %v resolves to
func (a Arg) defaultVerb() byte {
	switch a.kind {
	case kindString, kindBytes:
		return 's'
	case kindInt, kindUint:
		return 'd'
	case kindFloat:
		return 'g'
	case kindBool:
		return 't'
	case kindRune:
		return 'c'
	}
	return 0
}

// size returns the number of bytes appendTo would produce for the verb.
// Numeric sizing formats into a stack scratch buffer, so the measurement
// pass stays allocation-free for values of ordinary magnitude; %q is the
// exception, since Go quoting has no length-only form.
func (a Arg) size(verb byte) (int, error) {
	if verb == 'v' {
		verb = a.defaultVerb()
	}
	var scratch [64]byte
	switch verb {
	case 's':
		switch a.kind {
		case kindString:
			return len(a.str), nil
		case kindBytes:
			return len(a.raw), nil
		case kindRune:
			n := utf8.RuneLen(rune(a.num))
			if n < 0 {
				return 0, ErrBadRune
			}
			return n, nil
		}
	case 'q':
		switch a.kind {
		case kindString:
			return len(strconv.Quote(a.str)), nil
		case kindBytes:
			return len(strconv.Quote(string(a.raw))), nil
		case kindRune:
			if !utf8.ValidRune(rune(a.num)) {
				return 0, ErrBadRune
			}
			return len(strconv.QuoteRune(rune(a.num))), nil
		}
	case 'd':
		switch a.kind {
		case kindInt:
			return len(strconv.AppendInt(scratch[:0], a.num, 10)), nil
		case kindUint:
			return len(strconv.AppendUint(scratch[:0], a.unum, 10)), nil
		}
	case 'x', 'X':
		switch a.kind {
		case kindInt:
			return len(strconv.AppendInt(scratch[:0], a.num, 16)), nil
		case kindUint:
			return len(strconv.AppendUint(scratch[:0], a.unum, 16)), nil
		case kindString:
			return len(a.str) * 2, nil
		case kindBytes:
			return len(a.raw) * 2, nil
		}
	case 'f':
		if a.kind == kindFloat {
			return len(strconv.AppendFloat(scratch[:0], a.fnum, 'f', -1, 64)), nil
		}
	case 'g':
		if a.kind == kindFloat {
			return len(strconv.AppendFloat(scratch[:0], a.fnum, 'g', -1, 64)), nil
		}
	case 't':
		if a.kind == kindBool {
			if a.num != 0 {
				return len("true"), nil
			}
			return len("false"), nil
		}
	case 'c':
		if a.kind == kindRune {
			n := utf8.RuneLen(rune(a.num))
			if n < 0 {
				return 0, ErrBadRune
			}
			return n, nil
		}
	default:
		return 0, ErrBadVerb
	}
	return 0, ErrArgMismatch
}

const hexLower = "0123456789abcdef"
const hexUpper = "0123456789ABCDEF"

// appendTo appends the argument rendered with the verb. It assumes the
// verb/kind pair was validated by size on the measurement pass.
func (a Arg) appendTo(dst []byte, verb byte) []byte {
	if verb == 'v' {
		verb = a.defaultVerb()
	}
	switch verb {
	case 's':
		switch a.kind {
		case kindString:
			return append(dst, a.str...)
		case kindBytes:
			return append(dst, a.raw...)
		case kindRune:
			return utf8.AppendRune(dst, rune(a.num))
		}
	case 'q':
		switch a.kind {
		case kindString:
			return strconv.AppendQuote(dst, a.str)
		case kindBytes:
			return strconv.AppendQuote(dst, string(a.raw))
		case kindRune:
			return strconv.AppendQuoteRune(dst, rune(a.num))
		}
	case 'd':
		if a.kind == kindInt {
			return strconv.AppendInt(dst, a.num, 10)
		}
		return strconv.AppendUint(dst, a.unum, 10)
	case 'x', 'X':
		switch a.kind {
		case kindInt, kindUint:
			mark := len(dst)
			if a.kind == kindInt {
				dst = strconv.AppendInt(dst, a.num, 16)
			} else {
				dst = strconv.AppendUint(dst, a.unum, 16)
			}
			if verb == 'X' {
				upperHexInPlace(dst[mark:])
			}
			return dst
		case kindString:
			return appendHex(dst, a.str, verb == 'X')
		case kindBytes:
			return appendHexBytes(dst, a.raw, verb == 'X')
		}
	case 'f':
		return strconv.AppendFloat(dst, a.fnum, 'f', -1, 64)
	case 'g':
		return strconv.AppendFloat(dst, a.fnum, 'g', -1, 64)
	case 't':
		if a.num != 0 {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case 'c':
		return utf8.AppendRune(dst, rune(a.num))
	}
	return dst
}

// appendHex appends two hex digits per input byte
func appendHex(dst []byte, s string, upper bool) []byte {
	digits := hexLower
	if upper {
		digits = hexUpper
	}
	for i := 0; i < len(s); i++ {
		dst = append(dst, digits[s[i]>>4], digits[s[i]&0x0f])
	}
	return dst
}

// appendHexBytes is appendHex without the string conversion
func appendHexBytes(dst []byte, b []byte, upper bool) []byte {
	digits := hexLower
	if upper {
		digits = hexUpper
	}
	for i := 0; i < len(b); i++ {
		dst = append(dst, digits[b[i]>>4], digits[b[i]&0x0f])
	}
	return dst
}

// upperHexInPlace uppercases the hex digits strconv produced
func upperHexInPlace(b []byte) {
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - ('a' - 'A')
		}
	}
}
