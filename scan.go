// scan.go: Byte-map scanning and comparison primitives
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

// Stateless string primitives that commonly sit next to the formatted-
// string producer in parser and tokenizer code. They build a 256-entry
// byte map once per call and scan with it, so the character sets may be
// arbitrarily large without changing the scan cost. None of them touch
// pool state.

// IndexDelim returns the index of the first byte of s that occurs in
// delims. When no delimiter is found it returns len(s) if matchEnd is set
// (treating end-of-string as a delimiter), -1 otherwise.
func IndexDelim(s string, delims string, matchEnd bool) int {
	var isDelim [256]bool
	for i := 0; i < len(delims); i++ {
		isDelim[delims[i]] = true
	}
	for i := 0; i < len(s); i++ {
		if isDelim[s[i]] {
			return i
		}
	}
	if matchEnd {
		return len(s)
	}
	return -1
}

// spanMap counts leading bytes of s whose map entry equals accept
func spanMap(s string, accept bool, m *[256]bool) int {
	for i := 0; i < len(s); i++ {
		if m[s[i]] != accept {
			return i
		}
	}
	return len(s)
}

// Span returns the length of the leading run of s consisting entirely of
// bytes from accept.
func Span(s string, accept string) int {
	var m [256]bool
	for i := 0; i < len(accept); i++ {
		m[accept[i]] = true
	}
	return spanMap(s, true, &m)
}

// SpanNone returns the length of the leading run of s containing no bytes
// from reject.
func SpanNone(s string, reject string) int {
	var m [256]bool
	for i := 0; i < len(reject); i++ {
		m[reject[i]] = true
	}
	return spanMap(s, false, &m)
}

// DiffPos returns the index of the first byte at which a and b differ.
// When one string is a prefix of the other it returns the shorter length;
// when they are identical it returns -1.
func DiffPos(a, b string) int {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return minLen
	}
	return -1
}
