// append.go: Bounded append-render into caller-owned buffers
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

import "bytes"

// AppendFormat renders format with args after the existing NUL-terminated
// content of dst, writing at most len(dst) bytes including the terminator.
// dst is caller-owned fixed storage (it is never grown); the existing
// content ends at the first NUL byte, or spans all of dst when no NUL is
// present, in which case there is no room and ErrRange is returned.
//
// The return value is the length the combined string would have had with
// unlimited room, like a bounded C-style formatted concatenation: when it
// is >= len(dst) the output was truncated (still NUL-terminated within
// bounds). Format errors are returned before anything is written.
func AppendFormat(dst []byte, format string, args ...Arg) (int, error) {
	of := bytes.IndexByte(dst, 0)
	if of < 0 {
		of = len(dst)
	}
	if of >= len(dst) {
		return 0, ErrRange
	}

	n, err := measureFormat(format, args)
	if err != nil {
		return 0, err
	}

	room := len(dst) - of - 1
	if n <= room {
		out := emitFormat(dst[of:of], format, args)
		dst[of+len(out)] = 0
		return of + n, nil
	}

	// Truncated: render in full off to the side, keep what fits.
	full := emitFormat(make([]byte, 0, n), format, args)
	copy(dst[of:], full[:room])
	dst[of+room] = 0
	return of + n, nil
}
