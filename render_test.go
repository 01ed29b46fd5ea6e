// render_test.go: Property tests for the formatted-string producer
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRender_CapacitySufficiency checks that every render leaves the slot
// with strictly more capacity than the rendered length (the reserved
// terminator accounts for the strict inequality).
func TestRender_CapacitySufficiency(t *testing.T) {
	pool := NewWithConfig(Config{SlotCount: 2})

	cases := []struct {
		format string
		args   []Arg
	}{
		{"", nil},
		{"plain literal", nil},
		{"%s", []Arg{String("abc")}},
		{"%d bytes in %s", []Arg{Int(42), String("buffer")}},
		{"%s", []Arg{String(strings.Repeat("x", 500))}},
		{"%f", []Arg{Float(3.14159)}},
	}

	for _, tc := range cases {
		out, err := pool.Render(tc.format, tc.args...)
		require.NoError(t, err, "format %q", tc.format)
		require.Less(t, len(out), len(pool.slots[pool.cursor].buf),
			"format %q: rendered length must be below slot capacity", tc.format)
	}
}

// TestRender_AliasingAfterWraparound checks that with 3 slots the 4th call
// reuses the 1st call's storage and overwrites its content.
func TestRender_AliasingAfterWraparound(t *testing.T) {
	pool := NewWithConfig(Config{SlotCount: 3})

	v1, err := pool.Render("%s", String("AAAA"))
	require.NoError(t, err)
	require.Equal(t, "AAAA", string(v1))

	_, err = pool.Render("%s", String("BBBB"))
	require.NoError(t, err)
	_, err = pool.Render("%s", String("CCCC"))
	require.NoError(t, err)

	// Same rendered length, so the 4th call reuses slot 0's storage as-is
	v4, err := pool.Render("%s", String("DDDD"))
	require.NoError(t, err)

	require.Same(t, &v1[0], &v4[0], "call 4 must land on call 1's storage")
	require.Equal(t, "DDDD", string(v1), "call 1's view must now read call 4's content")
}

// TestRender_NonAliasingWithinWindow checks that calls within one rotation
// window get distinct storage and stay independently correct.
func TestRender_NonAliasingWithinWindow(t *testing.T) {
	pool := NewWithConfig(Config{SlotCount: 3})

	v1, err := pool.Render("first %d", Int(1))
	require.NoError(t, err)
	v2, err := pool.Render("second %d", Int(2))
	require.NoError(t, err)
	v3, err := pool.Render("third %d", Int(3))
	require.NoError(t, err)

	require.NotSame(t, &v1[0], &v2[0])
	require.NotSame(t, &v1[0], &v3[0])
	require.NotSame(t, &v2[0], &v3[0])

	require.Equal(t, "first 1", string(v1))
	require.Equal(t, "second 2", string(v2))
	require.Equal(t, "third 3", string(v3))
}

// TestRender_ShrinkHysteresis checks the grow-then-shrink behavior: a large
// render grows the slot, and the next small render on that slot replaces
// the drastically oversized storage with an exact-size one.
func TestRender_ShrinkHysteresis(t *testing.T) {
	pool := NewWithConfig(Config{SlotCount: 1})

	large := strings.Repeat("z", 500)
	_, err := pool.Render("%s", String(large))
	require.NoError(t, err)
	require.Equal(t, 501, len(pool.slots[0].buf), "capacity after 500-byte render")

	// need = 11; 501 > 11*4 and 501 > 64, so the oversized storage goes
	out, err := pool.Render("%s", String("0123456789"))
	require.NoError(t, err)
	require.Equal(t, "0123456789", string(out))
	require.Equal(t, 11, len(pool.slots[0].buf), "capacity after shrink")

	// Steady state: repeated same-size renders keep the storage
	before := &pool.slots[0].buf[0]
	out, err = pool.Render("%s", String("9876543210"))
	require.NoError(t, err)
	require.Equal(t, "9876543210", string(out))
	require.Same(t, before, &pool.slots[0].buf[0], "same-size render must reuse storage")
}

// TestRender_NoShrinkBelowFloor checks the 64-byte floor: moderately
// oversized small buffers are kept to avoid churn.
func TestRender_NoShrinkBelowFloor(t *testing.T) {
	pool := NewWithConfig(Config{SlotCount: 1})

	_, err := pool.Render("%s", String(strings.Repeat("a", 60))) // cap 61
	require.NoError(t, err)

	// need = 4; 61 > 16 but 61 <= 64, so the storage stays
	before := &pool.slots[0].buf[0]
	_, err = pool.Render("%s", String("abc"))
	require.NoError(t, err)
	require.Equal(t, 61, len(pool.slots[0].buf))
	require.Same(t, before, &pool.slots[0].buf[0])
}

// TestRender_FormatFailureIsNonMutating checks that a failed measurement
// leaves the targeted slot untouched.
func TestRender_FormatFailureIsNonMutating(t *testing.T) {
	pool := NewWithConfig(Config{SlotCount: 1})

	good, err := pool.Render("%s", String("keep me"))
	require.NoError(t, err)
	capBefore := len(pool.slots[0].buf)
	ptrBefore := &pool.slots[0].buf[0]

	out, err := pool.Render("%k", String("bad verb"))
	require.Error(t, err)
	require.Nil(t, out)

	require.Equal(t, capBefore, len(pool.slots[0].buf), "capacity changed by failed render")
	require.Same(t, ptrBefore, &pool.slots[0].buf[0], "storage replaced by failed render")
	require.Equal(t, "keep me", string(good), "previous content changed by failed render")
}

// TestRender_TerminatorWithinCapacity checks the NUL byte sits right after
// the rendered content inside the slot's storage.
func TestRender_TerminatorWithinCapacity(t *testing.T) {
	pool := NewWithConfig(Config{SlotCount: 1})

	out, err := pool.Render("%s=%d", String("n"), Int(7))
	require.NoError(t, err)
	require.Equal(t, "n=7", string(out))
	require.Equal(t, byte(0), pool.slots[0].buf[len(out)])
}

// TestRenderString_OwnedCopy checks that RenderString results survive
// rotation and teardown.
func TestRenderString_OwnedCopy(t *testing.T) {
	pool := NewWithConfig(Config{SlotCount: 1})

	s, err := pool.RenderString("owned %d", Int(1))
	require.NoError(t, err)

	_, err = pool.Render("overwrite %d", Int(2))
	require.NoError(t, err)
	pool.Teardown()

	require.Equal(t, "owned 1", s)

	_, err = pool.RenderString("%q", Int(3))
	require.ErrorIs(t, err, ErrArgMismatch, "RenderString must propagate format errors")
}

// TestRender_EmptyOutput checks the degenerate zero-length render
func TestRender_EmptyOutput(t *testing.T) {
	pool := NewWithConfig(Config{SlotCount: 1})

	out, err := pool.Render("")
	require.NoError(t, err)
	require.Len(t, out, 0)
	require.Equal(t, 1, len(pool.slots[0].buf), "empty render still reserves the terminator")
}
