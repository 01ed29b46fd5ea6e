// types.go: Core types for the cyclefmt rotating buffer library
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

// DefaultSlotCount is the number of rotating buffer slots a pool is
// initialized with when the configuration does not specify one. It bounds
// how many render results from the same pool can be alive at once: the
// view returned by a call is overwritten after DefaultSlotCount further
// calls on that pool.
const DefaultSlotCount = 16

// Logger interface for optional debug and monitoring logging
type Logger interface {
	// Debug logs debug-level messages (slot rotation, storage replacement)
	Debug(msg string, fields ...interface{})
	// Info logs informational messages (pool lifecycle, config changes)
	Info(msg string, fields ...interface{})
	// Warn logs warning messages (potential issues, suspicious configs)
	Warn(msg string, fields ...interface{})
	// Error logs error messages (failed operations)
	Error(msg string, fields ...interface{})
}

// Config defines the configuration for a rotating buffer pool
type Config struct {
	// SlotCount is the number of rotating buffer slots per pool. It is
	// fixed at the pool's lazy initialization; later values are ignored
	// until the pool is torn down. Must be >= 1 (default: DefaultSlotCount).
	SlotCount int `json:"slot_count"`
	// Logger for debug and monitoring (optional, can be nil)
	Logger Logger `json:"-"`
}

// slot is one reusable buffer unit within a pool. Its storage is owned
// exclusively by the pool; render results are borrowed views into it.
// Capacity is len(buf) because every (re)allocation is exact-size.
type slot struct {
	buf []byte
}

// PoolStats provides simplified pool statistics
type PoolStats struct {
	SlotCount int   `json:"slot_count"`
	Cursor    int   `json:"cursor"`
	Renders   int64 `json:"renders"`
	Reallocs  int64 `json:"reallocs"`
	HeldBytes int   `json:"held_bytes"`
}
