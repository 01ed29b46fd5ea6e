// pool.go: Rotating buffer pool for the cyclefmt library
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

// Package cyclefmt provides a rotating buffer pool for formatted strings.
//
// Each Pool owns a fixed ring of reusable byte buffers. Render writes the
// formatted output into the next buffer in the ring and returns a borrowed
// view of it, so hot paths (log lines, error text, ephemeral labels) get a
// ready-to-use string without a fresh heap allocation per call and without
// an explicit release step.
//
// A Pool is not safe for concurrent use. The intended pattern is one Pool
// per goroutine, created where the goroutine starts (or acquired through a
// Registry) and torn down with Teardown before the goroutine exits. A view
// returned by Render stays valid until the same pool has served SlotCount
// further calls, or until Teardown runs; holding it past either point reads
// overwritten or released memory. RenderString returns an owned copy for
// callers that need to retain the result.
//
// Storage (re)allocation goes through the Go runtime; if the heap is
// exhausted the runtime aborts the process, which is the pool's documented
// allocation-failure policy.
package cyclefmt

import "fmt"

// Pool is a rotating collection of reusable byte buffers plus a cursor.
// The zero value is unusable; obtain pools from New or NewWithConfig.
// It lazily allocates its slot ring on the first render.
type Pool struct {
	cfg    Config
	slots  []slot
	cursor int

	renders  int64
	reallocs int64
}

// New creates a new pool with automatic configuration loading
// Priority: Go config > JSON config > defaults
func New() *Pool {
	return NewWithConfig(loadConfig())
}

// NewWithConfig creates a new pool with the given configuration.
// A non-positive SlotCount falls back to DefaultSlotCount.
func NewWithConfig(config Config) *Pool {
	if config.SlotCount <= 0 {
		config.SlotCount = DefaultSlotCount
	}
	return &Pool{cfg: config}
}

// nextSlot initializes the slot ring on first use or advances the cursor
// to the next slot, and returns that slot. The ring size is fixed at
// initialization; cfg.SlotCount changes after that point have no effect
// until a teardown resets the pool.
func (p *Pool) nextSlot() *slot {
	if len(p.slots) == 0 {
		n := p.cfg.SlotCount
		if n <= 0 {
			n = DefaultSlotCount
		}
		p.slots = make([]slot, n)
		p.cursor = 0
		p.debug("pool initialized", "slot_count", n)
	} else {
		p.cursor = (p.cursor + 1) % len(p.slots)
	}
	return &p.slots[p.cursor]
}

// SlotCount returns the number of slots in the ring, or 0 when the pool
// has not been initialized yet (no render since creation or teardown).
func (p *Pool) SlotCount() int {
	return len(p.slots)
}

// Teardown releases every slot's storage and the slot ring itself,
// returning the pool to the uninitialized state. The next render
// reinitializes it with the configured slot count. Calling Teardown on an
// uninitialized pool is a no-op.
//
// The owning goroutine must call Teardown before it exits, or the pool's
// buffers stay reachable for the pool's lifetime. It must not be called
// while any previously returned view is still being read.
func (p *Pool) Teardown() {
	if len(p.slots) == 0 {
		return
	}
	for i := range p.slots {
		p.slots[i].buf = nil
	}
	p.slots = nil
	p.cursor = 0
	p.debug("pool torn down")
}

// Stats returns simplified pool statistics
func (p *Pool) Stats() PoolStats {
	held := 0
	for i := range p.slots {
		held += len(p.slots[i].buf)
	}
	return PoolStats{
		SlotCount: len(p.slots),
		Cursor:    p.cursor,
		Renders:   p.renders,
		Reallocs:  p.reallocs,
		HeldBytes: held,
	}
}

// String returns a human-readable representation of the statistics
func (s PoolStats) String() string {
	return fmt.Sprintf("PoolStats{slots: %d, cursor: %d, renders: %d, reallocs: %d, held: %d B}",
		s.SlotCount, s.Cursor, s.Renders, s.Reallocs, s.HeldBytes)
}

// debug logs through the configured logger, if any
func (p *Pool) debug(msg string, fields ...interface{}) {
	if p.cfg.Logger != nil {
		p.cfg.Logger.Debug(msg, fields...)
	}
}
