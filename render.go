// render.go: Formatted-string producer over the rotating buffer pool
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

// Buffer reuse hysteresis: a slot's storage is replaced when it is too
// small for the current render, and also when it is more than shrinkRatio
// times larger than needed while above the shrinkFloor. The floor prevents
// churn on small buffers; the band deliberately tolerates moderate waste so
// steady-state call patterns reuse storage with no allocation at all.
const (
	shrinkRatio = 4
	shrinkFloor = 64
)

// Render formats args according to format into the pool's next slot and
// returns a borrowed view of the result. The view aliases pool-owned
// storage: it stays valid until this pool serves SlotCount further calls
// (the ring rotates back over the slot) or Teardown runs. Callers that
// need to keep the text longer must copy it, or use RenderString.
//
// The output length is measured with a zero-output pass before anything is
// written; when measurement fails the slot's storage is left untouched and
// the error describes the offending directive.
func (p *Pool) Render(format string, args ...Arg) ([]byte, error) {
	s := p.nextSlot()

	n, err := measureFormat(format, args)
	if err != nil {
		return nil, err
	}
	need := n + 1 // trailing NUL, excluded from the returned view

	if s.buf == nil || len(s.buf) < need ||
		(len(s.buf) > need*shrinkRatio && len(s.buf) > shrinkFloor) {
		p.debug("slot storage replaced", "slot", p.cursor, "old_cap", len(s.buf), "new_cap", need)
		s.buf = make([]byte, need)
		p.reallocs++
	}

	out := emitFormat(s.buf[:0], format, args)
	s.buf[n] = 0
	p.renders++
	return out[:n:n], nil
}

// RenderString is the owned-copy alternative to Render: the returned
// string is independent of the pool and safe to retain past rotation and
// teardown, at the cost of one allocation per call.
func (p *Pool) RenderString(format string, args ...Arg) (string, error) {
	b, err := p.Render(format, args...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
