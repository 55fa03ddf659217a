// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/reset.go
// Summary: Soft reset (DECSTR), hard reset (RIS), and the DECSC/DECRC
// cursor-state snapshot.
// Usage: Part of the VTE core command interpreter.

package vte

// Reset performs a soft reset (DECSTR / CSI!p): mode flags return to their
// defaults, the current attribute returns to default, and the saved
// cursor snapshot is cleared, but the screen content and cursor position
// are left alone.
func (v *VTE) Reset() {
	v.modes = defaultModes()
	v.charset = defaultCharsetState()
	v.attr = v.defaultAttribute()
	v.screen.SetDefaultAttribute(v.attr)
	v.screen.SetFlag(FlagOrigin, false)
	v.screen.SetFlag(FlagInsert, false)
	v.screen.SetFlag(FlagAutoWrap, true)
	v.screen.SetFlag(FlagHideCursor, false)
	v.savedValid = false
}

// hardReset performs RIS (ESC c) and also runs at construction: every
// piece of session state returns to its initial value and the screen is
// cleared, including scrollback.
func (v *VTE) hardReset() {
	v.state = stateGround
	v.clearAccumulators()
	v.charset = defaultCharsetState()
	v.modes = defaultModes()
	if v.paletteName == "" {
		v.palette = builtinDefault()
	}
	v.attr = v.defaultAttribute()
	v.savedValid = false

	v.screen.SetDefaultAttribute(v.attr)
	v.screen.SetFlag(FlagOrigin, false)
	v.screen.SetFlag(FlagInsert, false)
	v.screen.SetFlag(FlagAutoWrap, true)
	v.screen.SetFlag(FlagHideCursor, false)
	v.screen.SetFlag(FlagAlternate, false)
	v.screen.SetFlag(FlagInverse, false)
	// Reset() does the rest: default (every-8) tab stops, full margins,
	// cursor home, erasing both the current and alternate buffers, and
	// clearing scrollback - RIS's "everything" in one collaborator call.
	v.screen.Reset()
}

// saveState implements DECSC (ESC 7) and the cursor-only half of CSI
// ?1048h/?1049h: capture cursor position, current attribute, charset
// designations, and origin mode.
func (v *VTE) saveState() {
	row, col := v.screen.CursorPos()
	v.saved = savedCursorState{
		row:        row,
		col:        col,
		attr:       v.attr,
		charset:    v.charset,
		originMode: v.modes.OriginMode,
	}
	v.savedValid = true
}

// restoreState implements DECRC (ESC 8) and the cursor-only half of CSI
// ?1048l/?1049l. Restoring when nothing was saved resets to the initial
// cursor-state defaults instead of silently doing nothing, matching
// xterm's documented DECRC-without-DECSC behavior.
func (v *VTE) restoreState() {
	if !v.savedValid {
		v.screen.SetCursorPos(0, 0)
		v.modes.OriginMode = false
		v.screen.SetFlag(FlagOrigin, false)
		return
	}
	v.screen.SetCursorPos(v.saved.row, v.saved.col)
	v.attr = v.saved.attr
	v.screen.SetDefaultAttribute(v.attr)
	v.charset = v.saved.charset
	v.modes.OriginMode = v.saved.originMode
	v.screen.SetFlag(FlagOrigin, v.saved.originMode)
}
