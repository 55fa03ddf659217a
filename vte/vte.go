// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/vte.go
// Summary: The VTE struct: the terminal emulator core's top-level handle.
// Usage: New() constructs one bound to a Screen collaborator and an
// outbound-write callback; Input() and HandleKeyboard() are its two entry
// points.

package vte

import (
	"fmt"
	"sync/atomic"
)

// VTE is a single terminal emulation session: the parser state machine,
// the command interpreter, and the keyboard encoder, bound to an
// external Screen collaborator. Callers treat it as reference-counted,
// matching the lifecycle convention of a shared session handle with
// multiple owners.
type VTE struct {
	// Parser state.
	state            parserState
	csi              csiParams
	flags            csiFlags
	intermediateByte byte
	osc              oscBuffer
	utf8             utf8Decoder

	// Interpreter state.
	charset      charsetState
	modes        Modes
	palette      Palette
	paletteName  string
	customPalette *Palette
	attr         Attribute
	saved        savedCursorState
	savedValid   bool

	// Collaborators.
	screen  Screen
	write   WriteFunc
	bell    BellFunc
	oscCB   OSCFunc

	// inInput is the nesting depth of Input() calls. Input() maintains it,
	// but nothing reads it: a callback that re-enters Input() is not
	// blocked, and outbound bytes are not echoed back through the parser.
	inInput int

	refs int32
}

// savedCursorState is the DECSC/DECRC (and 1048/1049) snapshot: cursor
// position, current attribute, charset designations, and origin mode.
type savedCursorState struct {
	row, col   int
	attr       Attribute
	charset    charsetState
	originMode bool
}

// New constructs a VTE bound to screen for display output and write for
// PTY-input bytes: produced bytes are handed to a caller-supplied write
// callback. Both arguments are required.
func New(screen Screen, write WriteFunc) (*VTE, error) {
	if screen == nil {
		return nil, fmt.Errorf("vte: New: screen is nil")
	}
	if write == nil {
		return nil, fmt.Errorf("vte: New: write is nil")
	}
	v := &VTE{
		screen: screen,
		write:  write,
		refs:   1,
	}
	v.hardReset()
	return v, nil
}

// Ref increments the reference count, for hosts that share a VTE across
// multiple owners (e.g. a pane and its title-bar renderer).
func (v *VTE) Ref() {
	atomic.AddInt32(&v.refs, 1)
}

// Unref decrements the reference count and reports whether this was the
// last reference. Callers that receive true should release their
// screen/write resources; the VTE itself holds nothing that needs closing.
func (v *VTE) Unref() bool {
	return atomic.AddInt32(&v.refs, -1) == 0
}

// SetBellCB installs the BEL callback. nil disables it.
func (v *VTE) SetBellCB(cb BellFunc) {
	v.bell = cb
}

// SetOSCCB installs the OSC-dispatch callback. nil means OSC payloads are
// parsed and then discarded.
func (v *VTE) SetOSCCB(cb OSCFunc) {
	v.oscCB = cb
}

// GetDefAttr returns the attribute that would be applied to a freshly
// erased cell: the current SGR state's color references resolved to their
// default palette entries is v.attr already; callers that want the true
// reset default (ignoring any SGR the host has applied) should use
// defaultAttribute via Reset instead. GetDefAttr exposes the live
// current-attribute value, since a screen collaborator needs it for
// newly-written or erased cells.
func (v *VTE) GetDefAttr() Attribute {
	return v.attr
}
