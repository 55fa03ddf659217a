// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/screen_iface.go
// Summary: The screen collaborator contract and callback bundle.
// Usage: Part of the VTE core. The screen/back-buffer data structure itself
// is an external collaborator; this package only depends on the interface.

package vte

// CursorFlag names one of the screen's boolean display flags.
type CursorFlag int

const (
	FlagAutoWrap CursorFlag = iota
	FlagInsert
	FlagHideCursor
	FlagInverse
	FlagOrigin
	FlagAlternate
)

// EraseMode selects which region an Erase call clears.
type EraseMode int

const (
	EraseToEnd          EraseMode = iota // cursor to end of line
	EraseToCursor                        // start of line to cursor
	EraseCurrentLine                     // entire current line only
	EraseCursorToScreen                  // cursor to end of screen (multi-line)
	EraseScreenToCursor                  // start of screen to cursor (multi-line)
	EraseScreen                          // entire screen
)

// Screen is the contract a host's screen/back-buffer collaborator must
// satisfy. The cell store, scrollback, and rendering are deliberately
// kept out of this module's scope; the VTE core only ever calls through
// this interface.
type Screen interface {
	// Cursor get/set/move (relative and absolute), all 0-based.
	CursorPos() (row, col int)
	SetCursorPos(row, col int)
	MoveCursor(drow, dcol int)
	ColumnHome()

	// Tab stops.
	TabLeft(n int)
	TabRight(n int)
	SetTabStop()
	ResetTabStop()
	ResetAllTabStops()

	// Line motion with scroll-region awareness.
	Newline()      // IND: move down one row, scrolling at the bottom margin
	ReverseIndex() // RI: move up one row, scrolling at the top margin
	ScrollUp(n int)
	ScrollDown(n int)

	// Line/char insert-delete within the scrolling region.
	InsertLines(n int)
	DeleteLines(n int)
	InsertChars(n int)
	DeleteChars(n int)

	// Erasure. selective preserves protected cells (DECSED/DECSEL, the
	// CSI '?' variants of J/K).
	Erase(mode EraseMode, selective bool)
	EraseChars(n int)

	// Mode flags and margins.
	SetFlag(flag CursorFlag, on bool)
	SetMargins(top, bottom int)

	// Attributes and content.
	SetDefaultAttribute(attr Attribute)
	WriteSymbol(r rune, attr Attribute)

	// Size, for cursor-motion clamping and reports.
	Size() (rows, cols int)

	// Lifecycle.
	Reset()
	ClearScrollback()
}

// WriteFunc is the outbound-write callback signature. The VTE never
// enqueues writes; it calls this synchronously from Input() for the
// replies it generates. HandleKeyboard() returns its bytes instead.
type WriteFunc func(data []byte)

// BellFunc is invoked on BEL.
type BellFunc func()

// OSCFunc receives a NUL-terminated OSC payload on OSC termination.
// Interpretation is the host's concern.
type OSCFunc func(payload []byte)
