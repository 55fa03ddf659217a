// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/dispatch_csi.go
// Summary: CSI_DISPATCH: cursor motion, erasure, scrolling,
// margins, tab control, SM/RM modes (ANSI and DEC private, including the
// alternate-screen family), device attributes, status reports, and the
// soft-reset/compatibility-level 'p' group. SGR ('m') is dispatched
// separately to handleSGR in dispatch_sgr.go.
// Usage: Part of the VTE core command interpreter.

package vte

import "fmt"

// csiDispatch runs the action for a completed CSI sequence (final byte
// final, with accumulated parameters in v.csi and collected
// intermediates/markers in v.flags).
func (v *VTE) csiDispatch(final rune) {
	switch final {
	case 'A': // CUU
		v.screen.MoveCursor(-v.csi.get(0, 1), 0)
	case 'B', 'e': // CUD, VPR
		v.screen.MoveCursor(v.csi.get(0, 1), 0)
	case 'C': // CUF
		v.screen.MoveCursor(0, v.csi.get(0, 1))
	case 'D': // CUB
		v.screen.MoveCursor(0, -v.csi.get(0, 1))
	case 'G', '`': // CHA, HPA
		row, _ := v.screen.CursorPos()
		v.screen.SetCursorPos(row, v.csi.get(0, 1)-1)
	case 'd': // VPA
		_, col := v.screen.CursorPos()
		v.screen.SetCursorPos(v.csi.get(0, 1)-1, col)
	case 'H', 'f': // CUP, HVP
		v.screen.SetCursorPos(v.csi.get(0, 1)-1, v.csi.get(1, 1)-1)
	case 'Z': // CBT
		v.screen.TabLeft(v.csi.get(0, 1))
	case 'I': // CHT
		v.screen.TabRight(v.csi.get(0, 1))

	case 'J': // ED
		v.eraseInDisplay()
	case 'K': // EL
		v.eraseInLine()
	case 'X': // ECH
		v.screen.EraseChars(v.csi.get(0, 1))

	case 'S': // SU
		v.screen.ScrollUp(v.csi.get(0, 1))
	case 'T': // SD
		v.screen.ScrollDown(v.csi.get(0, 1))
	case 'L': // IL
		v.screen.InsertLines(v.csi.get(0, 1))
	case 'M': // DL
		v.screen.DeleteLines(v.csi.get(0, 1))
	case '@': // ICH
		v.screen.InsertChars(v.csi.get(0, 1))
	case 'P': // DCH
		v.screen.DeleteChars(v.csi.get(0, 1))

	case 'r': // DECSTBM
		rows, _ := v.screen.Size()
		top := v.csi.get(0, 1) - 1
		bottom := v.csi.get(1, rows) - 1
		v.screen.SetMargins(top, bottom)
		v.screen.SetCursorPos(0, 0)

	case 'g': // TBC
		switch v.csi.get(0, 0) {
		case 0:
			v.screen.ResetTabStop()
		case 3:
			v.screen.ResetAllTabStops()
		}

	case 'm': // SGR
		v.handleSGR(v.csi.slice())

	case 'h': // SM
		v.setModes(true)
	case 'l': // RM
		v.setModes(false)

	case 'c': // DA
		v.primaryDA(v.flags&flagGreater != 0)

	case 'n': // DSR
		v.deviceStatusReport()

	case 'p':
		v.dispatchP()

	default:
		// Unrecognized CSI final: silently absorbed, not an error.
	}
}

func (v *VTE) eraseInDisplay() {
	selective := v.flags&flagQuestion != 0
	switch v.csi.get(0, 0) {
	case 0:
		v.screen.Erase(EraseCursorToScreen, selective)
	case 1:
		v.screen.Erase(EraseScreenToCursor, selective)
	case 2, 3:
		v.screen.Erase(EraseScreen, selective)
	}
}

func (v *VTE) eraseInLine() {
	selective := v.flags&flagQuestion != 0
	switch v.csi.get(0, 0) {
	case 0:
		v.screen.Erase(EraseToEnd, selective)
	case 1:
		v.screen.Erase(EraseToCursor, selective)
	case 2:
		v.screen.Erase(EraseCurrentLine, selective)
	}
}

// setModes implements SM (on=true) / RM (on=false) for both the ANSI mode
// numbers and, when the '?' marker is present, the DEC private numbers.
// A single sequence may carry several mode numbers (e.g. CSI ?1;4h); each
// is applied independently.
func (v *VTE) setModes(on bool) {
	private := v.flags&flagQuestion != 0
	for _, n := range v.csi.slice() {
		if n < 0 {
			continue
		}
		if private {
			v.setPrivateMode(n, on)
		} else {
			v.setANSIMode(n, on)
		}
	}
}

func (v *VTE) setANSIMode(n int, on bool) {
	switch n {
	case 2: // KAM
		v.modes.KeyboardAction = on
	case 4: // IRM
		v.modes.InsertReplace = on
		v.screen.SetFlag(FlagInsert, on)
	case 12: // SRM - set means local echo off
		v.modes.LocalEcho = !on
	case 20: // LNM
		v.modes.LineFeedNewLine = on
	}
}

func (v *VTE) setPrivateMode(n int, on bool) {
	switch n {
	case 1: // DECCKM
		v.modes.CursorKey = on
	case 3: // DECCOLM (80/132 column switch): accepted, not implemented.
	case 5: // DECSCNM
		v.modes.InverseScreen = on
		v.screen.SetFlag(FlagInverse, on)
	case 6: // DECOM
		v.modes.OriginMode = on
		v.screen.SetFlag(FlagOrigin, on)
		v.screen.SetCursorPos(0, 0)
	case 7: // DECAWM
		v.modes.AutoWrap = on
		v.screen.SetFlag(FlagAutoWrap, on)
	case 8: // DECARM
		v.modes.AutoRepeat = on
	case 9, 1000, 1002, 1003, 1005, 1006, 1015: // mouse reporting variants: accepted, not wired.
	case 25: // DECTCEM
		v.modes.CursorVisible = on
		v.screen.SetFlag(FlagHideCursor, !on)
	case 42: // national replacement charsets
		v.modes.NationalCharset = on
	case 47:
		v.setAltScreen(on, false, false)
	case 1047:
		v.setAltScreen(on, true, false)
	case 1048: // cursor save/restore only; the active buffer is unchanged.
		if !v.modes.TiteInhibit {
			if on {
				v.saveState()
			} else {
				v.restoreState()
			}
		}
	case 1049:
		v.setAltScreen(on, true, true)
	case 2004: // bracketed paste: accepted, not wired (no paste source in this module).
	case 2026: // synchronized update: accepted, no-op (no batched renderer here).
	}
}

// setAltScreen handles the buffer-switching members of the alternate-screen
// family (47/1047/1049). eraseOnEnter requests a screen clear when entering
// the alternate buffer (1047/1049); saveCursor requests the DECSC/DECRC
// cursor snapshot (1049). The whole family, 1048 included, is gated behind
// TiteInhibit.
func (v *VTE) setAltScreen(on, eraseOnEnter, saveCursor bool) {
	if v.modes.TiteInhibit {
		return
	}
	if on {
		if saveCursor {
			v.saveState()
		}
		v.screen.SetFlag(FlagAlternate, true)
		if eraseOnEnter {
			v.screen.Erase(EraseScreen, false)
		}
		return
	}
	v.screen.SetFlag(FlagAlternate, false)
	if saveCursor {
		v.restoreState()
	}
}

// primaryDA replies to DA (CSI c / CSI >c). secondary selects the
// secondary-DA form (the '>' marker was present).
func (v *VTE) primaryDA(secondary bool) {
	if secondary {
		v.emit([]byte("\x1b[>1;1;0c"))
		return
	}
	v.emit([]byte("\x1b[?62;1;6;9;15c"))
}

// deviceStatusReport implements DSR (CSI n): 5 reports OK status, 6
// reports the cursor position (CPR).
func (v *VTE) deviceStatusReport() {
	switch v.csi.get(0, 0) {
	case 5:
		v.emit([]byte("\x1b[0n"))
	case 6:
		row, col := v.screen.CursorPos()
		if row < 0 || col < 0 {
			v.emit([]byte("\x1b[0;0R"))
			return
		}
		v.emit([]byte(fmt.Sprintf("\x1b[%d;%dR", row+1, col+1)))
	}
}

// dispatchP implements the CSI...p group: '!' soft reset (DECSTR), '$'
// request-mode (simplified to the same soft reset, since no query
// round-trip is implemented), '>' XTMODKEYS (accepted, no-op), and with no
// marker, DECSCL (compatibility level).
func (v *VTE) dispatchP() {
	switch {
	case v.flags&flagBang != 0, v.flags&flagDollar != 0:
		v.Reset()
	case v.flags&flagGreater != 0:
		// XTMODKEYS: accepted syntactically, not wired to any behavior.
	default:
		v.setCompatibilityLevel()
	}
}

func (v *VTE) setCompatibilityLevel() {
	level := v.csi.get(0, 61)
	switch level {
	case 61:
		v.modes.Use7Bit = true
		v.modes.UseC1 = false
	case 62, 63, 64:
		v.modes.Use7Bit = false
		v.modes.UseC1 = v.csi.get(1, 0) == 2
	}
}
