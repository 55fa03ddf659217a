// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/dispatch_execute.go
// Summary: C0/C1 EXECUTE dispatch.
// Usage: Part of the VTE core command interpreter.

package vte

// execute runs the EXECUTE action for one C0 or C1 control code.
func (v *VTE) execute(r rune) {
	switch r {
	case 0x05: // ENQ
		v.emit([]byte{0x06})
	case 0x07: // BEL
		if v.bell != nil {
			v.bell()
		}
	case 0x08: // BS
		v.screen.MoveCursor(0, -1)
	case 0x09: // HT
		v.screen.TabRight(1)
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		if v.modes.LineFeedNewLine {
			v.screen.ColumnHome()
		}
		v.screen.Newline()
	case 0x0D: // CR
		v.screen.ColumnHome()
	case 0x0E: // SO - GL := G1
		v.charset.gl = 1
	case 0x0F: // SI - GL := G0
		v.charset.gl = 0
	case 0x1A: // SUB - print an inverted-question-mark replacement glyph.
		v.print(0x00BF)
	case 0x1F:
		// Deliberately ignored (treated as if DEL).
	case 0x84: // IND (C1)
		v.indexDown()
	case 0x85: // NEL (C1)
		v.nextLine()
	case 0x88: // HTS (C1)
		v.screen.SetTabStop()
	case 0x8D: // RI (C1)
		v.reverseIndex()
	case 0x8E: // SS2 (C1)
		v.charset.glt = 2
		v.charset.grt = 2
	case 0x8F: // SS3 (C1)
		v.charset.glt = 3
		v.charset.grt = 3
	case 0x9A: // DECID (C1)
		v.primaryDA(false)
	default:
		// All other C0/C1 codes (NUL and any unnamed controls) are no-ops.
	}
}
