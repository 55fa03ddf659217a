// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/dispatch_esc.go
// Summary: ESC_DISPATCH.
// Usage: Part of the VTE core command interpreter.

package vte

// escDispatch runs the action for a completed ESC sequence (final byte
// final, with any collected intermediate reflected in v.flags /
// v.intermediateByte).
func (v *VTE) escDispatch(final rune) {
	// Character-set designators: '(' G0, ')' G1, '*' G2, '+' G3.
	if slot, ok := designatorTarget(v.flags); ok {
		v.g(slot, final)
		return
	}

	if v.flags&flagSpace != 0 {
		switch final {
		case 'F': // S7C1T
			v.modes.UseC1 = false
		case 'G': // S8C1T
			v.modes.UseC1 = true
		}
		return
	}

	switch final {
	case 'D': // IND
		v.indexDown()
	case 'E': // NEL
		v.nextLine()
	case 'H': // HTS
		v.screen.SetTabStop()
	case 'M': // RI
		v.reverseIndex()
	case 'N': // SS2
		v.charset.glt = 2
		v.charset.grt = 2
	case 'O': // SS3
		v.charset.glt = 3
		v.charset.grt = 3
	case 'Z': // DECID
		v.primaryDA(false)
	case '~': // LS1R
		v.charset.gr = 1
	case 'n': // LS2
		v.charset.gl = 2
	case '}': // LS2R
		v.charset.gr = 2
	case 'o': // LS3
		v.charset.gl = 3
	case '|': // LS3R
		v.charset.gr = 3
	case '=': // DECKPAM
		v.modes.KeypadApp = true
	case '>': // DECKPNM
		v.modes.KeypadApp = false
	case 'c': // RIS
		v.hardReset()
	case '7': // DECSC
		v.saveState()
	case '8': // DECRC
		v.restoreState()
	case '\\':
		// ST (7-bit String Terminator); the real work already happened
		// via the universal-transition exit action when this state was
		// entered.
	default:
		// Unrecognized ESC final: no-op.
	}
}

// designatorTarget maps the single collected intermediate paren/star/plus
// flag to a G-set index, if one of those four is present.
func designatorTarget(f csiFlags) (int, bool) {
	switch {
	case f&flagLParen != 0:
		return 0, true
	case f&flagRParen != 0:
		return 1, true
	case f&flagStar != 0:
		return 2, true
	case f&flagPlus != 0:
		return 3, true
	}
	return 0, false
}

// g designates final as the charset for G-slot index gset.
func (v *VTE) g(gset int, final rune) {
	var slot charsetSlot
	switch final {
	case 'B':
		slot = charsetASCII
	case '0':
		slot = charsetDECSpecial
	case '<':
		slot = charsetDECSupplemental
	default:
		// National replacement charsets are accepted syntactically but
		// fall back to ASCII; this is a documented limitation.
		slot = charsetASCII
	}
	v.charset.g[gset] = slot
}

func (v *VTE) indexDown() {
	v.screen.Newline()
}

func (v *VTE) reverseIndex() {
	v.screen.ReverseIndex()
}

func (v *VTE) nextLine() {
	v.screen.ColumnHome()
	v.screen.Newline()
}
