// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/keyboard.go
// Summary: The keyboard encoder: Key -> PTY-input byte sequence.
// Usage: Part of the VTE core; hosts call HandleKeyboard for every
// keystroke and write the PTY themselves via the returned bytes (the VTE
// does not call its write callback for keyboard input - only for replies
// it generates itself, such as DSR/DA).

package vte

import (
	"github.com/gdamore/tcell/v2"
	"github.com/vtxcore/vte/keyevent"
)

// HandleKeyboard encodes one keyboard event into the byte sequence that
// should be written to the PTY. DECCKM (application cursor keys) selects
// ESC O vs ESC [ for the four arrow keys; DECKPAM (application keypad) is
// not consulted, and no key's encoding depends on it.
func (v *VTE) HandleKeyboard(k keyevent.Key) []byte {
	if v.modes.KeyboardAction {
		return nil // KAM: keyboard locked
	}

	appCursor := v.modes.CursorKey
	switch k.Sym {
	case tcell.KeyUp:
		return ssOr(appCursor, 'A')
	case tcell.KeyDown:
		return ssOr(appCursor, 'B')
	case tcell.KeyRight:
		return ssOr(appCursor, 'C')
	case tcell.KeyLeft:
		return ssOr(appCursor, 'D')
	case tcell.KeyHome:
		return []byte("\x1b[H")
	case tcell.KeyEnd:
		return []byte("\x1b[F")
	case tcell.KeyInsert:
		return []byte("\x1b[2~")
	case tcell.KeyDelete:
		return []byte("\x1b[3~")
	case tcell.KeyPgUp:
		return []byte("\x1b[5~")
	case tcell.KeyPgDn:
		return []byte("\x1b[6~")
	case tcell.KeyF1:
		return []byte("\x1bOP")
	case tcell.KeyF2:
		return []byte("\x1bOQ")
	case tcell.KeyF3:
		return []byte("\x1bOR")
	case tcell.KeyF4:
		return []byte("\x1bOS")
	case tcell.KeyEnter:
		return []byte("\r")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{0x7F}
	case tcell.KeyTab:
		return []byte("\t")
	case tcell.KeyEsc:
		return []byte("\x1b")
	default:
		if k.Rune == 0 {
			return nil
		}
		return []byte(string(k.Rune))
	}
}

// ssOr returns the application-mode (ESC O<final>) or normal-mode
// (ESC [<final>) cursor-key sequence.
func ssOr(app bool, final byte) []byte {
	if app {
		return []byte{0x1b, 'O', final}
	}
	return []byte{0x1b, '[', final}
}
