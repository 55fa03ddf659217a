// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: keyevent/key.go
// Summary: The keyboard-event vocabulary the VTE core's keyboard encoder
// consumes, built on gdamore/tcell/v2's key identity vocabulary.
// Usage: Hosts translate their UI toolkit's key events into a Key and pass
// it to vte.VTE.HandleKeyboard.

package keyevent

import "github.com/gdamore/tcell/v2"

// Key is a host-independent keyboard event: a symbolic key (arrows,
// function keys, Enter, Backspace, ...), an optional literal rune for
// printable input, and the active modifier set. It is a thin wrapper
// around tcell's own vocabulary rather than a reinvention of it, since
// every example in this corpus that handles a real keyboard already
// depends on tcell for exactly this.
type Key struct {
	Sym  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// FromTcell adapts a tcell.EventKey into a Key.
func FromTcell(sym tcell.Key, r rune, mod tcell.ModMask) Key {
	return Key{Sym: sym, Rune: r, Mod: mod}
}

// HasShift, HasAlt, and HasCtrl report the corresponding modifier bit.
func (k Key) HasShift() bool { return k.Mod&tcell.ModShift != 0 }
func (k Key) HasAlt() bool   { return k.Mod&tcell.ModAlt != 0 }
func (k Key) HasCtrl() bool  { return k.Mod&tcell.ModCtrl != 0 }
