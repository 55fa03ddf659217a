// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package vte

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/vtxcore/vte/keyevent"
)

func TestHandleKeyboardArrowNormalMode(t *testing.T) {
	h := newTestHarness(t, 5, 5)
	got := h.v.HandleKeyboard(keyevent.FromTcell(tcell.KeyUp, 0, 0))
	if string(got) != "\x1b[A" {
		t.Fatalf("up arrow in normal mode = %q, want %q", got, "\x1b[A")
	}
}

func TestHandleKeyboardArrowApplicationMode(t *testing.T) {
	h := newTestHarness(t, 5, 5)
	h.send("\x1b[?1h") // DECCKM
	got := h.v.HandleKeyboard(keyevent.FromTcell(tcell.KeyUp, 0, 0))
	if string(got) != "\x1bOA" {
		t.Fatalf("up arrow in application mode = %q, want %q", got, "\x1bOA")
	}
}

func TestHandleKeyboardPrintableRune(t *testing.T) {
	h := newTestHarness(t, 5, 5)
	got := h.v.HandleKeyboard(keyevent.FromTcell(tcell.KeyRune, 'q', 0))
	if string(got) != "q" {
		t.Fatalf("printable rune = %q, want %q", got, "q")
	}
}

func TestHandleKeyboardLockedByKAM(t *testing.T) {
	h := newTestHarness(t, 5, 5)
	h.send("\x1b[2h") // KAM
	got := h.v.HandleKeyboard(keyevent.FromTcell(tcell.KeyRune, 'q', 0))
	if got != nil {
		t.Fatalf("keyboard should be locked by KAM, got %q", got)
	}
}
