// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package vte

import "testing"

func TestCursorMotion(t *testing.T) {
	h := newTestHarness(t, 10, 10)
	h.send("\x1b[5;5H")
	row, col := h.cursor()
	if row != 4 || col != 4 {
		t.Fatalf("cursor = (%d,%d), want (4,4)", row, col)
	}
	h.send("\x1b[2A\x1b[1C")
	row, col = h.cursor()
	if row != 2 || col != 5 {
		t.Fatalf("cursor = (%d,%d), want (2,5)", row, col)
	}
}

func TestEraseInLine(t *testing.T) {
	h := newTestHarness(t, 3, 5)
	h.send("abcde")
	h.send("\x1b[3G\x1b[K")
	if h.cell(0, 0).r != 'a' || h.cell(0, 1).r != 'b' {
		t.Fatalf("erase-to-end should not touch cells before cursor")
	}
	if h.cell(0, 2).r != ' ' || h.cell(0, 3).r != ' ' || h.cell(0, 4).r != ' ' {
		t.Fatalf("erase-to-end should blank cursor to end of line")
	}
}

func TestDECSTBMAndScroll(t *testing.T) {
	h := newTestHarness(t, 4, 3)
	h.send("\x1b[2;3r") // margins rows 1..2 (0-based)
	h.send("\x1b[2;1Haa\x1b[3;1Hbb")
	h.send("\x1b[3;1H\x1bD") // IND at the bottom margin: scrolls the region
	if h.cell(1, 0).r != 'b' {
		t.Fatalf("row 1 should now hold the old row 2 content after scroll")
	}
}

func TestAltScreen1049RoundTrip(t *testing.T) {
	h := newTestHarness(t, 5, 5)
	h.send("main")
	rowBefore, colBefore := h.cursor()
	h.send("\x1b[?1049h")
	h.send("alt")
	h.send("\x1b[?1049l")
	row, col := h.cursor()
	if row != rowBefore || col != colBefore {
		t.Fatalf("1049 exit should restore the saved cursor: got (%d,%d), want (%d,%d)",
			row, col, rowBefore, colBefore)
	}
	if h.cell(0, 0).r != 'm' {
		t.Fatalf("main-screen content should be undisturbed after returning from alt screen")
	}
}

func TestDSRCursorPositionReport(t *testing.T) {
	h := newTestHarness(t, 10, 10)
	h.send("\x1b[3;4H\x1b[6n")
	if len(h.w) != 1 {
		t.Fatalf("expected exactly one DSR reply, got %d", len(h.w))
	}
	if string(h.w[0]) != "\x1b[3;4R" {
		t.Fatalf("DSR reply = %q, want %q", h.w[0], "\x1b[3;4R")
	}
}

func TestSoftResetClearsModesNotContent(t *testing.T) {
	h := newTestHarness(t, 5, 5)
	h.send("\x1b[?7l") // disable autowrap
	h.send("hi")
	h.send("\x1b[!p") // DECSTR
	if !h.v.modes.AutoWrap {
		t.Fatalf("soft reset should restore default AutoWrap=true")
	}
	if h.cell(0, 0).r != 'h' {
		t.Fatalf("soft reset must not erase screen content")
	}
}

func TestHardResetClearsEverything(t *testing.T) {
	h := newTestHarness(t, 5, 5)
	h.send("hello\x1b[1m")
	h.send("\x1bc")
	if h.cell(0, 0).r != ' ' {
		t.Fatalf("hard reset should clear the screen")
	}
	row, col := h.cursor()
	if row != 0 || col != 0 {
		t.Fatalf("hard reset should home the cursor, got (%d,%d)", row, col)
	}
	if h.v.attr.Bold {
		t.Fatalf("hard reset should clear the current attribute")
	}
}
