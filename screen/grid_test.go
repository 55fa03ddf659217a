// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package screen

import (
	"testing"

	"github.com/vtxcore/vte/vte"
)

func TestGridWriteSymbolAdvancesCursor(t *testing.T) {
	g := NewGrid(5, 5)
	g.WriteSymbol('a', vte.Attribute{})
	g.WriteSymbol('b', vte.Attribute{})
	row, col := g.CursorPos()
	if row != 0 || col != 2 {
		t.Fatalf("cursor = (%d,%d), want (0,2)", row, col)
	}
	if g.Row(0)[0].Rune != 'a' || g.Row(0)[1].Rune != 'b' {
		t.Fatalf("row 0 content wrong")
	}
}

func TestGridScrollPushesToScrollback(t *testing.T) {
	g := NewGrid(3, 4)
	g.SetFlag(vte.FlagAutoWrap, true)
	g.Row(0)[0] = Cell{Rune: 'x'}
	g.ScrollUp(1)
	if g.ScrollbackLen() != 1 {
		t.Fatalf("ScrollbackLen = %d, want 1", g.ScrollbackLen())
	}
	line := g.ScrollbackLine(0)
	if line[0].Rune != 'x' {
		t.Fatalf("scrollback line[0] = %q, want 'x'", line[0].Rune)
	}
}

func TestGridScrollWithNonZeroTopDoesNotRetain(t *testing.T) {
	g := NewGrid(5, 4)
	g.SetMargins(1, 3)
	g.Row(1)[0] = Cell{Rune: 'y'}
	g.ScrollUp(1)
	if g.ScrollbackLen() != 0 {
		t.Fatalf("scrolling a mid-screen region must not retain scrollback, got %d lines", g.ScrollbackLen())
	}
}

func TestGridAltScreenIsolatesContent(t *testing.T) {
	g := NewGrid(3, 3)
	g.WriteSymbol('m', vte.Attribute{})
	g.SetFlag(vte.FlagAlternate, true)
	g.SetCursorPos(0, 0)
	g.WriteSymbol('a', vte.Attribute{})
	if g.Row(0)[0].Rune != 'a' {
		t.Fatalf("alt screen should be a distinct buffer")
	}
	g.SetFlag(vte.FlagAlternate, false)
	if g.Row(0)[0].Rune != 'm' {
		t.Fatalf("returning to main screen should show its own untouched content")
	}
}

func TestGridEraseSelectiveSkipsProtected(t *testing.T) {
	g := NewGrid(2, 3)
	g.WriteSymbol('p', vte.Attribute{Protect: true})
	g.SetCursorPos(0, 0)
	g.Erase(vte.EraseCurrentLine, true)
	if g.Row(0)[0].Rune != 'p' {
		t.Fatalf("selective erase must preserve protected cells")
	}
}

func TestGridResetReinitializesTabs(t *testing.T) {
	g := NewGrid(3, 20)
	g.ResetAllTabStops()
	g.Reset()
	g.SetCursorPos(0, 0)
	g.TabRight(1)
	_, col := g.CursorPos()
	if col != 8 {
		t.Fatalf("Reset should restore default every-8 tab stops, landed at col %d", col)
	}
}
