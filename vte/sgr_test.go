// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package vte

import "testing"

func TestSGRBoldUnderlineReverse(t *testing.T) {
	h := newTestHarness(t, 5, 10)
	h.send("\x1b[1;4;7mX")
	a := h.cell(0, 0).attr
	if !a.Bold || !a.Underline || !a.Inverse {
		t.Fatalf("attr = %+v, want bold+underline+inverse", a)
	}
}

// TestSGRZeroEquivalentToAbsent checks that an explicit SGR 0 resets
// attributes the same way an absent parameter does.
func TestSGRZeroEquivalentToAbsent(t *testing.T) {
	h1 := newTestHarness(t, 5, 10)
	h1.send("\x1b[1m\x1b[0mX")
	h2 := newTestHarness(t, 5, 10)
	h2.send("\x1b[1m\x1b[mY")
	a1 := h1.cell(0, 0).attr
	a2 := h2.cell(0, 0).attr
	if a1.Bold || a2.Bold {
		t.Fatalf("bold should have been cleared by both forms: %+v / %+v", a1, a2)
	}
	if a1.FGCode != a2.FGCode || a1.BGCode != a2.BGCode {
		t.Fatalf("SGR 0 and bare SGR should resolve identically: %+v vs %+v", a1, a2)
	}
}

func TestSGRBoldPromotion(t *testing.T) {
	h := newTestHarness(t, 5, 10)
	h.send("\x1b[1;31mX")
	a := h.cell(0, 0).attr
	want := h.v.palette.ANSI[paletteBrightRed]
	if a.FGR != want.R || a.FGG != want.G || a.FGB != want.B {
		t.Fatalf("bold red fg = %+v, want promoted bright red %+v", a, want)
	}
}

func TestSGR256Color(t *testing.T) {
	h := newTestHarness(t, 5, 10)
	h.send("\x1b[38;5;196mX")
	a := h.cell(0, 0).attr
	r, g, b := resolve256(&h.v.palette, 196)
	if a.FGR != r || a.FGG != g || a.FGB != b {
		t.Fatalf("256-color fg = (%d,%d,%d), want (%d,%d,%d)", a.FGR, a.FGG, a.FGB, r, g, b)
	}
}

func TestSGRTruecolor(t *testing.T) {
	h := newTestHarness(t, 5, 10)
	h.send("\x1b[38;2;10;20;30mX")
	a := h.cell(0, 0).attr
	if a.FGCode != rgbColorCode || a.FGR != 10 || a.FGG != 20 || a.FGB != 30 {
		t.Fatalf("truecolor fg = %+v, want rgb(10,20,30)", a)
	}
}

func TestSGRDefaultFGBG(t *testing.T) {
	h := newTestHarness(t, 5, 10)
	h.send("\x1b[31;44mX\x1b[39;49mY")
	a := h.cell(0, 1).attr
	if a.FGCode != ColorCode(paletteForeground) || a.BGCode != ColorCode(paletteBackground) {
		t.Fatalf("39/49 should restore default fg/bg, got %+v", a)
	}
}
