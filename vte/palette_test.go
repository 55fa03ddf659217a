// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package vte

import "testing"

func TestSetPaletteKnownNames(t *testing.T) {
	h := newTestHarness(t, 5, 5)
	for _, name := range []string{"solarized", "solarized-black", "solarized-white", "soft-black", "base16-dark", "base16-light", ""} {
		if err := h.v.SetPalette(name); err != nil {
			t.Fatalf("SetPalette(%q): %v", name, err)
		}
	}
}

func TestSetPaletteUnknownName(t *testing.T) {
	h := newTestHarness(t, 5, 5)
	if err := h.v.SetPalette("not-a-real-palette"); err == nil {
		t.Fatalf("expected an error for an unknown palette name")
	}
}

func TestCustomPaletteRoundTrip(t *testing.T) {
	h := newTestHarness(t, 5, 5)
	var rgb [paletteSize * 3]byte
	rgb[0], rgb[1], rgb[2] = 0x11, 0x22, 0x33
	h.v.SetCustomPalette(rgb)
	if err := h.v.SetPalette("custom"); err != nil {
		t.Fatalf("SetPalette(custom): %v", err)
	}
	if h.v.palette.ANSI[0] != (RGB{0x11, 0x22, 0x33}) {
		t.Fatalf("custom palette slot 0 = %+v, want {0x11,0x22,0x33}", h.v.palette.ANSI[0])
	}
}

func TestResolve256Cube(t *testing.T) {
	pal := builtinDefault()
	r, g, b := resolve256(&pal, 16) // first cube entry: (0,0,0)
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("cube[0] = (%d,%d,%d), want (0,0,0)", r, g, b)
	}
	r, g, b = resolve256(&pal, 255) // last grayscale step
	if r != 0xEE || g != 0xEE || b != 0xEE {
		t.Fatalf("gray[last] = (%d,%d,%d), want (0xEE,0xEE,0xEE)", r, g, b)
	}
}
