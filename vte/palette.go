// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/palette.go
// Summary: Named 18-entry RGB palettes and the custom-palette surface.
// Usage: Part of the VTE core (the palette + attribute resolver).

package vte

import "fmt"

// RGB is an 8-bit-per-channel color triple.
type RGB struct {
	R, G, B uint8
}

// Palette is an 18-entry RGB table: the 16 ANSI colors (indices
// paletteBlack..paletteBrightWhite) plus FOREGROUND and BACKGROUND.
type Palette struct {
	ANSI [paletteSize]RGB
}

func rgbHex(r, g, b uint8) RGB { return RGB{r, g, b} }

// builtinDefault is the VTE's default palette when no name has been set.
func builtinDefault() Palette {
	return Palette{ANSI: [paletteSize]RGB{
		rgbHex(0x00, 0x00, 0x00), rgbHex(0xCD, 0x00, 0x00),
		rgbHex(0x00, 0xCD, 0x00), rgbHex(0xCD, 0xCD, 0x00),
		rgbHex(0x00, 0x00, 0xEE), rgbHex(0xCD, 0x00, 0xCD),
		rgbHex(0x00, 0xCD, 0xCD), rgbHex(0xE5, 0xE5, 0xE5),
		rgbHex(0x7F, 0x7F, 0x7F), rgbHex(0xFF, 0x00, 0x00),
		rgbHex(0x00, 0xFF, 0x00), rgbHex(0xFF, 0xFF, 0x00),
		rgbHex(0x5C, 0x5C, 0xFF), rgbHex(0xFF, 0x00, 0xFF),
		rgbHex(0x00, 0xFF, 0xFF), rgbHex(0xFF, 0xFF, 0xFF),
		rgbHex(0xE5, 0xE5, 0xE5), // FOREGROUND
		rgbHex(0x00, 0x00, 0x00), // BACKGROUND
	}}
}

func solarized() Palette {
	return Palette{ANSI: [paletteSize]RGB{
		rgbHex(0x07, 0x36, 0x42), rgbHex(0xDC, 0x32, 0x2F),
		rgbHex(0x85, 0x99, 0x00), rgbHex(0xB5, 0x89, 0x00),
		rgbHex(0x26, 0x8B, 0xD2), rgbHex(0xD3, 0x36, 0x82),
		rgbHex(0x2A, 0xA1, 0x98), rgbHex(0xEE, 0xE8, 0xD5),
		rgbHex(0x00, 0x2B, 0x36), rgbHex(0xCB, 0x4B, 0x16),
		rgbHex(0x58, 0x6E, 0x75), rgbHex(0x65, 0x7B, 0x83),
		rgbHex(0x83, 0x94, 0x96), rgbHex(0x6C, 0x71, 0xC4),
		rgbHex(0x93, 0xA1, 0xA1), rgbHex(0xFD, 0xF6, 0xE3),
		rgbHex(0x65, 0x7B, 0x83), rgbHex(0xFD, 0xF6, 0xE3),
	}}
}

func solarizedBlack() Palette {
	p := solarized()
	p.ANSI[paletteBackground] = rgbHex(0x00, 0x00, 0x00)
	return p
}

func solarizedWhite() Palette {
	p := solarized()
	p.ANSI[paletteForeground] = rgbHex(0x00, 0x2B, 0x36)
	p.ANSI[paletteBackground] = rgbHex(0xFF, 0xFF, 0xFF)
	return p
}

func softBlack() Palette {
	p := builtinDefault()
	p.ANSI[paletteBackground] = rgbHex(0x15, 0x15, 0x15)
	p.ANSI[paletteForeground] = rgbHex(0xD0, 0xD0, 0xD0)
	return p
}

func base16Dark() Palette {
	return Palette{ANSI: [paletteSize]RGB{
		rgbHex(0x28, 0x28, 0x28), rgbHex(0xAB, 0x46, 0x42),
		rgbHex(0xA1, 0xB5, 0x6C), rgbHex(0xF7, 0xCA, 0x88),
		rgbHex(0x7C, 0xAF, 0xC2), rgbHex(0xBA, 0x8B, 0xAF),
		rgbHex(0x86, 0xC1, 0xB9), rgbHex(0xD8, 0xD8, 0xD8),
		rgbHex(0x58, 0x58, 0x58), rgbHex(0xAB, 0x46, 0x42),
		rgbHex(0xA1, 0xB5, 0x6C), rgbHex(0xF7, 0xCA, 0x88),
		rgbHex(0x7C, 0xAF, 0xC2), rgbHex(0xBA, 0x8B, 0xAF),
		rgbHex(0x86, 0xC1, 0xB9), rgbHex(0xF8, 0xF8, 0xF8),
		rgbHex(0xD8, 0xD8, 0xD8), rgbHex(0x18, 0x18, 0x18),
	}}
}

func base16Light() Palette {
	p := base16Dark()
	p.ANSI[paletteForeground] = rgbHex(0x18, 0x18, 0x18)
	p.ANSI[paletteBackground] = rgbHex(0xF8, 0xF8, 0xF8)
	return p
}

// SetPalette selects a named built-in palette. The empty string restores
// the built-in default. "custom" activates whatever was last installed
// with SetCustomPalette (or the default if none was installed yet).
func (v *VTE) SetPalette(name string) error {
	switch name {
	case "":
		v.palette = builtinDefault()
	case "solarized":
		v.palette = solarized()
	case "solarized-black":
		v.palette = solarizedBlack()
	case "solarized-white":
		v.palette = solarizedWhite()
	case "soft-black":
		v.palette = softBlack()
	case "base16-dark":
		v.palette = base16Dark()
	case "base16-light":
		v.palette = base16Light()
	case "custom":
		if v.customPalette != nil {
			v.palette = *v.customPalette
		} else {
			v.palette = builtinDefault()
		}
	default:
		return fmt.Errorf("vte: unknown palette %q", name)
	}
	v.paletteName = name
	return nil
}

// SetCustomPalette installs the 18×3-byte user palette used when the
// active palette name is "custom". It takes effect immediately if
// "custom" is already selected.
func (v *VTE) SetCustomPalette(rgb [paletteSize * 3]byte) {
	pal := Palette{}
	for i := 0; i < paletteSize; i++ {
		pal.ANSI[i] = RGB{rgb[i*3], rgb[i*3+1], rgb[i*3+2]}
	}
	v.customPalette = &pal
	if v.paletteName == "custom" {
		v.palette = pal
	}
}
