// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/dispatch_sgr.go
// Summary: SGR (Select Graphic Rendition) dispatch.
// Usage: Part of the VTE core command interpreter.

package vte

// handleSGR applies one CSI...m sequence's parameter list to v.attr.
// params uses unsetParam (-1) for an absent slot, which this function
// treats as 0: an explicit SGR 0 is equivalent to an absent parameter.
func (v *VTE) handleSGR(params []int) {
	if len(params) == 0 {
		v.attr = v.defaultAttribute()
		v.screen.SetDefaultAttribute(v.attr)
		return
	}

	get := func(i int) int {
		if i < 0 || i >= len(params) || params[i] == unsetParam {
			return 0
		}
		return params[i]
	}

	for i := 0; i < len(params); i++ {
		p := get(i)
		switch {
		case p == 0:
			v.attr = v.defaultAttribute()
		case p == 1:
			v.attr.Bold = true
			v.resolveFG(&v.attr)
		case p == 3:
			v.attr.Italic = true
		case p == 4:
			v.attr.Underline = true
		case p == 5 || p == 6:
			v.attr.Blink = true
		case p == 7:
			v.attr.Inverse = true
		case p == 22:
			v.attr.Bold = false
			v.resolveFG(&v.attr)
		case p == 23:
			v.attr.Italic = false
		case p == 24:
			v.attr.Underline = false
		case p == 25:
			v.attr.Blink = false
		case p == 27:
			v.attr.Inverse = false
		case p == 28:
			// "reveal" (undo conceal): conceal itself is not implemented.
		case p >= 30 && p <= 37:
			v.attr.FGCode = ColorCode(p - 30)
			v.resolveFG(&v.attr)
		case p == 38:
			i = v.extendedColor(params, i, &v.attr, true)
		case p == 39:
			v.attr.FGCode = ColorCode(paletteForeground)
			v.resolveFG(&v.attr)
		case p >= 40 && p <= 47:
			v.attr.BGCode = ColorCode(p - 40)
			v.resolveBG(&v.attr)
		case p == 48:
			i = v.extendedColor(params, i, &v.attr, false)
		case p == 49:
			v.attr.BGCode = ColorCode(paletteBackground)
			v.resolveBG(&v.attr)
		case p >= 90 && p <= 97:
			v.attr.FGCode = ColorCode(p - 90 + 8)
			v.resolveFG(&v.attr)
		case p >= 100 && p <= 107:
			v.attr.BGCode = ColorCode(p - 100 + 8)
			v.resolveBG(&v.attr)
		default:
			// Unrecognized SGR code: ignored.
		}
	}
	v.screen.SetDefaultAttribute(v.attr)
}

// extendedColor consumes the 256-color (5;n) or truecolor (2;r;g;b) form
// of SGR 38/48 starting at params[i+1], setting fg (foreground) returns
// the new loop index to resume from.
func (v *VTE) extendedColor(params []int, i int, attr *Attribute, fg bool) int {
	if i+1 >= len(params) {
		return i
	}
	switch params[i+1] {
	case 5:
		if i+2 >= len(params) {
			return i + 1
		}
		code := uint8(params[i+2])
		if code >= 16 {
			// Cube and grayscale entries are stored as explicit RGB so
			// they cannot collide with the FOREGROUND/BACKGROUND codes.
			r, g, b := resolve256(&v.palette, code)
			if fg {
				attr.FGCode, attr.FGR, attr.FGG, attr.FGB = rgbColorCode, r, g, b
			} else {
				attr.BGCode, attr.BGR, attr.BGG, attr.BGB = rgbColorCode, r, g, b
			}
			return i + 2
		}
		if fg {
			attr.FGCode = ColorCode(code)
			v.resolveFG(attr)
		} else {
			attr.BGCode = ColorCode(code)
			v.resolveBG(attr)
		}
		return i + 2
	case 2:
		if i+4 >= len(params) {
			return i + 1
		}
		r, g, b := uint8(params[i+2]), uint8(params[i+3]), uint8(params[i+4])
		if fg {
			attr.FGCode = rgbColorCode
			attr.FGR, attr.FGG, attr.FGB = r, g, b
		} else {
			attr.BGCode = rgbColorCode
			attr.BGR, attr.BGG, attr.BGB = r, g, b
		}
		return i + 4
	}
	return i + 1
}
