// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/parser.go
// Summary: The Williams VT500-series parser state machine, fused to the
// UTF-8 decoder.
// Usage: Part of the VTE core; Input() is the PTY-output entry point.

package vte

import "log"

// Input feeds PTY-output bytes through the parser. It always consumes
// the full slice; there is no cancellation surface.
func (v *VTE) Input(data []byte) {
	v.inInput++
	defer func() { v.inInput-- }()

	switch {
	case v.modes.Use7Bit:
		for _, b := range data {
			if b >= 0x80 {
				log.Printf("[VTE] 7-bit mode: masking high bit of 0x%02x", b)
				b &= 0x7F
			}
			v.advance(rune(b))
		}
	case v.modes.Use8Bit:
		for _, b := range data {
			v.advance(rune(b))
		}
	default: // UTF-8 mode (default)
		for i := 0; i < len(data); i++ {
			b := data[i]
			cp, status, reprocess := v.utf8.feed(b)
			switch status {
			case utf8More:
				continue
			case utf8Accept:
				v.advance(cp)
			case utf8Reject:
				v.advance(0xFFFD)
				if reprocess {
					i--
				}
			}
		}
	}
}

// advance runs one code point through the universal transitions, then the
// current state's per-state dispatch.
func (v *VTE) advance(r rune) {
	switch {
	case r == 0x1B:
		v.transition(stateEscape, nil)
		return
	case r == 0x18 || r == 0x1A || isUniversalC1(r):
		v.transition(stateGround, func() { v.execute(r) })
		return
	case r == 0x98 || r == 0x9E || r == 0x9F:
		v.transition(stateSTIgnore, nil)
		return
	case r == 0x90:
		v.transition(stateDCSEntry, nil)
		return
	case r == 0x9D:
		v.transition(stateOSCString, nil)
		return
	case r == 0x9B:
		v.transition(stateCSIEntry, nil)
		return
	}

	switch v.state {
	case stateGround:
		v.stepGround(r)
	case stateEscape:
		v.stepEscape(r)
	case stateEscapeIntermediate:
		v.stepEscapeIntermediate(r)
	case stateCSIEntry:
		v.stepCSIEntry(r)
	case stateCSIParam:
		v.stepCSIParam(r)
	case stateCSIIntermediate:
		v.stepCSIIntermediate(r)
	case stateCSIIgnore:
		v.stepCSIIgnore(r)
	case stateDCSEntry:
		v.stepDCSEntry(r)
	case stateDCSParam:
		v.stepDCSParam(r)
	case stateDCSIntermediate:
		v.stepDCSIntermediate(r)
	case stateDCSPass:
		v.stepDCSPass(r)
	case stateDCSIgnore:
		v.stepDCSIgnore(r)
	case stateOSCString:
		v.stepOSCString(r)
	case stateSTIgnore:
		v.stepSTIgnore(r)
	}
}

// isUniversalC1 reports whether r is one of the C1 codes that, from any
// state, abort to GROUND and execute via a universal transition,
// excluding the codes with their own dedicated routes
// (DCS 0x90, CSI 0x9B, OSC 0x9D, SOS/PM/APC 0x98/0x9E/0x9F).
func isUniversalC1(r rune) bool {
	switch {
	case r >= 0x80 && r <= 0x8F:
		return true
	case r >= 0x91 && r <= 0x97:
		return true
	case r == 0x99 || r == 0x9A || r == 0x9C:
		return true
	}
	return false
}

// transition runs the exit action of the current state (if actually
// leaving it), the transition action, then the entry action of next (if
// actually entering it), and finally updates state, in that order.
func (v *VTE) transition(next parserState, action func()) {
	changing := next != v.state
	if changing {
		v.exitAction(v.state)
	}
	if action != nil {
		action()
	}
	if changing {
		v.entryAction(next)
	}
	v.state = next
}

func (v *VTE) exitAction(s parserState) {
	switch s {
	case stateDCSPass:
		v.dcsEnd()
	case stateOSCString:
		v.oscEnd()
	}
}

func (v *VTE) entryAction(s parserState) {
	switch s {
	case stateCSIEntry, stateDCSEntry, stateEscape:
		v.clearAccumulators()
	case stateDCSPass:
		v.dcsStart()
	case stateOSCString:
		v.clearAccumulators()
		v.oscStart()
	}
}

func (v *VTE) clearAccumulators() {
	v.csi.reset()
	v.flags = 0
	v.osc.reset()
	v.intermediateByte = 0
}

func (v *VTE) collectIntermediate(r byte) {
	if flag, ok := csiFlagFor(r); ok {
		v.flags |= flag
	}
	v.intermediateByte = r
}

// --- GROUND ---

func (v *VTE) stepGround(r rune) {
	switch {
	case r < 0x20:
		v.execute(r)
	case r == 0x7F:
		// DEL - ignored.
	default:
		v.print(r)
	}
}

// --- ESC / ESC_INT ---

func (v *VTE) stepEscape(r rune) {
	switch {
	case r < 0x20:
		v.execute(r)
	case r == '[':
		v.transition(stateCSIEntry, nil)
	case r == ']':
		v.transition(stateOSCString, nil)
	case r == 'P':
		v.transition(stateDCSEntry, nil)
	case r == 'X' || r == '^' || r == '_':
		v.transition(stateSTIgnore, nil)
	case r >= 0x20 && r <= 0x2F:
		v.collectIntermediate(byte(r))
		v.transition(stateEscapeIntermediate, nil)
	case r >= 0x30 && r <= 0x7E:
		v.transition(stateGround, func() { v.escDispatch(r) })
	case r == 0x7F:
		// ignore
	}
}

func (v *VTE) stepEscapeIntermediate(r rune) {
	switch {
	case r < 0x20:
		v.execute(r)
	case r >= 0x20 && r <= 0x2F:
		v.collectIntermediate(byte(r))
	case r >= 0x30 && r <= 0x7E:
		v.transition(stateGround, func() { v.escDispatch(r) })
	case r == 0x7F:
		// ignore
	}
}

// --- CSI ---

func (v *VTE) stepCSIEntry(r rune) {
	switch {
	case r < 0x20:
		v.execute(r)
	case r == ':':
		v.transition(stateCSIIgnore, nil)
	case r >= '0' && r <= '9':
		v.csi.digit(int(r - '0'))
		v.transition(stateCSIParam, nil)
	case r == ';':
		v.csi.separator()
		v.transition(stateCSIParam, nil)
	case r == '<' || r == '=' || r == '>' || r == '?':
		v.collectIntermediate(byte(r))
		v.transition(stateCSIParam, nil)
	case r >= 0x20 && r <= 0x2F:
		v.collectIntermediate(byte(r))
		v.transition(stateCSIIntermediate, nil)
	case r >= 0x40 && r <= 0x7E:
		v.transition(stateGround, func() { v.csiDispatch(r) })
	case r == 0x7F:
		// ignore
	}
}

func (v *VTE) stepCSIParam(r rune) {
	switch {
	case r < 0x20:
		v.execute(r)
	case r == ':':
		v.transition(stateCSIIgnore, nil)
	case r >= '0' && r <= '9':
		v.csi.digit(int(r - '0'))
	case r == ';':
		v.csi.separator()
	case r == '<' || r == '=' || r == '>' || r == '?':
		v.transition(stateCSIIgnore, nil)
	case r >= 0x20 && r <= 0x2F:
		v.collectIntermediate(byte(r))
		v.transition(stateCSIIntermediate, nil)
	case r >= 0x40 && r <= 0x7E:
		v.transition(stateGround, func() { v.csiDispatch(r) })
	case r == 0x7F:
		// ignore
	}
}

func (v *VTE) stepCSIIntermediate(r rune) {
	switch {
	case r < 0x20:
		v.execute(r)
	case r >= 0x20 && r <= 0x2F:
		v.collectIntermediate(byte(r))
	case r >= 0x30 && r <= 0x3F:
		v.transition(stateCSIIgnore, nil)
	case r >= 0x40 && r <= 0x7E:
		v.transition(stateGround, func() { v.csiDispatch(r) })
	case r == 0x7F:
		// ignore
	}
}

func (v *VTE) stepCSIIgnore(r rune) {
	switch {
	case r < 0x20:
		v.execute(r)
	case r >= 0x40 && r <= 0x7E:
		v.transition(stateGround, nil)
	default:
		// 0x20-0x3F and 0x7F ignored
	}
}

// --- DCS ---

func (v *VTE) stepDCSEntry(r rune) {
	switch {
	case r < 0x20:
		// ignored, unlike CSI: DCS data only flows once hooked (DCS_PASS).
	case r == ':':
		v.transition(stateDCSIgnore, nil)
	case r >= '0' && r <= '9':
		v.csi.digit(int(r - '0'))
		v.transition(stateDCSParam, nil)
	case r == ';':
		v.csi.separator()
		v.transition(stateDCSParam, nil)
	case r == '<' || r == '=' || r == '>' || r == '?':
		v.collectIntermediate(byte(r))
		v.transition(stateDCSParam, nil)
	case r >= 0x20 && r <= 0x2F:
		v.collectIntermediate(byte(r))
		v.transition(stateDCSIntermediate, nil)
	case r >= 0x40 && r <= 0x7E:
		v.transition(stateDCSPass, nil)
	case r == 0x7F:
		// ignore
	}
}

func (v *VTE) stepDCSParam(r rune) {
	switch {
	case r < 0x20:
		// ignored
	case r == ':':
		v.transition(stateDCSIgnore, nil)
	case r >= '0' && r <= '9':
		v.csi.digit(int(r - '0'))
	case r == ';':
		v.csi.separator()
	case r == '<' || r == '=' || r == '>' || r == '?':
		v.transition(stateDCSIgnore, nil)
	case r >= 0x20 && r <= 0x2F:
		v.collectIntermediate(byte(r))
		v.transition(stateDCSIntermediate, nil)
	case r >= 0x40 && r <= 0x7E:
		v.transition(stateDCSPass, nil)
	case r == 0x7F:
		// ignore
	}
}

func (v *VTE) stepDCSIntermediate(r rune) {
	switch {
	case r < 0x20:
		// ignored
	case r >= 0x20 && r <= 0x2F:
		v.collectIntermediate(byte(r))
	case r >= 0x30 && r <= 0x3F:
		v.transition(stateDCSIgnore, nil)
	case r >= 0x40 && r <= 0x7E:
		v.transition(stateDCSPass, nil)
	case r == 0x7F:
		// ignore
	}
}

func (v *VTE) stepDCSPass(r rune) {
	// Data flows through but the default interpreter does not retain it.
	// Exit happens only via a universal transition (ESC/CAN/SUB/C1), which
	// fires DCS_END.
}

func (v *VTE) stepDCSIgnore(r rune) {
	// Consumed silently until a universal transition exits this state.
}

// --- OSC ---

func (v *VTE) stepOSCString(r rune) {
	switch {
	case r == 0x07:
		v.transition(stateGround, nil)
	case r >= 0x20:
		v.oscPutRune(r)
	default:
		// other C0 controls inside an OSC string: ignored.
	}
}

// --- ST_IGNORE ---

func (v *VTE) stepSTIgnore(r rune) {
	// Consumed silently until a universal transition exits this state.
}
