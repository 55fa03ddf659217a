// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/dispatch_osc.go
// Summary: OSC string accumulation and dispatch.
// Usage: Part of the VTE core command interpreter, driven from the
// parser's OSC_STRING entry/exit actions (vte/parser.go).

package vte

import "unicode/utf8"

// oscStart runs on entry to OSC_STRING; the accumulator was already
// cleared by entryAction before this is called.
func (v *VTE) oscStart() {}

// oscPutRune appends one decoded code point to the OSC accumulator,
// UTF-8 re-encoded, subject to the buffer's fixed capacity: bytes past
// the bound are silently discarded, not an error.
func (v *VTE) oscPutRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for _, b := range buf[:n] {
		v.osc.put(b)
	}
}

// oscEnd runs on exit from OSC_STRING (BEL or ST): the accumulated,
// NUL-terminated payload is handed to the host callback, if one is
// installed. Interpreting the payload (window title, color query, etc.)
// is the host's concern, not this module's.
func (v *VTE) oscEnd() {
	if v.oscCB != nil {
		v.oscCB(v.osc.nulTerminated())
	}
}
