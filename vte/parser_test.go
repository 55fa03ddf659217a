// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package vte

import "testing"

func TestPrintAdvancesCursor(t *testing.T) {
	h := newTestHarness(t, 5, 10)
	h.send("abc")
	row, col := h.cursor()
	if row != 0 || col != 3 {
		t.Fatalf("cursor = (%d,%d), want (0,3)", row, col)
	}
	if h.cell(0, 0).r != 'a' || h.cell(0, 1).r != 'b' || h.cell(0, 2).r != 'c' {
		t.Fatalf("unexpected row content")
	}
}

func TestCRLF(t *testing.T) {
	h := newTestHarness(t, 5, 10)
	h.send("ab\r\ncd")
	row, col := h.cursor()
	if row != 1 || col != 2 {
		t.Fatalf("cursor = (%d,%d), want (1,2)", row, col)
	}
}

func TestAutoWrap(t *testing.T) {
	h := newTestHarness(t, 3, 3)
	h.send("abcd")
	row, col := h.cursor()
	if row != 1 || col != 1 {
		t.Fatalf("cursor = (%d,%d), want (1,1)", row, col)
	}
	if h.cell(1, 0).r != 'd' {
		t.Fatalf("wrapped char missing on row 1")
	}
}

// TestParserTotality feeds every byte value 0-255 through Input and just
// requires that it doesn't panic and always leaves the parser in a named
// state: every byte in every state must produce a defined transition.
func TestParserTotality(t *testing.T) {
	h := newTestHarness(t, 24, 80)
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i)
	}
	h.v.Input(buf)
	if s := h.v.state.String(); s == "UNKNOWN" {
		t.Fatalf("parser left in unnamed state %d", h.v.state)
	}
}

func TestCSIParamSaturation(t *testing.T) {
	h := newTestHarness(t, 5, 80)
	h.send("\x1b[99999999999A")
	if got := h.v.csi.get(0, -1); got != maxCSIParamVal {
		t.Fatalf("param = %d, want %d", got, maxCSIParamVal)
	}
}

func TestCSIParamCountCap(t *testing.T) {
	h := newTestHarness(t, 5, 80)
	seq := "\x1b["
	for i := 0; i < 30; i++ {
		seq += "1;"
	}
	seq += "H"
	h.send(seq)
	if h.v.csi.count > maxCSIParams {
		t.Fatalf("csi.count = %d, want <= %d", h.v.csi.count, maxCSIParams)
	}
}

func TestOSCBufferBound(t *testing.T) {
	h := newTestHarness(t, 5, 80)
	var got []byte
	h.v.SetOSCCB(func(payload []byte) { got = payload })
	long := make([]byte, 400)
	for i := range long {
		long[i] = 'x'
	}
	h.send("\x1b]0;" + string(long) + "\x07")
	if len(got) != maxOSCLen+1 {
		t.Fatalf("OSC payload len = %d, want %d", len(got), maxOSCLen+1)
	}
	if got[len(got)-1] != 0 {
		t.Fatalf("OSC payload not NUL-terminated")
	}
}

func TestUTF8Decoding(t *testing.T) {
	h := newTestHarness(t, 5, 80)
	h.send("caf\xc3\xa9")
	if h.cell(0, 3).r != 'é' {
		t.Fatalf("cell(0,3) = %q, want 'é'", h.cell(0, 3).r)
	}
}

func TestUTF8RejectYieldsReplacementChar(t *testing.T) {
	h := newTestHarness(t, 5, 80)
	h.v.Input([]byte{0xFF, 'x'})
	if h.cell(0, 0).r != 0xFFFD {
		t.Fatalf("cell(0,0) = %q, want U+FFFD", h.cell(0, 0).r)
	}
	if h.cell(0, 1).r != 'x' {
		t.Fatalf("cell(0,1) = %q, want 'x'", h.cell(0, 1).r)
	}
}

func TestSUBPrintsReplacementGlyph(t *testing.T) {
	h := newTestHarness(t, 5, 80)
	h.send("\x1a")
	if h.cell(0, 0).r != 0x00BF {
		t.Fatalf("cell(0,0) = %q, want U+00BF", h.cell(0, 0).r)
	}
}
