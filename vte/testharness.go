// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/testharness.go
// Summary: A small fake Screen plus wiring helpers for exercising the VTE
// core in tests without depending on the screen package (which itself
// imports vte, and would create an import cycle from vte/*_test.go).
// Usage: Used by this package's _test.go files.

package vte

import "testing"

// fakeCell mirrors screen.Cell's shape without importing that package.
type fakeCell struct {
	r    rune
	attr Attribute
}

// fakeScreen is a minimal Screen implementation for unit tests: a
// rows×cols grid plus a same-size alternate buffer (no scrollback
// retention - pushed rows are just dropped), sufficient to observe
// cursor motion, erasure, attribute resolution, and alt-screen toggling.
type fakeScreen struct {
	rows, cols int
	main, alt  [][]fakeCell
	altActive  bool
	row, col   int
	top, bot   int
	defAttr    Attribute
	flags      map[CursorFlag]bool
}

func newFakeScreen(rows, cols int) *fakeScreen {
	s := &fakeScreen{rows: rows, cols: cols, flags: map[CursorFlag]bool{}}
	s.allocate()
	s.bot = rows - 1
	return s
}

func (s *fakeScreen) allocate() {
	s.main = blankGrid(s.rows, s.cols, s.defAttr)
	s.alt = blankGrid(s.rows, s.cols, s.defAttr)
}

func blankGrid(rows, cols int, attr Attribute) [][]fakeCell {
	g := make([][]fakeCell, rows)
	for i := range g {
		g[i] = blankRow(cols, attr)
	}
	return g
}

func (s *fakeScreen) active() [][]fakeCell {
	if s.altActive {
		return s.alt
	}
	return s.main
}

func (s *fakeScreen) CursorPos() (int, int) { return s.row, s.col }

func (s *fakeScreen) SetCursorPos(r, c int) {
	lo, hi := 0, s.rows-1
	if s.flags[FlagOrigin] {
		r += s.top
		lo, hi = s.top, s.bot
	}
	s.row = clampTest(r, lo, hi)
	s.col = clampTest(c, 0, s.cols-1)
}

func (s *fakeScreen) MoveCursor(dr, dc int) {
	lo, hi := 0, s.rows-1
	if s.flags[FlagOrigin] {
		lo, hi = s.top, s.bot
	}
	s.row = clampTest(s.row+dr, lo, hi)
	s.col = clampTest(s.col+dc, 0, s.cols-1)
}

func clampTest(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *fakeScreen) ColumnHome() { s.col = 0 }

func (s *fakeScreen) TabLeft(n int) {
	for ; n > 0; n-- {
		if s.col > 0 {
			s.col--
		}
	}
}
func (s *fakeScreen) TabRight(n int) {
	for ; n > 0; n-- {
		next := (s.col/8 + 1) * 8
		if next >= s.cols {
			s.col = s.cols - 1
			return
		}
		s.col = next
	}
}
func (s *fakeScreen) SetTabStop()       {}
func (s *fakeScreen) ResetTabStop()     {}
func (s *fakeScreen) ResetAllTabStops() {}

func (s *fakeScreen) Newline() {
	if s.row == s.bot {
		s.ScrollUp(1)
		return
	}
	s.row = clampTest(s.row+1, 0, s.rows-1)
}
func (s *fakeScreen) ReverseIndex() {
	if s.row == s.top {
		s.ScrollDown(1)
		return
	}
	s.row = clampTest(s.row-1, 0, s.rows-1)
}
func (s *fakeScreen) ScrollUp(n int) {
	buf := s.active()
	for ; n > 0; n-- {
		copy(buf[s.top:s.bot], buf[s.top+1:s.bot+1])
		buf[s.bot] = blankRow(s.cols, s.defAttr)
	}
}
func (s *fakeScreen) ScrollDown(n int) {
	buf := s.active()
	for ; n > 0; n-- {
		copy(buf[s.top+1:s.bot+1], buf[s.top:s.bot])
		buf[s.top] = blankRow(s.cols, s.defAttr)
	}
}

func blankRow(cols int, attr Attribute) []fakeCell {
	row := make([]fakeCell, cols)
	for i := range row {
		row[i] = fakeCell{r: ' ', attr: attr}
	}
	return row
}

func (s *fakeScreen) InsertLines(n int) {
	buf := s.active()
	for ; n > 0; n-- {
		copy(buf[s.row+1:s.bot+1], buf[s.row:s.bot])
		buf[s.row] = blankRow(s.cols, s.defAttr)
	}
}
func (s *fakeScreen) DeleteLines(n int) {
	buf := s.active()
	for ; n > 0; n-- {
		copy(buf[s.row:s.bot], buf[s.row+1:s.bot+1])
		buf[s.bot] = blankRow(s.cols, s.defAttr)
	}
}
func (s *fakeScreen) InsertChars(n int) {
	row := s.active()[s.row]
	if n > s.cols-s.col {
		n = s.cols - s.col
	}
	copy(row[s.col+n:], row[s.col:s.cols-n])
	for i := s.col; i < s.col+n; i++ {
		row[i] = fakeCell{r: ' ', attr: s.defAttr}
	}
}
func (s *fakeScreen) DeleteChars(n int) {
	row := s.active()[s.row]
	if n > s.cols-s.col {
		n = s.cols - s.col
	}
	copy(row[s.col:s.cols-n], row[s.col+n:])
	for i := s.cols - n; i < s.cols; i++ {
		row[i] = fakeCell{r: ' ', attr: s.defAttr}
	}
}

func (s *fakeScreen) Erase(mode EraseMode, selective bool) {
	buf := s.active()
	clear := func(r, c int) {
		if selective && buf[r][c].attr.Protect {
			return
		}
		buf[r][c] = fakeCell{r: ' ', attr: s.defAttr}
	}
	switch mode {
	case EraseToEnd:
		for c := s.col; c < s.cols; c++ {
			clear(s.row, c)
		}
	case EraseToCursor:
		for c := 0; c <= s.col; c++ {
			clear(s.row, c)
		}
	case EraseCurrentLine:
		for c := 0; c < s.cols; c++ {
			clear(s.row, c)
		}
	case EraseCursorToScreen:
		for c := s.col; c < s.cols; c++ {
			clear(s.row, c)
		}
		for r := s.row + 1; r < s.rows; r++ {
			for c := 0; c < s.cols; c++ {
				clear(r, c)
			}
		}
	case EraseScreenToCursor:
		for r := 0; r < s.row; r++ {
			for c := 0; c < s.cols; c++ {
				clear(r, c)
			}
		}
		for c := 0; c <= s.col; c++ {
			clear(s.row, c)
		}
	case EraseScreen:
		for r := 0; r < s.rows; r++ {
			for c := 0; c < s.cols; c++ {
				clear(r, c)
			}
		}
	}
}
func (s *fakeScreen) EraseChars(n int) {
	buf := s.active()
	for c := s.col; c < s.col+n && c < s.cols; c++ {
		buf[s.row][c] = fakeCell{r: ' ', attr: s.defAttr}
	}
}

func (s *fakeScreen) SetFlag(flag CursorFlag, on bool) {
	if flag == FlagAlternate {
		s.altActive = on
	}
	s.flags[flag] = on
}
func (s *fakeScreen) SetMargins(top, bottom int) {
	s.top, s.bot = top, bottom
}

func (s *fakeScreen) SetDefaultAttribute(attr Attribute) { s.defAttr = attr }
func (s *fakeScreen) WriteSymbol(r rune, attr Attribute) {
	if s.col >= s.cols {
		s.col = 0
		s.Newline()
	}
	s.active()[s.row][s.col] = fakeCell{r: r, attr: attr}
	s.col++
}

func (s *fakeScreen) Size() (int, int) { return s.rows, s.cols }

func (s *fakeScreen) Reset() {
	s.allocate()
	s.row, s.col = 0, 0
	s.top, s.bot = 0, s.rows-1
	s.altActive = false
}
func (s *fakeScreen) ClearScrollback() {}

// testHarness bundles a VTE over a fakeScreen with byte-feeding helpers.
type testHarness struct {
	v *VTE
	s *fakeScreen
	w [][]byte
}

func newTestHarness(t *testing.T, rows, cols int) *testHarness {
	t.Helper()
	h := &testHarness{s: newFakeScreen(rows, cols)}
	v, err := New(h.s, func(data []byte) {
		cp := make([]byte, len(data))
		copy(cp, data)
		h.w = append(h.w, cp)
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.v = v
	return h
}

func (h *testHarness) send(s string) { h.v.Input([]byte(s)) }

func (h *testHarness) cell(row, col int) fakeCell { return h.s.active()[row][col] }

func (h *testHarness) cursor() (int, int) { return h.s.CursorPos() }
