// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/grid.go
// Summary: A fixed-size grid plus bounded scrollback, implementing
// vte.Screen. Does not reflow on resize; the viewport is fixed and only
// repaints what's already there.
// Usage: The reference Screen collaborator a host can use to get a
// working terminal without writing its own cell store.

package screen

import (
	"github.com/mattn/go-runewidth"

	"github.com/vtxcore/vte/vte"
)

const defaultScrollbackLines = 2000

// Grid is a fixed-rows×cols cell matrix with a separate alternate-screen
// buffer and a bounded scrollback ring for lines scrolled off the main
// buffer's top margin.
type Grid struct {
	rows, cols int

	main [][]Cell
	alt  [][]Cell

	row, col  int
	top, bot  int // scroll margin rows, 0-based inclusive
	tabs      []bool
	flags     [6]bool
	defAttr   vte.Attribute
	scroll    *scrollback
	altActive bool
}

// NewGrid constructs a Grid of the given size with the default scrollback
// capacity.
func NewGrid(rows, cols int) *Grid {
	return NewGridWithScrollback(rows, cols, defaultScrollbackLines)
}

// NewGridWithScrollback constructs a Grid with an explicit scrollback
// capacity (0 disables scrollback retention).
func NewGridWithScrollback(rows, cols, scrollbackLines int) *Grid {
	g := &Grid{
		rows:   rows,
		cols:   cols,
		main:   makeRows(rows, cols, vte.Attribute{}),
		alt:    makeRows(rows, cols, vte.Attribute{}),
		bot:    rows - 1,
		tabs:   make([]bool, cols),
		scroll: newScrollback(scrollbackLines),
	}
	g.initTabs()
	return g
}

func makeRows(rows, cols int, attr vte.Attribute) [][]Cell {
	out := make([][]Cell, rows)
	for i := range out {
		out[i] = makeRow(cols, attr)
	}
	return out
}

func makeRow(cols int, attr vte.Attribute) []Cell {
	row := make([]Cell, cols)
	for i := range row {
		row[i] = blankCell(attr)
	}
	return row
}

func (g *Grid) initTabs() {
	for i := range g.tabs {
		g.tabs[i] = i%8 == 0
	}
}

func (g *Grid) active() [][]Cell {
	if g.altActive {
		return g.alt
	}
	return g.main
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Cursor ---

func (g *Grid) CursorPos() (row, col int) { return g.row, g.col }

func (g *Grid) SetCursorPos(row, col int) {
	lo, hi := 0, g.rows-1
	if g.flags[vte.FlagOrigin] {
		row += g.top
		lo, hi = g.top, g.bot
	}
	g.row = clampInt(row, lo, hi)
	g.col = clampInt(col, 0, g.cols-1)
}

func (g *Grid) MoveCursor(drow, dcol int) {
	lo, hi := 0, g.rows-1
	if g.flags[vte.FlagOrigin] {
		lo, hi = g.top, g.bot
	}
	g.row = clampInt(g.row+drow, lo, hi)
	g.col = clampInt(g.col+dcol, 0, g.cols-1)
}

func (g *Grid) ColumnHome() { g.col = 0 }

// --- Tabs ---

func (g *Grid) TabRight(n int) {
	for ; n > 0; n-- {
		next := -1
		for c := g.col + 1; c < g.cols; c++ {
			if g.tabs[c] {
				next = c
				break
			}
		}
		if next < 0 {
			g.col = g.cols - 1
			return
		}
		g.col = next
	}
}

func (g *Grid) TabLeft(n int) {
	for ; n > 0; n-- {
		prev := -1
		for c := g.col - 1; c >= 0; c-- {
			if g.tabs[c] {
				prev = c
				break
			}
		}
		if prev < 0 {
			g.col = 0
			return
		}
		g.col = prev
	}
}

func (g *Grid) SetTabStop()       { g.tabs[g.col] = true }
func (g *Grid) ResetTabStop()     { g.tabs[g.col] = false }
func (g *Grid) ResetAllTabStops() {
	for i := range g.tabs {
		g.tabs[i] = false
	}
}

// --- Line motion ---

func (g *Grid) Newline() {
	if g.row == g.bot {
		g.scrollUpRegion(1)
		return
	}
	g.row = clampInt(g.row+1, 0, g.rows-1)
}

func (g *Grid) ReverseIndex() {
	if g.row == g.top {
		g.scrollDownRegion(1)
		return
	}
	g.row = clampInt(g.row-1, 0, g.rows-1)
}

func (g *Grid) ScrollUp(n int)   { g.scrollUpRegion(n) }
func (g *Grid) ScrollDown(n int) { g.scrollDownRegion(n) }

// scrollUpRegion moves the margin region's content up by n rows, feeding
// evicted rows to scrollback only when the top margin is the physical
// top of the main buffer (classic terminal behavior: content scrolled
// past a mid-screen margin is lost, not retained).
func (g *Grid) scrollUpRegion(n int) {
	buf := g.active()
	toScrollback := g.top == 0 && !g.altActive
	for ; n > 0; n-- {
		if toScrollback {
			g.scroll.push(buf[g.top])
		}
		copy(buf[g.top:g.bot], buf[g.top+1:g.bot+1])
		buf[g.bot] = makeRow(g.cols, g.defAttr)
	}
}

func (g *Grid) scrollDownRegion(n int) {
	buf := g.active()
	for ; n > 0; n-- {
		copy(buf[g.top+1:g.bot+1], buf[g.top:g.bot])
		buf[g.top] = makeRow(g.cols, g.defAttr)
	}
}

// --- Insert/delete ---

func (g *Grid) InsertLines(n int) {
	if g.row < g.top || g.row > g.bot {
		return
	}
	buf := g.active()
	for ; n > 0; n-- {
		copy(buf[g.row+1:g.bot+1], buf[g.row:g.bot])
		buf[g.row] = makeRow(g.cols, g.defAttr)
	}
}

func (g *Grid) DeleteLines(n int) {
	if g.row < g.top || g.row > g.bot {
		return
	}
	buf := g.active()
	for ; n > 0; n-- {
		copy(buf[g.row:g.bot], buf[g.row+1:g.bot+1])
		buf[g.bot] = makeRow(g.cols, g.defAttr)
	}
}

func (g *Grid) InsertChars(n int) {
	row := g.active()[g.row]
	if n > g.cols-g.col {
		n = g.cols - g.col
	}
	copy(row[g.col+n:], row[g.col:g.cols-n])
	for i := g.col; i < g.col+n && i < g.cols; i++ {
		row[i] = blankCell(g.defAttr)
	}
}

func (g *Grid) DeleteChars(n int) {
	row := g.active()[g.row]
	if n > g.cols-g.col {
		n = g.cols - g.col
	}
	copy(row[g.col:g.cols-n], row[g.col+n:])
	for i := g.cols - n; i < g.cols; i++ {
		row[i] = blankCell(g.defAttr)
	}
}

// --- Erasure ---

func (g *Grid) Erase(mode vte.EraseMode, selective bool) {
	buf := g.active()
	clearCell := func(r, c int) {
		if selective && buf[r][c].Attr.Protect {
			return
		}
		buf[r][c] = blankCell(g.defAttr)
	}
	switch mode {
	case vte.EraseToEnd:
		for c := g.col; c < g.cols; c++ {
			clearCell(g.row, c)
		}
	case vte.EraseToCursor:
		for c := 0; c <= g.col && c < g.cols; c++ {
			clearCell(g.row, c)
		}
	case vte.EraseCurrentLine:
		for c := 0; c < g.cols; c++ {
			clearCell(g.row, c)
		}
	case vte.EraseCursorToScreen:
		for c := g.col; c < g.cols; c++ {
			clearCell(g.row, c)
		}
		for r := g.row + 1; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				clearCell(r, c)
			}
		}
	case vte.EraseScreenToCursor:
		for r := 0; r < g.row; r++ {
			for c := 0; c < g.cols; c++ {
				clearCell(r, c)
			}
		}
		for c := 0; c <= g.col && c < g.cols; c++ {
			clearCell(g.row, c)
		}
	case vte.EraseScreen:
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				clearCell(r, c)
			}
		}
	}
}

func (g *Grid) EraseChars(n int) {
	row := g.active()[g.row]
	for c := g.col; c < g.col+n && c < g.cols; c++ {
		row[c] = blankCell(g.defAttr)
	}
}

// --- Mode flags and margins ---

func (g *Grid) SetFlag(flag vte.CursorFlag, on bool) {
	if int(flag) < 0 || int(flag) >= len(g.flags) {
		return
	}
	if flag == vte.FlagAlternate {
		g.altActive = on
	}
	g.flags[flag] = on
}

func (g *Grid) SetMargins(top, bottom int) {
	top = clampInt(top, 0, g.rows-1)
	bottom = clampInt(bottom, 0, g.rows-1)
	if top >= bottom {
		top, bottom = 0, g.rows-1
	}
	g.top, g.bot = top, bottom
}

// --- Attributes and content ---

func (g *Grid) SetDefaultAttribute(attr vte.Attribute) { g.defAttr = attr }

func (g *Grid) WriteSymbol(r rune, attr vte.Attribute) {
	width := runewidth.RuneWidth(r)
	if width < 1 {
		width = 1
	}
	buf := g.active()
	if g.flags[vte.FlagInsert] {
		row := buf[g.row]
		copy(row[g.col+width:], row[g.col:g.cols-width])
	}
	if g.col >= g.cols {
		if g.flags[vte.FlagAutoWrap] {
			g.col = 0
			g.Newline()
		} else {
			g.col = g.cols - 1
		}
	}
	buf[g.row][g.col] = Cell{Rune: r, Attr: attr}
	g.col++
	// A wide glyph occupies a second cell so column math (cursor reports,
	// erase/insert ranges) lines up with what it actually covers.
	if width == 2 && g.col < g.cols {
		buf[g.row][g.col] = Cell{Rune: 0, Attr: attr}
		g.col++
	}
}

// --- Size and lifecycle ---

func (g *Grid) Size() (rows, cols int) { return g.rows, g.cols }

func (g *Grid) Reset() {
	g.main = makeRows(g.rows, g.cols, vte.Attribute{})
	g.alt = makeRows(g.rows, g.cols, vte.Attribute{})
	g.row, g.col = 0, 0
	g.top, g.bot = 0, g.rows-1
	g.altActive = false
	g.initTabs()
	g.scroll.clear()
}

func (g *Grid) ClearScrollback() { g.scroll.clear() }

// ScrollbackLine returns the scrollback row at offset i (0 is the oldest
// retained row), or nil if i is out of range. Not part of vte.Screen; a
// renderer calls this directly to paint history above the live grid.
func (g *Grid) ScrollbackLine(i int) []Cell { return g.scroll.line(i) }

// ScrollbackLen reports how many scrollback rows are currently retained.
func (g *Grid) ScrollbackLen() int { return g.scroll.count() }

// Row returns the live (non-scrollback) content of row r in the active
// buffer, for a renderer to paint directly.
func (g *Grid) Row(r int) []Cell {
	if r < 0 || r >= g.rows {
		return nil
	}
	return g.active()[r]
}
