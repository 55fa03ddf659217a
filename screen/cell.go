// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/cell.go
// Summary: The grid's cell record.
// Usage: Part of the reference Screen collaborator.

package screen

import "github.com/vtxcore/vte/vte"

// Cell is one character position on the grid: a rune plus the rendering
// attribute it was written with.
type Cell struct {
	Rune rune
	Attr vte.Attribute
}

func blankCell(attr vte.Attribute) Cell {
	return Cell{Rune: ' ', Attr: attr}
}
