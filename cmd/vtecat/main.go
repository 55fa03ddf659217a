// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/vtecat/main.go
// Summary: A minimal interactive demo wiring vte.VTE + screen.Grid to a
// real shell over a PTY and a tcell terminal UI, grounded on the
// teacher's cmd/flicker/main.go event-loop shape and
// apps/texelterm/term.go's PTY/key wiring.
// Usage: go run ./cmd/vtecat [shell]

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"

	"github.com/vtxcore/vte/config"
	"github.com/vtxcore/vte/keyevent"
	"github.com/vtxcore/vte/screen"
	"github.com/vtxcore/vte/vte"
)

func main() {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	if len(os.Args) > 1 {
		shell = os.Args[1]
	}

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer s.Fini()

	cols, rows := s.Size()
	grid := screen.NewGrid(rows, cols)

	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		s.Fini()
		fmt.Fprintf(os.Stderr, "start pty: %v\n", err)
		os.Exit(1)
	}
	defer ptmx.Close()

	term, err := vte.New(grid, func(data []byte) { ptmx.Write(data) })
	if err != nil {
		s.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if cfg, err := config.Load(); err == nil && cfg.Palette != "" {
		if cfg.Palette == "custom" && len(cfg.Custom) == 54 {
			var rgb [54]byte
			copy(rgb[:], cfg.Custom)
			term.SetCustomPalette(rgb)
		}
		term.SetPalette(cfg.Palette)
	}

	quit := make(chan struct{})

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				term.Input(buf[:n])
				draw(s, grid)
			}
			if err != nil {
				close(quit)
				return
			}
		}
	}()

	for {
		select {
		case <-quit:
			return
		default:
		}
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			// Fixed-size grid: the viewport does not reflow on resize,
			// it only redraws what's already there.
			s.Sync()
		case *tcell.EventKey:
			key := keyevent.FromTcell(ev.Key(), ev.Rune(), ev.Modifiers())
			if out := term.HandleKeyboard(key); out != nil {
				ptmx.Write(out)
			}
		}
	}
}

// draw paints the grid's visible rows to the tcell screen. Scrollback is
// not shown; this demo only renders the live viewport.
func draw(s tcell.Screen, grid *screen.Grid) {
	rows, cols := grid.Size()
	for r := 0; r < rows; r++ {
		row := grid.Row(r)
		for c := 0; c < cols; c++ {
			cell := row[c]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(cell.Attr.FGR), int32(cell.Attr.FGG), int32(cell.Attr.FGB))).
				Background(tcell.NewRGBColor(int32(cell.Attr.BGR), int32(cell.Attr.BGG), int32(cell.Attr.BGB))).
				Bold(cell.Attr.Bold).
				Underline(cell.Attr.Underline).
				Reverse(cell.Attr.Inverse)
			s.SetContent(c, r, cell.Rune, nil, style)
		}
	}
	s.Show()
}
