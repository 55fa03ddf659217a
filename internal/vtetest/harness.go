// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/vtetest/harness.go
// Summary: A PTY-backed integration harness that feeds a real child
// process's output through a vte.VTE and a screen.Grid, grounded on the
// teacher's apps/texelterm/testutil/interactive_capture.go.
// Usage: For integration tests that want to drive an actual shell rather
// than scripted byte sequences. No package in this module imports it;
// cmd/vtecat wires its own PTY loop.

package vtetest

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/vtxcore/vte/screen"
	"github.com/vtxcore/vte/vte"
)

// Session wraps a child process's PTY, piping its output through a VTE
// bound to a Grid, and its keyboard-encoded input back to the PTY.
type Session struct {
	ptmx *os.File
	cmd  *exec.Cmd
	V    *vte.VTE
	Grid *screen.Grid

	mu   sync.Mutex
	done chan struct{}
}

// NewSession starts command under a PTY of the given size and begins
// pumping its output through a freshly constructed VTE/Grid pair.
func NewSession(command string, args []string, rows, cols int) (*Session, error) {
	cmd := exec.Command(command, args...)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("COLUMNS=%d", cols),
		fmt.Sprintf("LINES=%d", rows),
		"TERM=xterm-256color",
	)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return nil, fmt.Errorf("vtetest: start pty: %w", err)
	}

	// Raw mode disables the PTY's own echo so that responses the child
	// writes back (DSR replies, query answers) reach the VTE as plain
	// output instead of bouncing through line discipline. We never need
	// to restore the prior state: the PTY is private to this session.
	if _, err := term.MakeRaw(int(ptmx.Fd())); err != nil {
		ptmx.Close()
		return nil, fmt.Errorf("vtetest: make pty raw: %w", err)
	}

	grid := screen.NewGrid(rows, cols)
	s := &Session{ptmx: ptmx, cmd: cmd, Grid: grid, done: make(chan struct{})}

	v, err := vte.New(grid, func(data []byte) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.ptmx.Write(data)
	})
	if err != nil {
		ptmx.Close()
		return nil, err
	}
	s.V = v

	go s.readLoop()
	return s, nil
}

func (s *Session) readLoop() {
	defer close(s.done)
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.V.Input(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// SendInput writes raw bytes to the PTY, as if typed.
func (s *Session) SendInput(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.ptmx.Write(data)
	return err
}

// WaitIdle gives the child process a little time to process input and
// produce output before the caller inspects Grid.
func (s *Session) WaitIdle(d time.Duration) {
	time.Sleep(d)
}

// Close terminates the session and waits for the read loop to exit.
func (s *Session) Close() error {
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	s.ptmx.Close()
	<-s.done
	return nil
}
