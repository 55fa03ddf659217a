// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/dispatch_dcs.go
// Summary: DCS hook/unhook placeholders.
// Usage: Part of the VTE core command interpreter; driven from the
// parser's DCS_PASS entry/exit actions (vte/parser.go).

package vte

// dcsStart runs when the parser enters DCS_PASS (the sequence's final
// byte has been seen; payload bytes start flowing next). The default
// interpreter has no registered DCS handler, so there is nothing to hook.
func (v *VTE) dcsStart() {}

// dcsEnd runs when the parser leaves DCS_PASS. Left as a placeholder for
// a host that wants to register a Sixel/ReGIS/termcap-query handler; this
// module discards DCS payloads rather than interpreting any of them.
func (v *VTE) dcsEnd() {}
