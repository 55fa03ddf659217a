// Copyright © 2025 VTE core contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/csiparams.go
// Summary: The bounded CSI parameter accumulator.
// Usage: Part of the VTE core parser.

package vte

const (
	maxCSIParams   = 16
	maxCSIParamVal = 65535
	unsetParam     = -1
)

// csiParams is a fixed-capacity ordered sequence of up to maxCSIParams
// integer parameters. Unset positions carry the unsetParam sentinel.
// Values saturate at maxCSIParamVal; further digits past that point are
// dropped rather than overflowing.
type csiParams struct {
	vals  [maxCSIParams]int
	count int
	// hasDigit tracks whether the in-progress final slot has received at
	// least one digit, distinguishing "no param typed" (unsetParam) from
	// "explicit 0".
	hasDigit bool
	// overflow is set once a ';' arrives with all slots in use; digits
	// after that point are dropped.
	overflow bool
}

func (c *csiParams) reset() {
	c.count = 0
	c.hasDigit = false
	c.overflow = false
}

// ensureSlot begins a new trailing parameter slot if needed, then
// returns true if the accumulator has room to keep collecting it.
func (c *csiParams) ensureSlot() bool {
	if c.count == 0 {
		c.count = 1
		c.vals[0] = unsetParam
		return true
	}
	return c.count <= maxCSIParams
}

// digit folds one decimal digit into the current trailing parameter.
func (c *csiParams) digit(d int) {
	if c.overflow || !c.ensureSlot() {
		return
	}
	idx := c.count - 1
	if idx >= maxCSIParams {
		return
	}
	cur := c.vals[idx]
	if cur == unsetParam {
		cur = 0
	}
	if !c.hasDigit {
		c.hasDigit = true
	}
	cur = cur*10 + d
	if cur > maxCSIParamVal {
		cur = maxCSIParamVal
	}
	c.vals[idx] = cur
}

// separator closes the current parameter slot (';' boundary) and opens the
// next one, subject to the 16-parameter cap.
func (c *csiParams) separator() {
	if c.count == 0 {
		c.count = 1
		c.vals[0] = unsetParam
	}
	c.hasDigit = false
	if c.count < maxCSIParams {
		c.count++
		c.vals[c.count-1] = unsetParam
	} else {
		c.overflow = true
	}
	// Beyond the cap, further separators/digits are silently dropped:
	// only the first 16 arguments populate the vector.
}

// atStart reports whether no digit or ';' has been accumulated yet, i.e.
// a private-marker byte ('?', '>', '<', '=') at this position would still
// be the very first byte of the parameter sequence.
func (c *csiParams) atStart() bool {
	return c.count == 0
}

// slice returns the populated parameter values (unsetParam for absent ones).
func (c *csiParams) slice() []int {
	if c.count == 0 {
		return nil
	}
	return c.vals[:c.count]
}

// get returns the parameter at index i, or def if absent/unset/out of range.
func (c *csiParams) get(i, def int) int {
	if i < 0 || i >= c.count {
		return def
	}
	if c.vals[i] == unsetParam {
		return def
	}
	return c.vals[i]
}

// getRaw returns the raw parameter at index i (unsetParam if absent), with
// no default substitution, for handlers that need to distinguish "absent"
// from "explicit".
func (c *csiParams) getRaw(i int) int {
	if i < 0 || i >= c.count {
		return unsetParam
	}
	return c.vals[i]
}
