// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mixing implements adiabatic mixing of two humid air streams. The
// outlet follows from the dry air, moisture and energy balances alone; no
// heat crosses the boundary. Mixing near-saturated streams at different
// temperatures may push the outlet into the fog region
package mixing

import (
	"github.com/cpmech/gopsychro/mdl/air"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Result holds the outcome of a mixing step
type Result struct {
	First  *air.Flow // first inlet stream
	Second *air.Flow // second inlet stream
	Outlet *air.Flow // mixed outlet stream
}

// Mix joins two humid air streams at the same pressure. The outlet humidity
// ratio and enthalpy are flow-weighted averages on a dry air basis and the
// outlet temperature follows from the enthalpy
func Mix(first, second *air.Flow) (*Result, error) {
	a, b := first.State, second.State
	if a.P != b.P {
		return nil, chk.Err("mixing: streams must share the same pressure: p1=%g p2=%g", a.P, b.P)
	}
	mda := first.Mda + second.Mda
	if mda <= 0 {
		return nil, chk.Err("mixing: streams carry no dry air")
	}
	x := (first.Mda*a.X + second.Mda*b.X) / mda
	i := (first.Mda*a.I + second.Mda*b.I) / mda
	t, err := air.TtaIX(i, x, a.P)
	if err != nil {
		return nil, err
	}
	st, err := air.NewState(a.P, t, x)
	if err != nil {
		return nil, err
	}
	out, err := air.NewFlow(st, mda)
	if err != nil {
		return nil, err
	}
	return &Result{First: first, Second: second, Outlet: out}, nil
}

// FromTargetHumidity sizes the second stream so the mix leaves at a target
// humidity ratio. The dry air mass flow follows in closed form from the
// moisture balance
//  first:  first inlet stream
//  second: state of the second stream
//  x:      target humidity ratio [kg/kg]; must lie between the two streams
//          and away from the second one
func FromTargetHumidity(first *air.Flow, second *air.State, x float64) (*Result, error) {
	a := first.State
	if a.P != second.P {
		return nil, chk.Err("mixing: streams must share the same pressure: p1=%g p2=%g", a.P, second.P)
	}
	if x == second.X {
		return nil, chk.Err("mixing: target x=%g coincides with the second stream and would need an unbounded flow", x)
	}
	if x < utl.Min(a.X, second.X) || x > utl.Max(a.X, second.X) {
		return nil, chk.Err("mixing: target x=%g must lie between the streams: x1=%g x2=%g", x, a.X, second.X)
	}
	mda := first.Mda * (x - a.X) / (second.X - x)
	flw, err := air.NewFlow(second, mda)
	if err != nil {
		return nil, err
	}
	return Mix(first, flw)
}
