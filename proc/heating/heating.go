// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package heating implements sensible heating of a humid air stream: the
// humidity ratio stays constant while temperature rises and the relative
// humidity falls
package heating

import (
	"github.com/cpmech/gopsychro/mdl/air"
	"github.com/cpmech/gopsychro/valid"
)

// Result holds the outcome of a heating step
type Result struct {
	Inlet  *air.Flow // inlet stream
	Outlet *air.Flow // outlet stream at the same humidity ratio
	Q      float64   // heat added [W]; non-negative
}

// MaxPower returns the largest power [W] that can be added to the stream.
// The outlet dry-bulb temperature is kept clear of the saturation
// temperature at the stream pressure, where the vapour pressure would reach
// the absolute pressure and the humid air state degenerates
func MaxPower(inlet *air.Flow) (float64, error) {
	st := inlet.State
	tmax := air.TMax
	if tsat, err := air.SatTemperature(st.P); err == nil {
		tmax = 0.98 * tsat
	}
	if tmax <= st.Tta {
		return 0, nil
	}
	imax, err := air.Enthalpy(tmax, st.X, st.P)
	if err != nil {
		return 0, err
	}
	return inlet.Mda * (imax - st.I) * 1000.0, nil
}

// FromPower heats a stream by a prescribed power
//  inlet: inlet stream
//  q:     heat to add [W]; must be non-negative and feasible for the stream
func FromPower(inlet *air.Flow, q float64) (*Result, error) {
	if err := valid.HeatingPower(q); err != nil {
		return nil, err
	}
	if q == 0 || inlet.Mda == 0 {
		return &Result{Inlet: inlet, Outlet: inlet}, nil
	}
	qmax, err := MaxPower(inlet)
	if err != nil {
		return nil, err
	}
	if err := valid.PowerLimit(q, qmax); err != nil {
		return nil, err
	}
	st := inlet.State
	t, err := air.TtaIX(st.I+q/(inlet.Mda*1000.0), st.X, st.P)
	if err != nil {
		return nil, err
	}
	out, err := air.NewState(st.P, t, st.X)
	if err != nil {
		return nil, err
	}
	return &Result{Inlet: inlet, Outlet: inlet.WithState(out), Q: q}, nil
}

// FromTemperature heats a stream to a target dry-bulb temperature
//  inlet: inlet stream
//  t:     target dry-bulb temperature [°C]; must not sit below the inlet
func FromTemperature(inlet *air.Flow, t float64) (*Result, error) {
	st := inlet.State
	if err := valid.HeatingTargetTta(st.Tta, t); err != nil {
		return nil, err
	}
	if t == st.Tta || inlet.Mda == 0 {
		return &Result{Inlet: inlet, Outlet: inlet}, nil
	}
	out, err := air.NewState(st.P, t, st.X)
	if err != nil {
		return nil, err
	}
	return &Result{
		Inlet:  inlet,
		Outlet: inlet.WithState(out),
		Q:      inlet.Mda * (out.I - st.I) * 1000.0,
	}, nil
}

// FromRelHum heats a stream until its relative humidity falls to the target
//  inlet: inlet stream
//  rh:    target relative humidity [%]; must not sit above the inlet
func FromRelHum(inlet *air.Flow, rh float64) (*Result, error) {
	st := inlet.State
	if err := valid.HeatingTargetRH(st.RH, rh); err != nil {
		return nil, err
	}
	if rh == st.RH || inlet.Mda == 0 {
		return &Result{Inlet: inlet, Outlet: inlet}, nil
	}
	t, err := air.TtaXRH(st.X, rh, st.P)
	if err != nil {
		return nil, err
	}
	return FromTemperature(inlet, t)
}
