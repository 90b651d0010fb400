// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cooling implements cooling of a humid air stream over a chilled
// water coil with a bypass factor model: a fraction of the stream leaves in
// equilibrium with the coil wall while the rest bypasses unchanged, and
// moisture beyond the saturation content at the wall condenses out
//  References:
//   [1] ASHRAE (2016) Handbook of HVAC Systems and Equipment, Chapter 23:
//       Air-cooling and dehumidifying coils
package cooling

import (
	"github.com/cpmech/gopsychro/mdl/air"
	"github.com/cpmech/gopsychro/mdl/water"
	"github.com/cpmech/gopsychro/num"
	"github.com/cpmech/gopsychro/valid"
	"github.com/cpmech/gosl/chk"
)

// Coolant holds the chilled water loop temperatures. The effective coil
// wall temperature is the mean of supply and return
type Coolant struct {
	Tsup  float64 // supply temperature [°C]
	Tret  float64 // return temperature [°C]
	Twall float64 // effective coil wall temperature [°C]
}

// NewCoolant creates a chilled water loop description
//  tsup: supply temperature [°C]
//  tret: return temperature [°C]; must sit strictly above the supply so the
//        loop carries a finite flow, and the implied wall temperature must
//        stay above 0°C to keep the condensate film liquid
func NewCoolant(tsup, tret float64) (*Coolant, error) {
	if err := valid.CoolantRange(tsup, tret); err != nil {
		return nil, err
	}
	if tsup == tret {
		return nil, chk.Err("cooling: coolant must warm up through the coil: supply t=%g equals return t=%g", tsup, tret)
	}
	twall := 0.5 * (tsup + tret)
	if twall <= 0 {
		return nil, chk.Err("cooling: coil wall temperature t=%g must be above 0°C to keep the condensate liquid", twall)
	}
	return &Coolant{Tsup: tsup, Tret: tret, Twall: twall}, nil
}

// Result holds the outcome of a cooling step
type Result struct {
	Inlet         *air.Flow   // inlet stream
	Outlet        *air.Flow   // outlet stream
	Q             float64     // heat removed [W]; non-positive
	BF            float64     // coil bypass factor
	Twall         float64     // effective coil wall temperature [°C]
	Condensate    *water.Flow // condensate drain at the wall temperature
	CoolantSupply *water.Flow // chilled water demand at the supply temperature
	CoolantReturn *water.Flow // chilled water leaving at the return temperature
}

// waterFlows builds the condensate drain and the chilled water supply and
// return streams at the air-side pressure
func waterFlows(p float64, cool *Coolant, mCond, mc float64) (cond, sup, ret *water.Flow, err error) {
	condState, err := water.NewState(p, cool.Twall)
	if err != nil {
		return
	}
	cond, err = water.NewFlow(condState, mCond)
	if err != nil {
		return
	}
	supState, err := water.NewState(p, cool.Tsup)
	if err != nil {
		return
	}
	sup, err = water.NewFlow(supState, mc)
	if err != nil {
		return
	}
	retState, err := water.NewState(p, cool.Tret)
	if err != nil {
		return
	}
	ret, err = water.NewFlow(retState, mc)
	return
}

// zeroStep returns the degenerate result of a coil doing no work: the outlet
// is the inlet itself and no condensate or chilled water flows
func zeroStep(inlet *air.Flow, cool *Coolant) (*Result, error) {
	cond, sup, ret, err := waterFlows(inlet.State.P, cool, 0, 0)
	if err != nil {
		return nil, err
	}
	return &Result{
		Inlet:         inlet,
		Outlet:        inlet,
		BF:            1,
		Twall:         cool.Twall,
		Condensate:    cond,
		CoolantSupply: sup,
		CoolantReturn: ret,
	}, nil
}

// coilBalance evaluates the bypass model at a candidate outlet temperature.
// The contacted fraction leaves at the wall temperature, saturated when the
// inlet moisture exceeds the saturation content there; the heat removed
// accounts for the enthalpy carried away by the condensate
func coilBalance(st *air.State, mda, twall, t float64) (q, x2, mCond float64, err error) {
	psw, err := air.SatPressure(twall)
	if err != nil {
		return
	}
	xsw := air.MaxHumRatio(psw, st.P)
	bf := (t - twall) / (st.Tta - twall)
	x2 = st.X
	xc := st.X
	if xsw < st.X {
		xc = xsw
		x2 = xsw + bf*(st.X-xsw)
		mCond = (1.0 - bf) * mda * (st.X - xsw)
	}
	ic, err := air.Enthalpy(twall, xc, st.P)
	if err != nil {
		return
	}
	q = (1.0-bf)*mda*(ic-st.I)*1000.0 + mCond*water.H(twall)*1000.0
	return
}

// MinPower returns the most negative heat rate [W] this coil can extract
// from the stream: the outlet pinned at the wall temperature with no bypass
func MinPower(inlet *air.Flow, cool *Coolant) (float64, error) {
	st := inlet.State
	if cool.Twall >= st.Tta {
		return 0, chk.Err("cooling: coil wall t=%g must be below the inlet dry-bulb t=%g", cool.Twall, st.Tta)
	}
	q, _, _, err := coilBalance(st, inlet.Mda, cool.Twall, cool.Twall)
	return q, err
}

// FromTemperature cools a stream to a target dry-bulb temperature
//  inlet: inlet stream
//  cool:  chilled water loop
//  t:     target dry-bulb temperature [°C]; must lie between the coil wall
//         temperature and the inlet
func FromTemperature(inlet *air.Flow, cool *Coolant, t float64) (*Result, error) {
	st := inlet.State
	if err := valid.CoolingTargetTta(st.Tta, t); err != nil {
		return nil, err
	}

	// degenerate step
	if t == st.Tta || inlet.Mda == 0 {
		return zeroStep(inlet, cool)
	}
	if cool.Twall >= st.Tta {
		return nil, chk.Err("cooling: coil wall t=%g must be below the inlet dry-bulb t=%g", cool.Twall, st.Tta)
	}
	if t < cool.Twall {
		return nil, chk.Err("cooling: target t=%g sits below the coil wall t=%g and cannot be reached", t, cool.Twall)
	}
	q, x2, mCond, err := coilBalance(st, inlet.Mda, cool.Twall, t)
	if err != nil {
		return nil, err
	}
	out, err := air.NewState(st.P, t, x2)
	if err != nil {
		return nil, err
	}

	// chilled water demand from the loop temperature rise
	mc := -q / 1000.0 / (water.CpMean(cool.Tsup, cool.Tret) * (cool.Tret - cool.Tsup))
	cond, sup, ret, err := waterFlows(st.P, cool, mCond, mc)
	if err != nil {
		return nil, err
	}
	return &Result{
		Inlet:         inlet,
		Outlet:        inlet.WithState(out),
		Q:             q,
		BF:            (t - cool.Twall) / (st.Tta - cool.Twall),
		Twall:         cool.Twall,
		Condensate:    cond,
		CoolantSupply: sup,
		CoolantReturn: ret,
	}, nil
}

// FromRelHum cools a stream until its relative humidity rises to the target
//  inlet: inlet stream
//  cool:  chilled water loop
//  rh:    target relative humidity [%]; must not sit below the inlet and is
//         capped below saturation
func FromRelHum(inlet *air.Flow, cool *Coolant, rh float64) (*Result, error) {
	st := inlet.State
	if err := valid.CoolingTargetRH(st.RH, rh); err != nil {
		return nil, err
	}
	if rh == st.RH || inlet.Mda == 0 {
		return zeroStep(inlet, cool)
	}
	if cool.Twall >= st.Tta {
		return nil, chk.Err("cooling: coil wall t=%g must be below the inlet dry-bulb t=%g", cool.Twall, st.Tta)
	}
	t, err := num.Root(func(t float64) (float64, error) {
		_, x2, _, e := coilBalance(st, inlet.Mda, cool.Twall, t)
		if e != nil {
			return 0, e
		}
		rhv, e := air.RelHum(t, x2, st.P)
		if e != nil {
			return 0, e
		}
		return rhv - rh, nil
	}, cool.Twall, st.Tta)
	if err != nil {
		return nil, chk.Err("cooling: relative humidity target rh=%g is not reachable with this coil: %v", rh, err)
	}
	return FromTemperature(inlet, cool, t)
}

// FromPower cools a stream by a prescribed power
//  inlet: inlet stream
//  cool:  chilled water loop
//  q:     heat to remove [W]; must be non-positive and within the limit
//         given by MinPower
func FromPower(inlet *air.Flow, cool *Coolant, q float64) (*Result, error) {
	st := inlet.State
	if err := valid.CoolingPower(q); err != nil {
		return nil, err
	}
	if q == 0 || inlet.Mda == 0 {
		return zeroStep(inlet, cool)
	}
	qmin, err := MinPower(inlet, cool)
	if err != nil {
		return nil, err
	}
	if err := valid.PowerLimit(q, qmin); err != nil {
		return nil, err
	}
	t, err := num.Root(func(t float64) (float64, error) {
		qv, _, _, e := coilBalance(st, inlet.Mda, cool.Twall, t)
		if e != nil {
			return 0, e
		}
		return qv - q, nil
	}, cool.Twall, st.Tta)
	if err != nil {
		return nil, err
	}
	return FromTemperature(inlet, cool, t)
}
