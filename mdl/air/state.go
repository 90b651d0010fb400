// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package air

import (
	"github.com/cpmech/gopsychro/valid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// VapState classifies the water content of a humid air state by comparing
// the humidity ratio to its saturation value and the sign of the dry-bulb
// temperature
type VapState int

const (
	// Unsaturated means the water content is fully in the vapour phase
	Unsaturated VapState = iota

	// Saturated means the vapour phase holds exactly its maximum content
	Saturated

	// WaterMist means excess water is suspended as droplets (fog above 0°C)
	WaterMist

	// IceFog means excess water is suspended as ice crystals (at/below 0°C)
	IceFog
)

// String returns the name of the vapour state
func (o VapState) String() string {
	switch o {
	case Unsaturated:
		return "unsaturated"
	case Saturated:
		return "saturated"
	case WaterMist:
		return "water mist"
	case IceFog:
		return "ice fog"
	}
	return io.Sf("VapState(%d)", int(o))
}

// State holds a humid air state: the primitive quantities pressure,
// dry-bulb temperature and humidity ratio, plus every dependent property
// derived eagerly at construction. States are never mutated; processes
// produce new states
type State struct {

	// primitive
	P   float64 // absolute pressure [Pa]
	Tta float64 // dry-bulb temperature [°C]
	X   float64 // humidity ratio [kg/kg]

	// derived
	Ps    float64  // saturation pressure at Tta [Pa]
	RH    float64  // relative humidity [%] (above 100 in fog states)
	Xs    float64  // humidity ratio at saturation [kg/kg]
	Vap   VapState // vapour state classification
	Rho   float64  // density [kg/m³]
	Cp    float64  // specific heat [kJ/(kg・K)] per unit mass of dry air
	I     float64  // specific enthalpy [kJ/kg] per unit mass of dry air
	Twb   float64  // wet bulb temperature [°C]
	Tdp   float64  // dew point temperature [°C]
	Mu    float64  // dynamic viscosity [Pa・s]
	Kappa float64  // thermal conductivity [W/(m・K)]
	Pr    float64  // Prandtl number
}

// NewState creates a humid air state from primitive quantities
//  p: absolute pressure [Pa]
//  t: dry-bulb temperature [°C]
//  x: humidity ratio [kg/kg]
func NewState(p, t, x float64) (*State, error) {

	// validation
	if err := valid.Pressure(p); err != nil {
		return nil, err
	}
	if err := valid.DryBulb(t, TMin, TMax); err != nil {
		return nil, err
	}
	if err := valid.HumRatio(x, XMax); err != nil {
		return nil, err
	}
	ps, err := SatPressure(t)
	if err != nil {
		return nil, err
	}
	if ps >= p {
		return nil, chk.Err("air: humid air state is undefined: saturation pressure ps=%g reaches absolute pressure p=%g at t=%g", ps, p, t)
	}

	// moisture classification
	xs := MaxHumRatio(ps, p)
	var vap VapState
	switch {
	case x < xs:
		vap = Unsaturated
	case x > xs && t > 0:
		vap = WaterMist
	case x > xs:
		vap = IceFog
	default:
		vap = Saturated
	}

	// dependent properties
	o := &State{
		P:     p,
		Tta:   t,
		X:     x,
		Ps:    ps,
		RH:    100.0 * VapPressure(x, p) / ps,
		Xs:    xs,
		Vap:   vap,
		Rho:   Rho(t, x, p),
		Cp:    Cp(t, x),
		Mu:    Mu(t, x, p),
		Kappa: Kappa(t, x, p),
		Pr:    Prandtl(t, x, p),
	}
	o.I, err = Enthalpy(t, x, p)
	if err != nil {
		return nil, err
	}
	if vap == Unsaturated {
		o.Twb, err = WetBulb(t, o.RH, p)
		if err != nil {
			return nil, err
		}
		o.Tdp, err = DewPoint(t, o.RH, p)
		if err != nil {
			return nil, err
		}
	} else {
		// at or beyond saturation all three temperatures coincide
		o.Twb = t
		o.Tdp = t
	}
	return o, nil
}

// NewStateRH creates a humid air state from pressure, dry-bulb temperature
// and relative humidity
//  p:  absolute pressure [Pa]
//  t:  dry-bulb temperature [°C]
//  rh: relative humidity [%]
func NewStateRH(p, t, rh float64) (*State, error) {
	if err := valid.RelHum(rh); err != nil {
		return nil, err
	}
	if err := valid.Pressure(p); err != nil {
		return nil, err
	}
	if err := valid.DryBulb(t, TMin, TMax); err != nil {
		return nil, err
	}
	ps, err := SatPressure(t)
	if err != nil {
		return nil, err
	}
	if ps >= p {
		return nil, chk.Err("air: humid air state is undefined: saturation pressure ps=%g reaches absolute pressure p=%g at t=%g", ps, p, t)
	}
	return NewState(p, t, HumRatio(rh, ps, p))
}
