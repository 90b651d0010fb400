// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package water implements property correlations for liquid water and ice
//  References:
//   [1] Kell GS (1975) Density, thermal expansivity, and compressibility of
//       liquid water from 0°C to 150°C. Journal of Chemical and Engineering
//       Data, 20(1):97-105
//   [2] Popiel CO and Wojtkowiak J (1998) Simple formulas for thermophysical
//       properties of liquid water for heat transfer calculations (from 0°C
//       to 150°C). Heat Transfer Engineering, 19(3):87-101
package water

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// temperature bounds accepted by NewState [°C]. The fits in [1] and [2]
// cover 0 to 150°C; a margin is allowed for supercooled condensate and
// pressurised coolant loops
const (
	TMin = -20.0
	TMax = 200.0
)

// Rho returns the density [kg/m³]. Fit from [1]
//  t: temperature [°C]
func Rho(t float64) float64 {
	num := 999.83952 + 16.945176*t - 7.9870401e-3*t*t - 46.170461e-6*t*t*t +
		105.56302e-9*t*t*t*t - 280.54253e-12*t*t*t*t*t
	return num / (1.0 + 16.879850e-3*t)
}

// Cp returns the specific heat [kJ/(kg・K)]. Fit from [2]
//  t: temperature [°C]
func Cp(t float64) float64 {
	a := math.Abs(t)
	return 4.2174356 - 0.0056181625*t + 0.0012992528*a*math.Sqrt(a) -
		0.00011535353*t*t + 4.14964e-6*t*t*a*math.Sqrt(a)
}

// CpMean returns the specific heat averaged over [ta, tb] using a three
// point Simpson rule [kJ/(kg・K)]
func CpMean(ta, tb float64) float64 {
	if ta == tb {
		return Cp(ta)
	}
	return (Cp(ta) + 4.0*Cp(0.5*(ta+tb)) + Cp(tb)) / 6.0
}

// H returns the specific enthalpy [kJ/kg] with reference zero at 0°C
//  t: temperature [°C]
func H(t float64) float64 {
	return Cp(t) * t
}

// State holds the state of a liquid water stream with properties derived
// eagerly at construction and never mutated afterwards
type State struct {
	P   float64 // absolute pressure [Pa]
	Tta float64 // temperature [°C]

	// derived
	Rho float64 // density [kg/m³]
	Cp  float64 // specific heat [kJ/(kg・K)]
	I   float64 // specific enthalpy [kJ/kg]
}

// NewState creates a liquid water state
//  p: absolute pressure [Pa]
//  t: temperature [°C]
func NewState(p, t float64) (*State, error) {
	if !(p > 0) {
		return nil, chk.Err("water: absolute pressure must be positive. p=%g is invalid", p)
	}
	if t < TMin || t > TMax {
		return nil, chk.Err("water: temperature must be within [%g, %g]. t=%g is invalid", TMin, TMax, t)
	}
	return &State{
		P:   p,
		Tta: t,
		Rho: Rho(t),
		Cp:  Cp(t),
		I:   H(t),
	}, nil
}

// Flow holds a liquid water state together with its mass flow
type Flow struct {
	State *State
	M     float64 // mass flow [kg/s]
	V     float64 // volumetric flow [m³/s]
}

// NewFlow creates a liquid water flow
//  state: liquid water state
//  m:     mass flow [kg/s]
func NewFlow(state *State, m float64) (*Flow, error) {
	if state == nil {
		return nil, chk.Err("water: state must be non-nil")
	}
	if m < 0 {
		return nil, chk.Err("water: mass flow must be non-negative. m=%g is invalid", m)
	}
	return &Flow{
		State: state,
		M:     m,
		V:     m / state.Rho,
	}, nil
}
