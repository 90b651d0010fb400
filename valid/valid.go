// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package valid implements the physical precondition checks gating the
// property and process equations: range checks on primitive quantities,
// direction checks on process targets and power, and feasibility checks on
// requested magnitudes. Checks report violations; they never correct values
package valid

import "github.com/cpmech/gosl/chk"

// RHTargetMax is the ceiling accepted for a target relative humidity [%].
// It sits below the theoretical 100% so that the implied outlet dry-bulb
// temperature stays numerically clear of the dew point
const RHTargetMax = 98.0

// Pressure checks that an absolute pressure is positive
func Pressure(p float64) error {
	if !(p > 0) {
		return chk.Err("validation: absolute pressure must be positive. p=%g is invalid", p)
	}
	return nil
}

// DryBulb checks that a dry-bulb temperature lies within [lo, hi]
func DryBulb(t, lo, hi float64) error {
	if t < lo || t > hi {
		return chk.Err("validation: dry-bulb temperature must be within [%g, %g]. t=%g is invalid", lo, hi, t)
	}
	return nil
}

// HumRatio checks that a humidity ratio lies within [0, ceiling]
func HumRatio(x, ceiling float64) error {
	if x < 0 || x > ceiling {
		return chk.Err("validation: humidity ratio must be within [0, %g]. x=%g is invalid", ceiling, x)
	}
	return nil
}

// RelHum checks that a relative humidity lies within [0, 100]
func RelHum(rh float64) error {
	if rh < 0 || rh > 100 {
		return chk.Err("validation: relative humidity must be within [0, 100]. rh=%g is invalid", rh)
	}
	return nil
}

// MassFlow checks that a mass flow is non-negative
func MassFlow(m float64) error {
	if m < 0 {
		return chk.Err("validation: mass flow must be non-negative. m=%g is invalid", m)
	}
	return nil
}

// HeatingPower checks the direction of a heating power demand
func HeatingPower(q float64) error {
	if q < 0 {
		return chk.Err("validation: heating power must not be negative; q=%g points in the cooling direction", q)
	}
	return nil
}

// CoolingPower checks the direction of a cooling power demand
func CoolingPower(q float64) error {
	if q > 0 {
		return chk.Err("validation: cooling power must not be positive; q=%g points in the heating direction", q)
	}
	return nil
}

// PowerLimit checks that the magnitude of a power demand stays within the
// feasible limit for the flow it acts upon
func PowerLimit(q, qlim float64) error {
	if qlim < 0 {
		qlim, q = -qlim, -q
	}
	if q > qlim {
		return chk.Err("validation: requested power exceeds the feasible limit for this flow: |q|=%g > |qlim|=%g", q, qlim)
	}
	return nil
}

// HeatingTargetTta checks the direction of a heating target temperature
func HeatingTargetTta(tInlet, tTarget float64) error {
	if tTarget < tInlet {
		return chk.Err("validation: heating cannot decrease temperature: target t=%g is below inlet t=%g", tTarget, tInlet)
	}
	return nil
}

// HeatingTargetRH checks the direction of a heating target relative
// humidity: heating at constant humidity ratio can only lower it
func HeatingTargetRH(rhInlet, rhTarget float64) error {
	if rhTarget <= 0 {
		return chk.Err("validation: target relative humidity must be positive. rh=%g is invalid", rhTarget)
	}
	if rhTarget > rhInlet {
		return chk.Err("validation: heating cannot increase relative humidity: target rh=%g is above inlet rh=%g", rhTarget, rhInlet)
	}
	return nil
}

// CoolingTargetTta checks the direction and range of a cooling target
// temperature; targets at or below 0°C would freeze the condensate film
func CoolingTargetTta(tInlet, tTarget float64) error {
	if tTarget > tInlet {
		return chk.Err("validation: cooling cannot increase temperature: target t=%g is above inlet t=%g", tTarget, tInlet)
	}
	if tTarget <= 0 {
		return chk.Err("validation: cooling target temperature must be above 0°C. t=%g is invalid", tTarget)
	}
	return nil
}

// CoolingTargetRH checks the direction and ceiling of a cooling target
// relative humidity
func CoolingTargetRH(rhInlet, rhTarget float64) error {
	if rhTarget < rhInlet {
		return chk.Err("validation: cooling cannot decrease relative humidity: target rh=%g is below inlet rh=%g", rhTarget, rhInlet)
	}
	if rhTarget > RHTargetMax {
		return chk.Err("validation: target relative humidity must not exceed %g%%. rh=%g is invalid", RHTargetMax, rhTarget)
	}
	return nil
}

// CoolantRange checks that coolant supply and return temperatures are
// ordered: the coolant must warm up through the coil
func CoolantRange(tSupply, tReturn float64) error {
	if tSupply > tReturn {
		return chk.Err("validation: coolant supply temperature t=%g must not exceed return temperature t=%g", tSupply, tReturn)
	}
	return nil
}
