// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package air implements psychrometric equations for humid air: saturation
// pressure, humidity ratio, dew point, wet bulb, enthalpy and transport
// properties, together with the bounded-solver inversions of those relations
//  References:
//   [1] Hyland RW and Wexler A (1983) Formulations for the thermodynamic
//       properties of the saturated phases of H2O from 173.15K to 473.15K.
//       ASHRAE Transactions, 89(2A):500-519
//   [2] Buck AL (1981) New equations for computing vapor pressure and
//       enhancement factor. Journal of Applied Meteorology, 20:1527-1532
//   [3] Stull R (2011) Wet-bulb temperature from relative humidity and air
//       temperature. Journal of Applied Meteorology and Climatology,
//       50:2267-2269
//   [4] Tsilingiris PT (2008) Thermophysical and transport properties of
//       humid air at temperature range between 0 and 100°C.
//       Energy Conversion and Management, 49:1098-1110
package air

import (
	"math"

	"github.com/cpmech/gopsychro/mdl/dryair"
	"github.com/cpmech/gopsychro/mdl/vapour"
	"github.com/cpmech/gopsychro/mdl/water"
	"github.com/cpmech/gopsychro/num"
	"github.com/cpmech/gosl/chk"
)

const (
	// Epsilon is the ratio of molar masses of water vapour to dry air
	Epsilon = 0.621945

	// TMin and TMax bound the dry-bulb temperature accepted by the
	// correlations [°C]
	TMin = -90.0
	TMax = 200.0

	// XMax is the absolute ceiling of humidity ratio accepted for a
	// physical state [kg/kg]
	XMax = 3.0
)

// bracket factors for the saturation pressure solve. The upper factor is
// widened above 50°C where the analytic estimate drifts from the defining
// correlation
const (
	satPresLo     = 0.80
	satPresHi     = 1.01
	satPresWidenT = 50.0
)

// dew point threshold: below this relative humidity the analytic dew point
// estimate degrades and a bounded solve is used instead
const dewPointRefineRH = 25.0

// satPressureLog returns ln(ps[Pa]) from the defining correlation [1],
// with separate branches over liquid water (t ≥ 0) and ice (t < 0)
func satPressureLog(t float64) float64 {
	T := t + 273.15
	if t < 0 {
		return -5674.5359/T + 6.3925247 - 0.9677843e-2*T + 0.62215701e-6*T*T +
			0.20747825e-8*T*T*T - 0.9484024e-12*T*T*T*T + 4.1635019*math.Log(T)
	}
	return -5800.2206/T + 1.3914993 - 0.048640239*T + 0.41764768e-4*T*T -
		0.14452093e-7*T*T*T + 6.5459673*math.Log(T)
}

// satPressureEstimate returns a fast analytic estimate of the saturation
// pressure [Pa] using the Arden Buck equations [2]
func satPressureEstimate(t float64) float64 {
	if t < 0 {
		return 611.15 * math.Exp((23.036-t/333.7)*t/(279.82+t))
	}
	return 611.21 * math.Exp((18.678-t/234.5)*t/(257.14+t))
}

// SatPressure returns the saturation pressure of water vapour over a flat
// surface of liquid water (t ≥ 0) or ice (t < 0) [Pa]
//  t: dry-bulb temperature [°C], within [TMin, TMax]
//  The analytic estimate seeds a bounded solve of ln(p) - f(T) = 0 on the
//  defining correlation; an estimate too far off the correlation leaves the
//  bracket without a sign change and surfaces as an error
func SatPressure(t float64) (float64, error) {
	if t < TMin || t > TMax {
		return 0, chk.Err("air: dry-bulb temperature must be within [%g, %g]. t=%g is invalid", TMin, TMax, t)
	}
	est := satPressureEstimate(t)
	n := 1.0
	if t > satPresWidenT {
		n = 2.0
	}
	fT := satPressureLog(t)
	return num.Root(func(p float64) (float64, error) {
		return math.Log(p) - fT, nil
	}, satPresLo*est, satPresHi*est*n)
}

// SatTemperature returns the temperature at which water vapour saturates at
// the given pressure [°C]; it is the inverse of SatPressure
//  p: pressure [Pa], within the saturation pressures at TMin and TMax
func SatTemperature(p float64) (float64, error) {
	pmin := math.Exp(satPressureLog(TMin))
	pmax := math.Exp(satPressureLog(TMax))
	if p <= pmin || p >= pmax {
		return 0, chk.Err("air: saturation temperature is undefined for p=%g; pressure must be within (%g, %g)", p, pmin, pmax)
	}
	lnp := math.Log(p)
	return num.Root(func(t float64) (float64, error) {
		return satPressureLog(t) - lnp, nil
	}, TMin, TMax)
}

// HumRatio returns the humidity ratio [kg/kg]
//  rh: relative humidity [%]
//  ps: saturation pressure [Pa]
//  p:  absolute pressure [Pa]
func HumRatio(rh, ps, p float64) float64 {
	pw := rh / 100.0 * ps
	return Epsilon * pw / (p - pw)
}

// MaxHumRatio returns the humidity ratio at saturation [kg/kg]
//  ps: saturation pressure [Pa]
//  p:  absolute pressure [Pa]
func MaxHumRatio(ps, p float64) float64 {
	return HumRatio(100.0, ps, p)
}

// VapPressure returns the partial pressure of water vapour [Pa]
//  x: humidity ratio [kg/kg]
//  p: absolute pressure [Pa]
func VapPressure(x, p float64) float64 {
	return x * p / (Epsilon + x)
}

// RelHum returns the relative humidity [%]. Values above 100% indicate a
// fog state (humidity ratio beyond saturation); no clamping is applied
//  t: dry-bulb temperature [°C]
//  x: humidity ratio [kg/kg]
//  p: absolute pressure [Pa]
func RelHum(t, x, p float64) (float64, error) {
	ps, err := SatPressure(t)
	if err != nil {
		return 0, err
	}
	if ps >= p {
		return 0, chk.Err("air: saturation pressure ps=%g must be below absolute pressure p=%g. t=%g is too high for this pressure", ps, p, t)
	}
	return 100.0 * VapPressure(x, p) / ps, nil
}

// DewPoint returns the dew point temperature [°C]: the temperature at which
// the given moisture content saturates at constant pressure
//  t:  dry-bulb temperature [°C]
//  rh: relative humidity [%]
//  p:  absolute pressure [Pa]
//  An analytic estimate is returned directly for rh ≥ 25%; below that the
//  estimate degrades and a bounded solve matches the saturation humidity
//  ratio to the target instead. Vanishing moisture floors the result at TMin
func DewPoint(t, rh, p float64) (float64, error) {
	if rh < 0 || rh > 100 {
		return 0, chk.Err("air: relative humidity must be within [0, 100]. rh=%g is invalid", rh)
	}
	ps, err := SatPressure(t)
	if err != nil {
		return 0, err
	}
	if rh >= dewPointRefineRH {
		pk := rh / 100.0 * ps / 1000.0 // vapour pressure [kPa]
		α := math.Log(pk)
		est := 6.54 + 14.526*α + 0.7389*α*α + 0.09486*α*α*α + 0.4569*math.Pow(pk, 0.1984)
		if est < 0 {
			// frost point branch
			est = 6.09 + 12.608*α + 0.4959*α*α
		}
		return est, nil
	}
	return dewPointX(HumRatio(rh, ps, p), p)
}

// dewPointX returns the temperature at which the saturation humidity ratio
// equals x, which reduces to the saturation temperature at the vapour
// partial pressure. Moisture below the saturation content at TMin has no
// dew point within the working range and floors at TMin
func dewPointX(x, p float64) (float64, error) {
	pw := VapPressure(x, p)
	if pw <= math.Exp(satPressureLog(TMin)) {
		return TMin, nil
	}
	return SatTemperature(pw)
}

// WetBulb returns the wet bulb temperature [°C] from the adiabatic
// saturation balance: the enthalpy of the inlet air plus the enthalpy of the
// water (or ice, below 0°C) evaporated into it must equal the enthalpy of
// the saturated outlet at the wet bulb temperature
//  t:  dry-bulb temperature [°C]
//  rh: relative humidity [%]
//  p:  absolute pressure [Pa]
//  The trigonometric estimate of [3] seeds the bounded solve; if the seeded
//  bracket misses the root, the guaranteed bracket [dew point, t] is used
func WetBulb(t, rh, p float64) (float64, error) {
	if rh < 0 || rh > 100 {
		return 0, chk.Err("air: relative humidity must be within [0, 100]. rh=%g is invalid", rh)
	}
	ps, err := SatPressure(t)
	if err != nil {
		return 0, err
	}
	if ps >= p {
		return 0, chk.Err("air: saturation pressure ps=%g must be below absolute pressure p=%g", ps, p)
	}
	if rh > 99.999 {
		return t, nil
	}
	x := HumRatio(rh, ps, p)
	i, err := Enthalpy(t, x, p)
	if err != nil {
		return 0, err
	}

	// residual of the adiabatic saturation balance
	res := func(tw float64) (float64, error) {
		psw, e := SatPressure(tw)
		if e != nil {
			return 0, e
		}
		xsw := MaxHumRatio(psw, p)
		isw, e := Enthalpy(tw, xsw, p)
		if e != nil {
			return 0, e
		}
		hw := water.H(tw)
		if tw <= 0 {
			hw = water.HIce(tw)
		}
		return i + (xsw-x)*hw - isw, nil
	}

	// seeded bracket around the estimate of [3]
	est := t*math.Atan(0.151977*math.Sqrt(rh+8.313659)) + math.Atan(t+rh) -
		math.Atan(rh-1.676331) + 0.00391838*math.Pow(rh, 1.5)*math.Atan(0.023101*rh) -
		4.686035
	lo := math.Max(est-4.0, TMin)
	hi := math.Min(est+4.0, t)
	if lo < hi {
		if tw, e := num.Root(res, lo, hi); e == nil {
			return tw, nil
		}
	}

	// guaranteed bracket: the root lies between dew point and dry bulb
	tdp, err := dewPointX(x, p)
	if err != nil {
		return 0, err
	}
	return num.Root(res, tdp, t)
}

// Enthalpy returns the specific enthalpy of humid air per unit mass of dry
// air [kJ/kg]: the dry-air term plus a humidity-conditioned term for the
// vapour and, beyond saturation, for the suspended water mist (t > 0) or ice
// fog (t ≤ 0)
//  t: dry-bulb temperature [°C]
//  x: humidity ratio [kg/kg]
//  p: absolute pressure [Pa]
func Enthalpy(t, x, p float64) (float64, error) {
	if x < 0 {
		return 0, chk.Err("air: humidity ratio must be non-negative. x=%g is invalid", x)
	}
	ps, err := SatPressure(t)
	if err != nil {
		return 0, err
	}
	if ps >= p {
		return 0, chk.Err("air: saturation pressure ps=%g must be below absolute pressure p=%g", ps, p)
	}
	ida := dryair.H(t)
	xmax := MaxHumRatio(ps, p)
	if x <= xmax {
		return ida + x*vapour.H(t), nil
	}
	iv := xmax * vapour.H(t)
	if t > 0 {
		return ida + iv + (x-xmax)*water.H(t), nil
	}
	return ida + iv + (x-xmax)*water.HIce(t), nil
}

// Cp returns the specific heat of humid air per unit mass of dry air
// [kJ/(kg・K)]
//  t: dry-bulb temperature [°C]
//  x: humidity ratio [kg/kg]
func Cp(t, x float64) float64 {
	return dryair.Cp(t) + x*vapour.Cp(t)
}

// Rho returns the density of humid air [kg/m³] from the partial pressures
// of dry air and water vapour
//  t: dry-bulb temperature [°C]
//  x: humidity ratio [kg/kg]
//  p: absolute pressure [Pa]
func Rho(t, x, p float64) float64 {
	T := t + 273.15
	pw := VapPressure(x, p)
	return (p-pw)/(dryair.R*T) + pw/(vapour.R*T)
}

// molar masses of dry air and water vapour [kg/kmol]
const (
	mmAir = 28.966
	mmVap = 18.015268
)

// wilkeFactors returns the interaction factors of the Wilke mixing rule for
// the dry air and water vapour pair [4]
func wilkeFactors(t float64) (φav, φva float64) {
	r := dryair.Mu(t) / vapour.Mu(t)
	a := 1.0 + math.Sqrt(r)*math.Pow(mmVap/mmAir, 0.25)
	b := 1.0 + math.Sqrt(1.0/r)*math.Pow(mmAir/mmVap, 0.25)
	φav = a * a / math.Sqrt(8.0*(1.0+mmAir/mmVap))
	φva = b * b / math.Sqrt(8.0*(1.0+mmVap/mmAir))
	return
}

// Mu returns the dynamic viscosity of humid air [Pa・s] using the Wilke
// mixing rule over the component viscosities [4]
//  t: dry-bulb temperature [°C]
//  x: humidity ratio [kg/kg]
//  p: absolute pressure [Pa]
func Mu(t, x, p float64) float64 {
	xv := VapPressure(x, p) / p
	xa := 1.0 - xv
	φav, φva := wilkeFactors(t)
	return xa*dryair.Mu(t)/(xa+xv*φav) + xv*vapour.Mu(t)/(xv+xa*φva)
}

// Kappa returns the thermal conductivity of humid air [W/(m・K)] using the
// Mason-Saxena form of the mixing rule [4]
//  t: dry-bulb temperature [°C]
//  x: humidity ratio [kg/kg]
//  p: absolute pressure [Pa]
func Kappa(t, x, p float64) float64 {
	xv := VapPressure(x, p) / p
	xa := 1.0 - xv
	φav, φva := wilkeFactors(t)
	return xa*dryair.Kappa(t)/(xa+xv*φav) + xv*vapour.Kappa(t)/(xv+xa*φva)
}

// Prandtl returns the Prandtl number of humid air; the specific heat is
// converted to a per-unit-mass-of-mixture basis
//  t: dry-bulb temperature [°C]
//  x: humidity ratio [kg/kg]
//  p: absolute pressure [Pa]
func Prandtl(t, x, p float64) float64 {
	cp := Cp(t, x) / (1.0 + x) * 1000.0 // [J/(kg・K)]
	return cp * Mu(t, x, p) / Kappa(t, x, p)
}

// ThermalDiffusivity returns the thermal diffusivity [m²/s]
//  rho: density [kg/m³]
//  k:   thermal conductivity [W/(m・K)]
//  cp:  specific heat [kJ/(kg・K)] on the same mass basis as rho
func ThermalDiffusivity(rho, k, cp float64) float64 {
	return k / (rho * cp * 1000.0)
}

// SpecificVolume returns the specific volume of humid air [m³/kg]
//  t: dry-bulb temperature [°C]
//  x: humidity ratio [kg/kg]
//  p: absolute pressure [Pa]
func SpecificVolume(t, x, p float64) float64 {
	return 1.0 / Rho(t, x, p)
}

// TtaIX returns the dry-bulb temperature [°C] matching the given specific
// enthalpy and humidity ratio; it is the bounded-solver inversion of
// Enthalpy, seeded by the closed-form unsaturated relation
//  i: specific enthalpy [kJ/kg]
//  x: humidity ratio [kg/kg]
//  p: absolute pressure [Pa]
func TtaIX(i, x, p float64) (float64, error) {
	res := func(t float64) (float64, error) {
		iv, e := Enthalpy(t, x, p)
		if e != nil {
			return 0, e
		}
		return iv - i, nil
	}

	// the upper end must stay clear of the boiling point where the humid
	// air state degenerates
	tmax := TMax
	if tsat, err := SatTemperature(p); err == nil {
		tmax = 0.98 * tsat
	}
	t0 := (i - vapour.R0*x) / (1.005 + 1.86*x)
	lo := math.Max(t0-5.0, TMin)
	hi := math.Min(t0+5.0, tmax)
	if lo < hi {
		if t, err := num.Root(res, lo, hi); err == nil {
			return t, nil
		}
	}
	return num.Root(res, TMin, tmax)
}

// TtaXRH returns the dry-bulb temperature [°C] at which the given humidity
// ratio corresponds to the given relative humidity; solved over the bracket
// from the moisture's dew point up to near the boiling point, where the
// relative humidity of a fixed moisture content strictly decreases
//  x:  humidity ratio [kg/kg]
//  rh: relative humidity [%]
//  p:  absolute pressure [Pa]
func TtaXRH(x, rh, p float64) (float64, error) {
	if rh <= 0 || rh > 100 {
		return 0, chk.Err("air: relative humidity must be within (0, 100]. rh=%g is invalid", rh)
	}
	if !(x > 0) {
		return 0, chk.Err("air: humidity ratio must be positive to match a relative humidity. x=%g is invalid", x)
	}
	lo, err := dewPointX(x, p)
	if err != nil {
		return 0, err
	}
	hi := TMax
	if tsat, err := SatTemperature(p); err == nil {
		hi = 0.98 * tsat
	}
	return num.Root(func(t float64) (float64, error) {
		rhv, e := RelHum(t, x, p)
		if e != nil {
			return 0, e
		}
		return rhv - rh, nil
	}, lo, hi)
}
