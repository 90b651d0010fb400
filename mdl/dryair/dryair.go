// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dryair implements property correlations for dry air
//  References:
//   [1] Irvine TF and Liley PE (1984) Steam and Gas Tables with Computer
//       Equations. Academic Press, Orlando
//   [2] Sutherland W (1893) The viscosity of gases and molecular force.
//       Philosophical Magazine, Series 5, 36:507-531
//   [3] Tsilingiris PT (2008) Thermophysical and transport properties of
//       humid air at temperature range between 0 and 100°C.
//       Energy Conversion and Management, 49:1098-1110
package dryair

import "math"

// R is the specific gas constant of dry air [J/(kg・K)]
const R = 287.055

// Cp returns the specific heat at constant pressure [kJ/(kg・K)]
//  t: dry-bulb temperature [°C]. Fit from [1], valid for 250 to 800 K
func Cp(t float64) float64 {
	T := t + 273.15
	return 1.03409 - 0.284887e-3*T + 0.7816818e-6*T*T - 0.4970786e-9*T*T*T + 0.1077024e-12*T*T*T*T
}

// H returns the specific enthalpy [kJ/kg] with reference zero at 0°C
//  t: dry-bulb temperature [°C]
func H(t float64) float64 {
	return Cp(t) * t
}

// Rho returns the density [kg/m³] from the ideal gas law
//  t: dry-bulb temperature [°C]
//  p: absolute pressure [Pa]
func Rho(t, p float64) float64 {
	return p / (R * (t + 273.15))
}

// Mu returns the dynamic viscosity [Pa・s] from Sutherland's law [2]
//  t: dry-bulb temperature [°C]
func Mu(t float64) float64 {
	T := t + 273.15
	return 1.716e-5 * ((273.15 + 110.4) / (T + 110.4)) * math.Pow(T/273.15, 1.5)
}

// Kappa returns the thermal conductivity [W/(m・K)]
//  t: dry-bulb temperature [°C]. Fit from [3]
func Kappa(t float64) float64 {
	return 2.43714e-2 + 7.83035e-5*t - 1.94021e-8*t*t + 2.85943e-12*t*t*t - 2.61420e-14*t*t*t*t
}
