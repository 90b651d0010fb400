// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vapour implements property correlations for water vapour
//  References:
//   [1] Tsilingiris PT (2008) Thermophysical and transport properties of
//       humid air at temperature range between 0 and 100°C.
//       Energy Conversion and Management, 49:1098-1110
//   [2] ASHRAE (2017) Handbook of Fundamentals, Chapter 1: Psychrometrics
package vapour

// R is the specific gas constant of water vapour [J/(kg・K)]
const R = 461.52

// R0 is the latent heat of vaporisation at 0°C [kJ/kg]
const R0 = 2500.9

// Cp returns the specific heat at constant pressure [kJ/(kg・K)]
//  t: temperature [°C]. Quadratic fit to ideal-gas steam data
func Cp(t float64) float64 {
	return 1.858 + 1.85e-4*t + 4.5e-7*t*t
}

// H returns the specific enthalpy [kJ/kg] including the latent heat of
// vaporisation at the 0°C reference
//  t: temperature [°C]
func H(t float64) float64 {
	return R0 + Cp(t)*t
}

// Rho returns the density [kg/m³] from the ideal gas law
//  t:  temperature [°C]
//  pw: partial pressure of water vapour [Pa]
func Rho(t, pw float64) float64 {
	return pw / (R * (t + 273.15))
}

// Mu returns the dynamic viscosity [Pa・s]. Fit from [1]
//  t: temperature [°C]
func Mu(t float64) float64 {
	return (80.58131868 + 0.4000549451*t) * 1e-7
}

// Kappa returns the thermal conductivity [W/(m・K)]. Fit from [1]
//  t: temperature [°C]
func Kappa(t float64) float64 {
	return 1.761758242e-2 + 5.558941059e-5*t + 1.663336663e-7*t*t
}
