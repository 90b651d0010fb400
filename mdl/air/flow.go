// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package air

import (
	"github.com/cpmech/gopsychro/valid"
)

// Flow represents a humid air stream: a state plus the dry air mass flow
// that carries it. The dry air fraction is the bookkeeping basis because
// it is conserved through heating, cooling and humidification
type Flow struct {
	State *State  // humid air state
	Mda   float64 // dry air mass flow [kg/s]
	M     float64 // total (moist) mass flow [kg/s]
	V     float64 // volumetric flow [m³/s]
}

// NewFlow creates a humid air stream from a state and a dry air mass flow
//  mda: dry air mass flow [kg/s]
func NewFlow(state *State, mda float64) (*Flow, error) {
	if err := valid.MassFlow(mda); err != nil {
		return nil, err
	}
	return &Flow{
		State: state,
		Mda:   mda,
		M:     mda * (1.0 + state.X),
		V:     mda * (1.0 + state.X) / state.Rho,
	}, nil
}

// WithState creates a new stream carrying the same dry air mass flow at a
// different state. Useful for processes that conserve dry air
func (o *Flow) WithState(state *State) *Flow {
	return &Flow{
		State: state,
		Mda:   o.Mda,
		M:     o.Mda * (1.0 + state.X),
		V:     o.Mda * (1.0 + state.X) / state.Rho,
	}
}
