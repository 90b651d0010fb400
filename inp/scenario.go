// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gopsychro/mdl/air"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// modes lists the drivers accepted by each process
var modes = map[string][]string{
	"heating": {"power", "temperature", "rh"},
	"cooling": {"power", "temperature", "rh"},
	"mixing":  {"flow", "humratio"},
}

// StreamData holds the definition of one humid air stream
type StreamData struct {
	P   float64 `json:"p"`   // absolute pressure [Pa]
	Tta float64 `json:"tta"` // dry-bulb temperature [°C]
	RH  float64 `json:"rh"`  // relative humidity [%]; used when x is absent
	X   float64 `json:"x"`   // humidity ratio [kg/kg]; takes precedence over rh when positive
	Mda float64 `json:"mda"` // dry air mass flow [kg/s]
}

// State builds the thermodynamic state of the stream
func (o *StreamData) State() (*air.State, error) {
	if o.X > 0 {
		return air.NewState(o.P, o.Tta, o.X)
	}
	return air.NewStateRH(o.P, o.Tta, o.RH)
}

// Flow builds the stream with its dry air mass flow
func (o *StreamData) Flow() (*air.Flow, error) {
	st, err := o.State()
	if err != nil {
		return nil, err
	}
	return air.NewFlow(st, o.Mda)
}

// CoolantData holds the chilled water loop temperatures
type CoolantData struct {
	Supply float64 `json:"supply"` // supply temperature [°C]
	Return float64 `json:"return"` // return temperature [°C]
}

// Scenario holds all data for one process case
type Scenario struct {

	// input
	Desc    string       `json:"desc"`    // description of the case
	Process string       `json:"process"` // process name: "heating", "cooling" or "mixing"
	Mode    string       `json:"mode"`    // driver: "power", "temperature" or "rh"; "flow" or "humratio" for mixing
	Target  float64      `json:"target"`  // target value in the unit implied by the mode
	Inlet   StreamData   `json:"inlet"`   // inlet stream
	Coolant *CoolantData `json:"coolant"` // chilled water loop; cooling only
	Second  *StreamData  `json:"second"`  // second stream; mixing only
	Report  bool         `json:"report"`  // print a report to the console
	Chart   string       `json:"chart"`   // filename for the HTML chart; empty disables it
	DirOut  string       `json:"dirout"`  // directory for output; e.g. /tmp/gopsychro

	// derived
	Key string // scenario key; e.g. cooling01.sim => cooling01
}

// Read reads a scenario from a .sim JSON file
func Read(path string) (*Scenario, error) {

	// read file
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("inp: cannot read scenario file %q", path)
	}

	// decode
	var o Scenario
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, chk.Err("inp: cannot unmarshal scenario file %q: %v", path, err)
	}

	// filename key and output directory
	o.Key = io.FnKey(filepath.Base(path))
	if o.DirOut == "" {
		o.DirOut = "/tmp/gopsychro/" + o.Key
	}

	// check enums
	allowed, found := modes[o.Process]
	if !found {
		return nil, chk.Err("inp: unknown process %q in %q", o.Process, path)
	}
	if utl.StrIndexSmall(allowed, o.Mode) < 0 {
		return nil, chk.Err("inp: process %q cannot run with mode %q in %q", o.Process, o.Mode, path)
	}

	// check process-specific blocks
	if o.Process == "cooling" && o.Coolant == nil {
		return nil, chk.Err("inp: cooling scenario %q needs a coolant block", path)
	}
	if o.Process == "mixing" && o.Second == nil {
		return nil, chk.Err("inp: mixing scenario %q needs a second stream", path)
	}
	return &o, nil
}

// Flow builds the inlet stream
func (o *Scenario) Flow() (*air.Flow, error) {
	return o.Inlet.Flow()
}
