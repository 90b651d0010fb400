// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	goio "io"

	"github.com/cpmech/gopsychro/mdl/air"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart draws a psychrometric chart in the (t, x) plane: the saturation line,
// constant relative humidity curves and optional process paths
type Chart struct {
	Title  string  // chart title
	P      float64 // absolute pressure [Pa]
	TtaMin float64 // lower dry-bulb limit [°C]
	TtaMax float64 // upper dry-bulb limit [°C]
	Npts   int     // number of points per curve
	paths  []chartPath
}

type chartPath struct {
	name   string
	states []*air.State
}

// NewChart creates a psychrometric chart for a given pressure
func NewChart(title string, p float64) *Chart {
	return &Chart{Title: title, P: p, TtaMin: 0, TtaMax: 50, Npts: 101}
}

// AddProcess overlays a named process path through the given states
func (o *Chart) AddProcess(name string, states ...*air.State) {
	o.paths = append(o.paths, chartPath{name: name, states: states})
}

// Render writes the chart as a standalone HTML page
func (o *Chart) Render(w goio.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: io.Sf("p = %g Pa", o.P)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "dry-bulb temperature [°C]", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "humidity ratio [g/kg]", Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	// saturation pressure along the temperature grid
	tt := utl.LinSpace(o.TtaMin, o.TtaMax, o.Npts)
	pss := make([]float64, len(tt))
	for i, t := range tt {
		ps, err := air.SatPressure(t)
		if err != nil {
			return err
		}
		pss[i] = ps
	}

	// saturation line and constant relative humidity curves; each curve stops
	// before the vapour pressure gets close to the total pressure
	for _, rh := range []float64{100, 80, 60, 40, 20} {
		data := make([]opts.LineData, 0, len(tt))
		for i, t := range tt {
			if rh/100.0*pss[i] >= 0.5*o.P {
				break
			}
			data = append(data, opts.LineData{Value: []interface{}{t, air.HumRatio(rh, pss[i], o.P) * 1000}})
		}
		name := io.Sf("rh = %g %%", rh)
		if rh == 100 {
			name = "saturation"
		}
		line.AddSeries(name, data, charts.WithLineChartOpts(opts.LineChart{Smooth: true}))
	}

	// process paths
	for _, p := range o.paths {
		data := make([]opts.LineData, 0, len(p.states))
		for _, st := range p.states {
			data = append(data, opts.LineData{Value: []interface{}{st.Tta, st.X * 1000}})
		}
		line.AddSeries(p.name, data)
	}
	return line.Render(w)
}

// Save renders the chart into an HTML file under dirout
func (o *Chart) Save(dirout, fn string) error {
	var buf bytes.Buffer
	if err := o.Render(&buf); err != nil {
		return err
	}
	io.WriteFileD(dirout, fn, &buf)
	return nil
}
