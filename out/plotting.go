// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Label string    // curve label
	X     []float64 // x-values
	Y     []float64 // y-values
	Xlbl  string    // horizontal axis label (raw; e.g. "t")
	Ylbl  string    // vertical axis label (raw; e.g. "c")
	Style plt.Fmt   // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Title  string       // title of subplot
	Topts  string       // title options
	Xscale float64      // x-axis scale
	Yscale float64      // y-axis scale
	Xlbl   string       // x-axis label (formatted; e.g. "$t$")
	Ylbl   string       // y-axis label (formatted; e.g. "$c$")
	Data   []*PltEntity // data and styles to be plotted
}

// TexLabels maps series keys to axis labels
var TexLabels = map[string]string{
	"t":  "$t$",
	"c":  "$c$",
	"q":  "$q$",
	"mb": "$m_b$",
}

// GetTexLabel returns the axis label of a series key, with unit
func GetTexLabel(key, unit string) string {
	if key == "" {
		return ""
	}
	lbl, ok := TexLabels[key]
	if !ok {
		lbl = io.Sf("$%s$", key)
	}
	if unit != "" {
		return io.Sf("%s [%s]", lbl, unit)
	}
	return lbl
}

// Splot activates a new subplot window
func Splot(splotTitle string) {
	s := &SplotDat{Title: splotTitle, Xscale: 1, Yscale: 1}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig configures units and scales of axes
func SplotConfig(xunit, yunit string, xscale, yscale float64) {
	if Csplot != nil {
		var xlabel, ylabel string
		if len(Csplot.Data) > 0 {
			xlabel = Csplot.Data[0].Xlbl
			ylabel = Csplot.Data[0].Ylbl
		}
		Csplot.Xlbl = GetTexLabel(xlabel, xunit)
		Csplot.Ylbl = GetTexLabel(ylabel, yunit)
		Csplot.Xscale = xscale
		Csplot.Yscale = yscale
	}
}

// Plot plots a series from the results
//  xHandle -- can be a series key, e.g. "t", or a slice, e.g. []float64{0, 1, 2}
//  yHandle -- can be a series key, e.g. "c", or a slice
//  label   -- curve label; e.g. the material name
//  fm      -- formatting codes; e.g. plt.Fmt{C: "blue"}
func Plot(xHandle, yHandle interface{}, label string, fm plt.Fmt) {
	var e PltEntity
	e.Label = label
	e.Style = fm
	e.X, e.Xlbl = get_vals_and_label(xHandle)
	e.Y, e.Ylbl = get_vals_and_label(yHandle)
	if len(e.X) != len(e.Y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(e.X), len(e.Y))
	}
	if Csplot == nil {
		Splot("")
	}
	Csplot.Data = append(Csplot.Data, &e)
	SplotConfig("", "", 1, 1)
}

// ExtraPlt defines a callback function for extra plt commands
//  Note: i and j are indices as in Subplot
type ExtraPlt func(i, j, nplots int)

// Draw draws or saves the figure with all subplots
//  dirout -- directory to save figure
//  fname  -- file name; e.g. myplot.eps or myplot.png. Use "" to skip saving
//  show   -- shows figure
//  extra  -- is called just after the Subplot command and before any plotting
func Draw(dirout, fname string, show bool, extra ExtraPlt) {
	nplots := len(Splots)
	nr, nc := utl.BestSquare(nplots)
	var k int
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			plt.Subplot(nr, nc, k+1)
			if extra != nil {
				extra(i+1, j+1, nplots)
			}
			if Splots[k].Title != "" {
				plt.Title(Splots[k].Title, Splots[k].Topts)
			}
			data := Splots[k].Data
			for _, d := range data {
				if d.Style.L == "" {
					d.Style.L = d.Label
				}
				x := scaled(d.X, Splots[k].Xscale)
				y := scaled(d.Y, Splots[k].Yscale)
				plt.Plot(x, y, d.Style.GetArgs("clip_on=0"))
			}
			plt.Gll(Splots[k].Xlbl, Splots[k].Ylbl, "")
			k += 1
		}
	}
	if fname != "" {
		plt.SaveD(dirout, fname)
	}
	if show {
		plt.Show()
	}
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func get_vals_and_label(handle interface{}) ([]float64, string) {
	switch hnd := handle.(type) {
	case []float64:
		return hnd, ""
	case string:
		return GetRes(hnd), hnd
	}
	chk.Panic("cannot get values slice with handle = %v", handle)
	return nil, ""
}

func scaled(v []float64, scale float64) []float64 {
	if scale == 0 || scale == 1 {
		return v
	}
	s := make([]float64, len(v))
	for i := 0; i < len(v); i++ {
		s[i] = scale * v[i]
	}
	return s
}
