// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package misotherm

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots isotherm curve qeq(c)
//  args -- plot arguments; e.g. "'b-'"
func Plot(mdl Model, cmax float64, npts int, args, label string) {
	C := utl.LinSpace(0, cmax, npts)
	Q := make([]float64, npts)
	for i, c := range C {
		Q[i] = mdl.Qeq(c)
	}
	plt.Plot(C, Q, io.Sf("%s, label='%s', clip_on=0", args, label))
}

// PlotEnd ends plot and shows figure, if show==true
func PlotEnd(show bool) {
	plt.Cross()
	plt.Gll("$c$", "$q_{eq}$", "")
	if show {
		plt.Show()
	}
}
