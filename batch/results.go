// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import "github.com/cpmech/gosl/utl"

// Results holds the simulated time series of one batch run
type Results struct {
	T  []float64 // time samples (evenly spaced, including 0 and tend)
	C  []float64 // liquid concentration
	Q  []float64 // resin loading
	Mb []float64 // bound mass per total volume; nil unless the balance is column based

	sys *System // system, for closure computations
}

// NewResults allocates results for npts samples over [0, tend]
func NewResults(sys *System, tend float64, npts int) (o *Results) {
	o = new(Results)
	o.T = utl.LinSpace(0, tend, npts)
	o.C = make([]float64, npts)
	o.Q = make([]float64, npts)
	if _, ok := sys.Bal.(ColumnBased); ok {
		o.Mb = make([]float64, npts)
	}
	o.sys = sys
	return
}

// Set stores the state y := {c, q} at sample i
func (o *Results) Set(i int, y []float64) {
	o.C[i], o.Q[i] = y[0], y[1]
	if o.Mb != nil {
		o.Mb[i] = y[1] * o.sys.Bal.(ColumnBased).SolidFrac()
	}
}

// FinalC returns the liquid concentration at the last sample
func (o Results) FinalC() float64 { return o.C[len(o.C)-1] }

// FinalQ returns the resin loading at the last sample
func (o Results) FinalQ() float64 { return o.Q[len(o.Q)-1] }

// FinalMb returns the bound mass at the last sample, or 0 for balances that
// are not column based
func (o Results) FinalMb() float64 {
	if o.Mb == nil {
		return 0
	}
	return o.Mb[len(o.Mb)-1]
}

// Closure returns the mass-balance closure residual at sample i
func (o Results) Closure(i int) float64 {
	return o.sys.Closure(o.C[i], o.Q[i])
}

// CAt returns the liquid concentration at time t, interpolated linearly
// between the two nearest samples. Times outside [0, tend] are clipped.
func (o Results) CAt(t float64) float64 {
	n := len(o.T)
	if t <= o.T[0] {
		return o.C[0]
	}
	if t >= o.T[n-1] {
		return o.C[n-1]
	}
	dt := o.T[1] - o.T[0]
	i := int(t / dt)
	if i > n-2 {
		i = n - 2
	}
	w := (t - o.T[i]) / dt
	return (1.0-w)*o.C[i] + w*o.C[i+1]
}
