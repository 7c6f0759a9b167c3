// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements batch simulation output handling for analyses and
// plotting
package out

import (
	"github.com/cpmech/gosl/chk"

	"github.com/mjmahoneyCU/batch-adsorption/batch"
	"github.com/mjmahoneyCU/batch-adsorption/inp"
)

// Global variables
var (

	// data set by Start
	Sim *inp.Simulation // simulation data
	R   *batch.Results  // time series of the run

	// subplots
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Start starts handling of results given a simulation and the series
// produced by its run
func Start(sim *inp.Simulation, res *batch.Results) {
	Sim = sim
	R = res
	Splots = make([]*SplotDat, 0)
	Csplot = nil
}

// GetRes gets a time series according to key
//  key -- one of {"t", "c", "q", "mb"}
func GetRes(key string) []float64 {
	if R == nil {
		chk.Panic("results are not available. Start must be called first")
	}
	switch key {
	case "t":
		return R.T
	case "c":
		return R.C
	case "q":
		return R.Q
	case "mb":
		if R.Mb == nil {
			chk.Panic("bound mass is only available with a porosity balance")
		}
		return R.Mb
	}
	chk.Panic("cannot get series with key %q. e.g. {t, c, q, mb}", key)
	return nil
}
