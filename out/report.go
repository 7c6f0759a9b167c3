// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Report prints a summary of the final state of the run
func Report() {
	if Sim == nil || R == nil {
		chk.Panic("results are not available. Start must be called first")
	}
	n := len(R.T)
	io.Pf("\n")
	io.Pf("final state of %q (t = %g)\n", Sim.Key, R.T[n-1])
	io.Pf("  equilibrium liquid concentration = %23.15e\n", R.FinalC())
	io.Pf("  equilibrium resin loading        = %23.15e\n", R.FinalQ())
	if R.Mb != nil {
		io.Pf("  equilibrium bound mass           = %23.15e\n", R.FinalMb())
	}
	io.Pf("  mass balance closure residual    = %23.15e\n", R.Closure(n-1))
}

// Table prints the time series, sampled at nrows evenly spaced rows
func Table(nrows int) {
	if R == nil {
		chk.Panic("results are not available. Start must be called first")
	}
	n := len(R.T)
	if nrows < 2 || nrows > n {
		nrows = n
	}
	io.Pf("\n%14s%14s%14s", "t", "c", "q")
	if R.Mb != nil {
		io.Pf("%14s", "mb")
	}
	io.Pf("\n")
	step := (n - 1) / (nrows - 1)
	if step < 1 {
		step = 1
	}
	for i := 0; i < n; i += step {
		io.Pf("%14.6e%14.6e%14.6e", R.T[i], R.C[i], R.Q[i])
		if R.Mb != nil {
			io.Pf("%14.6e", R.Mb[i])
		}
		io.Pf("\n")
	}
}
