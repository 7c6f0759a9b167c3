// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package misotherm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// LangmuirAff implements the Langmuir isotherm with the equilibrium constant
// written as the affinity kl (inverse concentration units)
//
//   qeq(c) = qmax kl c / (1 + kl c)
//
// Equivalent to Langmuir with half-saturation concentration 1/kl.
type LangmuirAff struct {
	Qmax float64 // saturation capacity of the resin
	Kl   float64 // affinity constant
}

// add model to factory
func init() {
	allocators["langmuir-aff"] = func() Model { return new(LangmuirAff) }
}

// Init initialises model
func (o *LangmuirAff) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "qmax":
			o.Qmax = p.V
		case "kl":
			o.Kl = p.V
		case "k", "ka":
		default:
			return chk.Err("langmuir-aff: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LangmuirAff) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "qmax", V: 65},
		&fun.Prm{N: "kl", V: 0.15},
	}
}

// Qeq computes qeq = f(c)
func (o LangmuirAff) Qeq(c float64) float64 {
	return o.Qmax * o.Kl * c / (1.0 + o.Kl*c)
}

// DqeqDc computes dqeq/dc
func (o LangmuirAff) DqeqDc(c float64) float64 {
	return o.Qmax * o.Kl / ((1.0 + o.Kl*c) * (1.0 + o.Kl*c))
}
