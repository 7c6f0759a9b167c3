// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package misotherm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Henry implements the linear (Henry) isotherm for dilute systems
//
//   qeq(c) = kh c
//
type Henry struct {
	Kh float64 // partition coefficient
}

// add model to factory
func init() {
	allocators["henry"] = func() Model { return new(Henry) }
}

// Init initialises model
func (o *Henry) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "kh":
			o.Kh = p.V
		case "k", "ka":
		default:
			return chk.Err("henry: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Henry) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "kh", V: 3},
	}
}

// Qeq computes qeq = f(c)
func (o Henry) Qeq(c float64) float64 {
	return o.Kh * c
}

// DqeqDc computes dqeq/dc
func (o Henry) DqeqDc(c float64) float64 {
	return o.Kh
}
