// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "math"

// CaLParams are the soma low-threshold (T-type, CaV3.1) calcium channel kinetics.
// The K activation gate relaxes toward KInf at unit rate, and the
// L inactivation gate relaxes toward LInf with time constant TauL.
type CaLParams struct {

	// half-activation offset for K: KInf = 1 / (1 + exp(-(V + KHalf) / KSlope))
	KHalf float64 `def:"61"`

	// slope of the K activation sigmoid
	KSlope float64 `def:"4.2"`

	// half-inactivation offset for L
	LHalf float64 `def:"85"`

	// slope of the L inactivation sigmoid -- negative = closes with depolarization
	LSlope float64 `def:"-8.5"`
}

func (cp *CaLParams) Defaults() {
	cp.KHalf = 61
	cp.KSlope = 4.2
	cp.LHalf = 85
	cp.LSlope = -8.5
}

// KInf returns the activation steady state at voltage v
func (cp *CaLParams) KInf(v float64) float64 {
	return Sigmoid(v, cp.KHalf, cp.KSlope)
}

// LInf returns the inactivation steady state at voltage v
func (cp *CaLParams) LInf(v float64) float64 {
	return Sigmoid(v, cp.LHalf, cp.LSlope)
}

// TauL returns the inactivation time constant in msec
func (cp *CaLParams) TauL(v float64) float64 {
	return (20 * math.Exp((v+160)/30) / (1 + math.Exp((v+84)/7.3))) + 35
}
