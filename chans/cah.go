// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "math"

// CaHParams are the dendrite high-threshold calcium (CaV2.1) channel kinetics,
// in alpha / beta form.  The relaxation rate is Alpha + Beta scaled by RateFact.
type CaHParams struct {

	// maximal alpha rate
	AlphaMax float64 `def:"1.7"`

	// alpha half-activation voltage: Alpha = AlphaMax / (1 + exp(-(V - AlphaHalf) / AlphaSlope))
	AlphaHalf float64 `def:"5"`

	// alpha sigmoid slope
	AlphaSlope float64 `def:"13.9"`

	// beta rate multiplier
	BetaRate float64 `def:"0.02"`

	// beta voltage offset -- Beta is 0 / 0 at V = -BetaHalf
	BetaHalf float64 `def:"8.5"`

	// beta voltage scale
	BetaSlope float64 `def:"5"`

	// empirical factor on Alpha + Beta, i.e., tau = 5 / (Alpha + Beta)
	RateFact float64 `def:"0.2"`
}

func (cp *CaHParams) Defaults() {
	cp.AlphaMax = 1.7
	cp.AlphaHalf = 5
	cp.AlphaSlope = 13.9
	cp.BetaRate = 0.02
	cp.BetaHalf = 8.5
	cp.BetaSlope = 5
	cp.RateFact = 0.2
}

// Alpha returns the opening rate at voltage v
func (cp *CaHParams) Alpha(v float64) float64 {
	return cp.AlphaMax / (1 + math.Exp(-(v-cp.AlphaHalf)/cp.AlphaSlope))
}

// Beta returns the closing rate at voltage v.
// NaN at exactly v = -BetaHalf.
func (cp *CaHParams) Beta(v float64) float64 {
	return cp.BetaRate * (v + cp.BetaHalf) / (math.Exp((v+cp.BetaHalf)/cp.BetaSlope) - 1.0)
}

// RInfRate returns the steady state of the R gate and the unscaled
// rate Alpha + Beta at voltage v
func (cp *CaHParams) RInfRate(v float64) (rinf, rate float64) {
	a := cp.Alpha(v)
	rate = a + cp.Beta(v)
	rinf = a / rate
	return
}
