// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "math"

// HParams are the dendrite hyperpolarization-activated (HCN) h current kinetics.
// The rate is a sum of two exponentials in voltage.
type HParams struct {

	// half-activation offset for Q
	QHalf float64 `def:"80"`

	// slope of the Q sigmoid -- negative = opens with hyperpolarization
	QSlope float64 `def:"-4"`

	// voltage coefficient of the first rate exponential
	Slope1 float64 `def:"-0.086"`

	// offset of the first rate exponential
	Off1 float64 `def:"-14.6"`

	// voltage coefficient of the second rate exponential
	Slope2 float64 `def:"0.07"`

	// offset of the second rate exponential
	Off2 float64 `def:"-1.87"`
}

func (hp *HParams) Defaults() {
	hp.QHalf = 80
	hp.QSlope = -4
	hp.Slope1 = -0.086
	hp.Off1 = -14.6
	hp.Slope2 = 0.070
	hp.Off2 = -1.87
}

// QInf returns the steady state of the Q gate at voltage v
func (hp *HParams) QInf(v float64) float64 {
	return Sigmoid(v, hp.QHalf, hp.QSlope)
}

// Rate returns the relaxation rate (inverse time constant) of Q at voltage v
func (hp *HParams) Rate(v float64) float64 {
	return math.Exp(hp.Slope1*v+hp.Off1) + math.Exp(hp.Slope2*v+hp.Off2)
}
