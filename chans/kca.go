// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

// KCaParams are the dendrite calcium-dependent potassium (KCa1.1, BK)
// channel kinetics.  Alpha is linear in the calcium concentration up to
// AlphaMax, Beta is constant.
type KCaParams struct {

	// scaling from calcium concentration to alpha
	CaScale float64 `def:"2e-05"`

	// breakpoint and maximal value of alpha
	AlphaMax float64 `def:"0.01"`

	// constant closing rate
	Beta float64 `def:"0.015"`
}

func (kp *KCaParams) Defaults() {
	kp.CaScale = 0.00002
	kp.AlphaMax = 0.01
	kp.Beta = 0.015
}

// Alpha returns the opening rate at calcium concentration ca.
// This is a blend of two indicator-weighted terms, so exactly at the
// breakpoint both terms are 0, and a non-finite ca gives NaN.
func (kp *KCaParams) Alpha(ca float64) float64 {
	x := kp.CaScale * ca
	return x*b2f(x < kp.AlphaMax) + kp.AlphaMax*b2f(x > kp.AlphaMax)
}

// SInfRate returns the steady state of the S gate and its rate at calcium ca
func (kp *KCaParams) SInfRate(ca float64) (sinf, rate float64) {
	a := kp.Alpha(ca)
	rate = a + kp.Beta
	sinf = a / rate
	return
}
