// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

// CaPoolParams control the dendrite intracellular calcium pool, which is
// filled by the inward high-threshold calcium current and decays toward 0.
type CaPoolParams struct {

	// multiplier converting CaH current into calcium influx (current is negative when flowing in)
	ICaFact float64 `def:"3"`

	// first-order decay rate, per msec
	Decay float64 `def:"0.075"`
}

func (cp *CaPoolParams) Defaults() {
	cp.ICaFact = 3
	cp.Decay = 0.075
}

// DCa returns the derivative of the calcium concentration ca given the CaH current
func (cp *CaPoolParams) DCa(ica, ca float64) float64 {
	return -cp.ICaFact*ica - cp.Decay*ca
}
