// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iocell

import "github.com/emer/iocell/chans"

// StepAxon advances the axon hillock state a by one Euler step, coupled
// to the soma voltage vSoma.  Recording and the return value are as in StepSoma.
func (p *Params) StepAxon(a *AxonState, vSoma float64, rec []float64) string {
	ap := &p.Axon
	dt := p.Run.Delta
	v := a.V

	iLeak := ap.Gl * (v - p.Erev.L)
	iInteract := p.GAxonSoma * (v - vSoma)

	mInf := ap.Na.MInf(v)
	hInf := ap.Na.HInf(v)
	iNa := ap.GNa * chans.Pow3(mInf) * a.H * (v - p.Erev.Na)
	tauH := ap.Na.TauHFmV(v)
	a.H = a.H + dt*((hInf-a.H)/tauH)

	iK := ap.GK * chans.Pow4(a.X) * (v - p.Erev.K)
	xInf, xRate := ap.K.XInfRate(v)
	a.X = dt*((xInf-a.X)*xRate) + a.X

	if rec != nil {
		rec[AxonINa] = iNa
		rec[AxonIK] = iK
		rec[AxonV] = v
	}

	iChans := iNa + iK
	a.V = v + p.S*(-(iLeak+iInteract+iChans))*dt

	var fc finite
	fc.chk("I_leak", iLeak)
	fc.chk("I_interact", iInteract)
	fc.chk("I_Na", iNa)
	fc.chk("tau_h", tauH)
	fc.chk("I_K", iK)
	fc.chk("x_rate", xRate)
	fc.chk("h", a.H)
	fc.chk("x", a.X)
	fc.chk("V", a.V)
	return fc.bad
}
