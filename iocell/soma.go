// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iocell

import "github.com/emer/iocell/chans"

// StepSoma advances the soma state s by one Euler step of Run.Delta msec,
// coupled to the given axon and dendrite voltages.  All currents and rates
// are computed from the voltage and gates at the start of the step.
// If rec is non-nil, the soma currents and the pre-step voltage are written
// into their trace columns.  Gate values are not clamped to [0,1].
// Returns the name of the first non-finite current, rate or new state value,
// or "" if all are finite.
func (p *Params) StepSoma(s *SomaState, vAxon, vDend float64, rec []float64) string {
	sp := &p.Soma
	dt := p.Run.Delta
	v := s.V

	iLeak := sp.Gl * (v - p.Erev.L)
	iInteract := p.GSomaDend*(v-vDend) + p.GSomaAxon*(v-vAxon)

	// low-threshold calcium: k relaxes at unit rate
	iCaL := sp.GCaL * s.K * s.K * s.K * s.L * (v - p.Erev.Ca)
	kInf := sp.CaL.KInf(v)
	lInf := sp.CaL.LInf(v)
	tauL := sp.CaL.TauL(v)
	s.K = dt*(kInf-s.K) + s.K
	s.L = dt*((lInf-s.L)/tauL) + s.L

	// sodium, instantaneous activation
	mInf := sp.Na.MInf(v)
	hInf := sp.Na.HInf(v)
	iNa := sp.GNa * chans.Pow3(mInf) * s.H * (v - p.Erev.Na)
	tauH := sp.Na.TauHFmV(v)
	s.H = s.H + dt*((hInf-s.H)/tauH)

	iKdr := sp.GKdr * chans.Pow4(s.N) * (v - p.Erev.K)
	nInf := sp.Kdr.NInf(v)
	tauN := sp.Kdr.TauN(v)
	s.N = dt*((nInf-s.N)/tauN) + s.N

	iK := sp.GK * chans.Pow4(s.X) * (v - p.Erev.K)
	xInf, xRate := sp.K.XInfRate(v)
	s.X = dt*((xInf-s.X)*xRate) + s.X

	if rec != nil {
		rec[SomaIK] = iK
		rec[SomaIKdr] = iKdr
		rec[SomaINa] = iNa
		rec[SomaICaL] = iCaL
		rec[SomaV] = v
	}

	iChans := iK + iKdr + iNa + iCaL
	s.V = v + p.S*(-(iLeak+iInteract+iChans))*dt

	var fc finite
	fc.chk("I_leak", iLeak)
	fc.chk("I_interact", iInteract)
	fc.chk("I_CaL", iCaL)
	fc.chk("tau_l", tauL)
	fc.chk("I_Na", iNa)
	fc.chk("tau_h", tauH)
	fc.chk("I_Kdr", iKdr)
	fc.chk("tau_n", tauN)
	fc.chk("I_K", iK)
	fc.chk("x_rate", xRate)
	fc.chk("k", s.K)
	fc.chk("l", s.L)
	fc.chk("h", s.H)
	fc.chk("n", s.N)
	fc.chk("x", s.X)
	fc.chk("V", s.V)
	return fc.bad
}
