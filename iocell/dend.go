// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iocell

// StepDend advances the dendrite state d by one Euler step, coupled to the
// soma voltage vSoma.  t is the absolute simulation clock in msec, used for
// the pulse window, and n is the standard-normal noise sample for this step
// (ignored when Stim.NoiseAmp is 0).  The CaH, KCa and h gates are updated
// before the calcium pool, and the KCa gate sees the pre-step calcium.
// Recording and the return value are as in StepSoma.
func (p *Params) StepDend(d *DendState, vSoma, t, n float64, rec []float64) string {
	dp := &p.Dend
	st := &p.Stim
	dt := p.Run.Delta
	v := d.V

	iApp := -st.App
	if tp := t - p.SkipMs; p.PulseStart < tp && tp < p.PulseEnd {
		iApp += -st.Pulse
	}
	if st.NoiseAmp != 0 {
		iApp += st.NoiseAmp * 5 * n
	}

	iLeak := dp.Gl * (v - p.Erev.L)
	iInteract := p.GDendSoma * (v - vSoma)

	// high-threshold calcium
	iCaH := dp.GCaH * d.R * d.R * (v - p.Erev.Ca)
	rInf, rRate := dp.CaH.RInfRate(v)
	d.R = dt*((rInf-d.R)*rRate*dp.CaH.RateFact) + d.R

	// calcium-dependent potassium, first order in its gate
	iKCa := dp.GKCa * d.S * (v - p.Erev.K)
	sInf, sRate := dp.KCa.SInfRate(d.Ca)
	d.S = dt*((sInf-d.S)*sRate) + d.S

	iH := dp.Gh * d.Q * (v - p.Erev.H)
	qInf := dp.H.QInf(v)
	qRate := dp.H.Rate(v)
	d.Q = dt*((qInf-d.Q)*qRate) + d.Q

	d.Ca = dt*dp.Ca.DCa(iCaH, d.Ca) + d.Ca

	if rec != nil {
		rec[DendICaH] = iCaH
		rec[DendIKCa] = iKCa
		rec[DendIH] = iH
		rec[DendV] = v
	}

	iChans := iCaH + iKCa + iH
	d.V = v + p.S*(-(iLeak+iInteract+iApp+iChans))*dt

	var fc finite
	fc.chk("I_app", iApp)
	fc.chk("I_leak", iLeak)
	fc.chk("I_interact", iInteract)
	fc.chk("I_CaH", iCaH)
	fc.chk("r_rate", rRate)
	fc.chk("I_KCa", iKCa)
	fc.chk("s_rate", sRate)
	fc.chk("I_h", iH)
	fc.chk("q_rate", qRate)
	fc.chk("r", d.R)
	fc.chk("s", d.S)
	fc.chk("q", d.Q)
	fc.chk("Ca", d.Ca)
	fc.chk("V", d.V)
	return fc.bad
}
