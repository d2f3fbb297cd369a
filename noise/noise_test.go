// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"math"
	"testing"
)

func TestGaussSeed(t *testing.T) {
	a := NewGauss(42)
	b := NewGauss(42)
	c := NewGauss(43)
	same := true
	for i := 0; i < 100; i++ {
		av, bv, cv := a.NormFloat64(), b.NormFloat64(), c.NormFloat64()
		if av != bv {
			t.Fatalf("same seed differs at sample %d: %v != %v\n", i, av, bv)
		}
		if av != cv {
			same = false
		}
	}
	if same {
		t.Errorf("different seeds gave the same samples")
	}
}

func TestGaussMoments(t *testing.T) {
	g := NewGauss(1)
	n := 20000
	sum, ss := 0.0, 0.0
	for i := 0; i < n; i++ {
		v := g.NormFloat64()
		sum += v
		ss += v * v
	}
	mean := sum / float64(n)
	vr := ss/float64(n) - mean*mean
	if math.Abs(mean) > 0.05 {
		t.Errorf("mean too far from 0: %v\n", mean)
	}
	if math.Abs(vr-1) > 0.05 {
		t.Errorf("variance too far from 1: %v\n", vr)
	}
}

func TestSeq(t *testing.T) {
	sq := NewSeq(1, -2, 3)
	cor := []float64{1, -2, 3, 1, -2}
	for i, c := range cor {
		if v := sq.NormFloat64(); v != c {
			t.Errorf("seq idx: %d, v: %v, cor: %v\n", i, v, c)
		}
	}
	sq.Reset()
	if v := sq.NormFloat64(); v != 1 {
		t.Errorf("after Reset: %v, cor: 1\n", v)
	}
	var empty Seq
	if v := empty.NormFloat64(); v != 0 {
		t.Errorf("empty seq: %v, cor: 0\n", v)
	}
}

func TestParamsNew(t *testing.T) {
	var np Params
	np.Defaults()
	if _, ok := np.New().(*Gauss); !ok {
		t.Errorf("default kind should give a *Gauss")
	}
	np.Kind = Off
	if v := np.New().NormFloat64(); v != 0 {
		t.Errorf("Off kind: %v, cor: 0\n", v)
	}
	np.Kind = Sequence
	np.Seq = []float64{0.5}
	s1 := np.New()
	np.Seq[0] = 9
	if v := s1.NormFloat64(); v != 0.5 {
		t.Errorf("Sequence source should copy its values: %v\n", v)
	}
	f := Func(func() float64 { return 7 })
	if f.NormFloat64() != 7 {
		t.Errorf("Func adapter failed")
	}
}

func TestKindText(t *testing.T) {
	for k := Off; k < KindN; k++ {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var k2 Kind
		if err := k2.UnmarshalText(b); err != nil || k2 != k {
			t.Errorf("kind %v round trip gave %v, err: %v\n", k, k2, err)
		}
	}
	var k Kind
	if err := k.FromString("Brownian"); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}
