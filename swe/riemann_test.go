package swe

import "testing"

func TestWaveSplitContributionsSumToFluxJump(t *testing.T) {
	g, h, n := 9.81, 2.0, 0.3
	df1, df2, df3 := 1.7, -0.4, 0.9

	hM, hP, nM, nP, tM, tP := waveSplit(g, h, n, df1, df2, df3)

	if !near(hM+hP, df1, 1e-12) {
		t.Fatalf("H contributions %v+%v != df1=%v", hM, hP, df1)
	}
	if !near(nM+nP, df2, 1e-12) {
		t.Fatalf("normal-momentum contributions %v+%v != df2=%v", nM, nP, df2)
	}
	if !near(tM+tP, df3, 1e-12) {
		t.Fatalf("transverse contributions %v+%v != df3=%v", tM, tP, df3)
	}
}

func TestWaveSplitUpwindsBySpeedSign(t *testing.T) {
	// Fast leftward flow (n-c<0 and n+c<0): both acoustic waves should
	// land entirely on the minus (left) side.
	g, h, n := 1.0, 4.0, -10.0
	hM, hP, _, _, _, _ := waveSplit(g, h, n, 1.0, 0.5, 0.0)
	if hP != 0 {
		t.Fatalf("expected all H wave mass upwinded left, got hP=%v", hP)
	}
	if hM == 0 {
		t.Fatalf("expected nonzero left contribution")
	}
}

func TestRiemannAtConservesFluxJump(t *testing.T) {
	sp := newTestSpatial(t, Domain{Nx: 4, Ny: 1, XLen: 1, YLen: 1, BCx: BCWall, BCy: BCWall, Profile: ProfileDamRect1D, Sim1D: true},
		Config{Ord: 5, NGLL: 3, NAder: 2, TimeAvg: true})

	sp.fw.Set(20, idH, 0, 0, 2)
	sp.fw.Set(1, idU, 0, 0, 2)
	sp.fw.Set(0.5, idV, 0, 0, 2)
	sp.fw.Set(15, idH, 1, 0, 2)
	sp.fw.Set(-0.5, idU, 1, 0, 2)
	sp.fw.Set(-0.2, idV, 1, 0, 2)
	sp.surf.Set(20, 0, 0, 2)
	sp.surf.Set(15, 1, 0, 2)

	hL, uL, vL := sp.fw.At(idH, 0, 0, 2), sp.fw.At(idU, 0, 0, 2), sp.fw.At(idV, 0, 0, 2)
	hR, uR, vR := sp.fw.At(idH, 1, 0, 2), sp.fw.At(idU, 1, 0, 2), sp.fw.At(idV, 1, 0, 2)
	hsL, hsR := sp.surf.At(0, 0, 2), sp.surf.At(1, 0, 2)
	h := 0.5 * (hL + hR)
	u := 0.5 * (uL + uR)
	df1 := hR*uR - hL*uL
	df2 := u*(uR-uL) + sp.Dom.G*(hsR-hsL)
	df3 := u * (vR - vL)
	wantHM, wantHP, wantUM, wantUP, wantVM, wantVP := waveSplit(sp.Dom.G, h, u, df1, df2, df3)

	sp.riemannAt(0, 2)

	if !near(wantVM, sp.fw.At(idV, 0, 0, 2), 1e-12) || !near(wantVP, sp.fw.At(idV, 1, 0, 2), 1e-12) {
		t.Fatalf("V upwind split not reproduced: want (%v,%v) got (%v,%v)",
			wantVM, wantVP, sp.fw.At(idV, 0, 0, 2), sp.fw.At(idV, 1, 0, 2))
	}

	gotFH := sp.fw.At(idH, 0, 0, 2)
	wantFH := 0.5 * ((hL*uL + wantHM) + (hR*uR - wantHP))
	if !near(gotFH, wantFH, 1e-12) {
		t.Fatalf("F_H=%v, want %v", gotFH, wantFH)
	}
	gotFU := sp.fw.At(idU, 0, 0, 2)
	wantFU := 0.5 * ((uL*uL*0.5+sp.Dom.G*hsL+wantUM)+(uR*uR*0.5+sp.Dom.G*hsR-wantUP))
	if !near(gotFU, wantFU, 1e-12) {
		t.Fatalf("F_U=%v, want %v", gotFU, wantFU)
	}
}
