package swe

import "math"

// riemannX performs the f-wave decomposition at every X-sweep interface
// (ny rows, nx+1 interfaces), splitting the flux jump into the two
// acoustic f-waves plus V's passive advective wave and upwinding each
// by the sign of its characteristic speed. H and U are then reassigned
// to the centered conservative flux built from the two acoustic
// f-waves plus the original left/right fluxes — the well-balanced
// formulation's intended reuse of the fwaves array, kept verbatim
// (see DESIGN.md, Open Question 2). V keeps the pure upwind split; the
// tendency assembler reads it directly.
func (sp *Spatial) riemannX(ny, nx int) {
	for j := 0; j < ny; j++ {
		for i := 0; i <= nx; i++ {
			sp.riemannAt(j, i)
		}
	}
}

// riemannY is riemannX's transpose over the Y-sweep interfaces
// (ny+1 rows, nx columns), with U and V's roles swapped: V is the
// normal (acoustic) velocity and U is the passively advected one.
func (sp *Spatial) riemannY(ny, nx int) {
	for j := 0; j <= ny; j++ {
		for i := 0; i < nx; i++ {
			sp.riemannAtSwapped(j, i)
		}
	}
}

// waveSplit decomposes a jump in the depth/normal-momentum/transverse-
// momentum fluxes across an interface into the two acoustic f-waves
// (w1 at speed n̄-c, w2 at speed n̄+c) plus the passive transverse wave
// w3, and upwinds each by the sign of its speed: nM/hM/tM accumulate
// waves propagating into the left (minus) cell, nP/hP/tP into the
// right (plus) cell. By construction w1+w2 = df1 and the momentum
// contributions satisfy nP+nM-side cancellation such that each wave's
// total (left+right) contribution equals its share of the jump — see
// waveSplit's test for the exact identity.
func waveSplit(g, h, n, df1, df2, df3 float64) (hM, hP, nM, nP, tM, tP float64) {
	c := math.Sqrt(g * h)
	w1 := 0.5*df1 - h*df2/(2*c)
	w2 := 0.5*df1 + h*df2/(2*c)
	w3 := df3

	if n-c < 0 {
		hM += w1
		nM += -c * w1 / h
	} else {
		hP += w1
		nP += -c * w1 / h
	}
	if n+c < 0 {
		hM += w2
		nM += c * w2 / h
	} else {
		hP += w2
		nP += c * w2 / h
	}
	if n < 0 {
		tM += w3
	} else {
		tP += w3
	}
	return
}

func (sp *Spatial) riemannAt(j, i int) {
	hL, uL, vL := sp.fw.At(idH, 0, j, i), sp.fw.At(idU, 0, j, i), sp.fw.At(idV, 0, j, i)
	hR, uR, vR := sp.fw.At(idH, 1, j, i), sp.fw.At(idU, 1, j, i), sp.fw.At(idV, 1, j, i)
	hsL, hsR := sp.surf.At(0, j, i), sp.surf.At(1, j, i)

	h := 0.5 * (hL + hR)
	u := 0.5 * (uL + uR)

	df1 := hR*uR - hL*uL
	df2 := u*(uR-uL) + sp.Dom.G*(hsR-hsL)
	df3 := u * (vR - vL)

	hM, hP, uM, uP, vM, vP := waveSplit(sp.Dom.G, h, u, df1, df2, df3)

	sp.fw.Set(0.5*((hL*uL+hM)+(hR*uR-hP)), idH, 0, j, i)
	sp.fw.Set(0.5*((uL*uL*0.5+sp.Dom.G*hsL+uM)+(uR*uR*0.5+sp.Dom.G*hsR-uP)), idU, 0, j, i)
	sp.fw.Set(vM, idV, 0, j, i)
	sp.fw.Set(vP, idV, 1, j, i)
}

func (sp *Spatial) riemannAtSwapped(j, i int) {
	hL, vL, uL := sp.fw.At(idH, 0, j, i), sp.fw.At(idV, 0, j, i), sp.fw.At(idU, 0, j, i)
	hR, vR, uR := sp.fw.At(idH, 1, j, i), sp.fw.At(idV, 1, j, i), sp.fw.At(idU, 1, j, i)
	hsL, hsR := sp.surf.At(0, j, i), sp.surf.At(1, j, i)

	h := 0.5 * (hL + hR)
	v := 0.5 * (vL + vR)

	df1 := hR*vR - hL*vL
	df2 := v*(vR-vL) + sp.Dom.G*(hsR-hsL)
	df3 := v * (uR - uL)

	hM, hP, vM, vP, uM, uP := waveSplit(sp.Dom.G, h, v, df1, df2, df3)

	sp.fw.Set(0.5*((hL*vL+hM)+(hR*vR-hP)), idH, 0, j, i)
	sp.fw.Set(0.5*((vL*vL*0.5+sp.Dom.G*hsL+vM)+(vR*vR*0.5+sp.Dom.G*hsR-vP)), idV, 0, j, i)
	sp.fw.Set(uM, idU, 0, j, i)
	sp.fw.Set(uP, idU, 1, j, i)
}
