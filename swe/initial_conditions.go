package swe

import "math"

// InitState fills state and the bathymetry with one of the four built-
// in profiles. The dam profile is set per cell from its (j,i) index
// (flat bathymetry); the other three are cell-averaged via the
// order-Ord GLL quadrature rule rather than sampled at cell centers.
// It then extends the
// bathymetry into the halo the same way a state halo is extended
// (bathymetry is static, so this runs once). It also records the
// initial total mass, used later by Finalize to report conservation.
func (sp *Spatial) InitState(state *Tensor) error {
	state.Zero()
	sp.bath.Zero()
	hs := sp.hs()
	ny, nx := sp.Dom.Ny, sp.Dom.Nx
	dx, dy := sp.Dom.Dx(), sp.Dom.Dy()
	pts, wts := sp.M.GLLOrdPts, sp.M.GLLOrdWts

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			switch sp.Dom.Profile {
			case ProfileDam:
				h, u := 1.0, 0.0
				if i > nx/4 && i < 3*nx/4 && j > ny/4 && j < 3*ny/4 {
					h = 3
				}
				state.Set(h, idH, hs+j, hs+i)
				state.Set(u, idU, hs+j, hs+i)

			case ProfileLakeAtRestPert1D:
				var hAcc, bAcc float64
				for ii := 0; ii < sp.Cfg.Ord; ii++ {
					xloc := (float64(i)+0.5)*dx + pts[ii]*dx
					b, surf := 0.0, 1.0
					if xloc >= 1.4 && xloc <= 1.6 {
						b = (1 + math.Cos(10*math.Pi*(xloc-0.5))) / 4
					}
					if xloc >= 1.1 && xloc <= 1.2 {
						surf = 1.001
					}
					hAcc += (surf - b) * wts[ii]
					bAcc += b * wts[ii]
				}
				state.Add(hAcc, idH, hs+j, hs+i)
				sp.bath.Add(bAcc, hs+j, hs+i)

			case ProfileDamRect1D:
				var hAcc, bAcc float64
				for ii := 0; ii < sp.Cfg.Ord; ii++ {
					xloc := (float64(i)+0.5)*dx + pts[ii]*dx
					b, surf := 0.0, 15.0
					if math.Abs(xloc-sp.Dom.XLen/2) <= sp.Dom.XLen/8 {
						b = 8
					}
					if xloc <= 750 {
						surf = 20
					}
					hAcc += (surf - b) * wts[ii]
					bAcc += b * wts[ii]
				}
				state.Add(hAcc, idH, hs+j, hs+i)
				sp.bath.Add(bAcc, hs+j, hs+i)

			case ProfileLakeAtRestPert2D:
				var hAcc, bAcc float64
				for jj := 0; jj < sp.Cfg.Ord; jj++ {
					for ii := 0; ii < sp.Cfg.Ord; ii++ {
						xloc := (float64(i)+0.5)*dx + pts[ii]*dx
						yloc := (float64(j)+0.5)*dy + pts[jj]*dy
						b := 0.8 * math.Exp(-5*(xloc-0.9)*(xloc-0.9)-50*(yloc-0.5)*(yloc-0.5))
						surf := 1.0
						if xloc >= 0.05 && xloc <= 0.15 {
							surf = 1.01
						}
						w := wts[ii] * wts[jj]
						hAcc += (surf - b) * w
						bAcc += b * w
					}
				}
				state.Add(hAcc, idH, hs+j, hs+i)
				sp.bath.Add(bAcc, hs+j, hs+i)
			}
		}
	}

	sp.applyBathymetryHalosX()
	sp.applyBathymetryHalosY()

	sp.initMass = sp.Mass(state)
	return nil
}
