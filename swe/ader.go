package swe

// computeTendenciesX reconstructs every interior cell's X-sweep edge
// states via WENO/direct reconstruction and the ADER-CK differential
// transform, stores them into the shared fwaves/surf_limits arrays,
// applies the X boundary condition to those edges, runs the f-wave
// Riemann solve, and differences the result into tend. V's tendency
// also picks up the across-cell GLL-quadrature transverse term
// computed during reconstruction; that slot is zeroed here first since
// it is accumulated into, not overwritten (see DESIGN.md, Open
// Question 1, for why sim1d skips the accumulation entirely).
func (sp *Spatial) computeTendenciesX(state, tend *Tensor, dt float64) {
	hs, ord, ngll, nAder := sp.hs(), sp.Cfg.Ord, sp.Cfg.NGLL, sp.Cfg.NAder
	dx := sp.Dom.Dx()
	ny, nx := sp.Dom.Ny, sp.Dom.Nx

	sp.applyStateHalosX(state)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			tend.Set(0, idV, j, i)
		}
	}

	parallelFor(ny, sp.Parallelism, func(j int) {
		hSten := make([]float64, ord)
		uSten := make([]float64, ord)
		vSten := make([]float64, ord)
		surfSten := make([]float64, ord)

		for i := 0; i < nx; i++ {
			for ii := 0; ii < ord; ii++ {
				si := i + ii
				hSten[ii] = state.At(idH, hs+j, si)
				uSten[ii] = state.At(idU, hs+j, si)
				vSten[ii] = state.At(idV, hs+j, si)
				surfSten[ii] = hSten[ii] + sp.bath.At(hs+j, si)
			}

			h := make([][]float64, nAder)
			u := make([][]float64, nAder)
			v := make([][]float64, nAder)
			dv := make([][]float64, nAder)
			surf := make([][]float64, nAder)
			hu := make([][]float64, nAder)
			uu := make([][]float64, nAder)
			udv := make([][]float64, nAder)

			h[0] = sp.M.ReconstructGLLValues(sp.Cfg, hSten)
			surf[0] = sp.M.ReconstructGLLValues(sp.Cfg, surfSten)
			u[0] = sp.M.ReconstructGLLValues(sp.Cfg, uSten)
			v[0], dv[0] = sp.M.ReconstructGLLValuesAndDerivs(sp.Cfg, vSten, dx)
			applyWallU(u[0], sp.Dom.BCx == BCWall, i == 0, i == nx-1)

			hu[0] = mulElem(h[0], u[0])
			uu[0] = mulElem(u[0], u[0])
			udv[0] = mulElem(u[0], dv[0])

			for kt := 0; kt < nAder-1; kt++ {
				dhu := derivPhysical(sp.M.DerivMatrix, hu[kt], dx)
				press := make([]float64, ngll)
				for ii := 0; ii < ngll; ii++ {
					press[ii] = 0.5*uu[kt][ii] + sp.Dom.G*surf[kt][ii]
				}
				dpress := derivPhysical(sp.M.DerivMatrix, press, dx)

				h[kt+1] = make([]float64, ngll)
				u[kt+1] = make([]float64, ngll)
				v[kt+1] = make([]float64, ngll)
				for ii := 0; ii < ngll; ii++ {
					h[kt+1][ii] = -dhu[ii] / float64(kt+1)
					u[kt+1][ii] = -dpress[ii] / float64(kt+1)
					v[kt+1][ii] = -udv[kt][ii] / float64(kt+1)
				}
				applyWallU(u[kt+1], sp.Dom.BCx == BCWall, i == 0, i == nx-1)

				surf[kt+1] = append([]float64(nil), h[kt+1]...)
				dv[kt+1] = derivPhysical(sp.M.DerivMatrix, v[kt+1], dx)
				hu[kt+1] = convolveSum(h, u, kt+1)
				uu[kt+1] = convolveSum(u, u, kt+1)
				udv[kt+1] = convolveSum(u, dv, kt+1)
			}

			h0, u0, v0, surf0, udv0 := h[0], u[0], v[0], surf[0], udv[0]
			if sp.Cfg.TimeAvg {
				h0 = timeAverage(h, dt)
				u0 = timeAverage(u, dt)
				v0 = timeAverage(v, dt)
				surf0 = timeAverage(surf, dt)
				udv0 = timeAverage(udv, dt)
			}

			sp.fw.Set(h0[0], idH, 1, j, i)
			sp.fw.Set(h0[ngll-1], idH, 0, j, i+1)
			sp.fw.Set(u0[0], idU, 1, j, i)
			sp.fw.Set(u0[ngll-1], idU, 0, j, i+1)
			sp.fw.Set(v0[0], idV, 1, j, i)
			sp.fw.Set(v0[ngll-1], idV, 0, j, i+1)
			sp.surf.Set(surf0[0], 1, j, i)
			sp.surf.Set(surf0[ngll-1], 0, j, i+1)

			if !sp.Dom.Sim1D {
				var acc float64
				for ii := 0; ii < ngll; ii++ {
					acc += sp.M.GLLWts[ii] * udv0[ii]
				}
				tend.Set(-acc, idV, j, i)
			}
		}
	})

	sp.applyEdgeBoundaryX(ny, nx)
	sp.riemannX(ny, nx)
	sp.assembleTendenciesX(tend, dx, ny, nx)
}

// computeTendenciesY is computeTendenciesX's transpose: V is the
// sweep-normal velocity, U the transverse one whose product with dU/dy
// feeds the quadrature term accumulated into tend(idU,...).
func (sp *Spatial) computeTendenciesY(state, tend *Tensor, dt float64) {
	hs, ord, ngll, nAder := sp.hs(), sp.Cfg.Ord, sp.Cfg.NGLL, sp.Cfg.NAder
	dy := sp.Dom.Dy()
	ny, nx := sp.Dom.Ny, sp.Dom.Nx

	sp.applyStateHalosY(state)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			tend.Set(0, idU, j, i)
		}
	}

	parallelFor(nx, sp.Parallelism, func(i int) {
		hSten := make([]float64, ord)
		vSten := make([]float64, ord)
		uSten := make([]float64, ord)
		surfSten := make([]float64, ord)

		for j := 0; j < ny; j++ {
			for jj := 0; jj < ord; jj++ {
				sj := j + jj
				hSten[jj] = state.At(idH, sj, hs+i)
				vSten[jj] = state.At(idV, sj, hs+i)
				uSten[jj] = state.At(idU, sj, hs+i)
				surfSten[jj] = hSten[jj] + sp.bath.At(sj, hs+i)
			}

			h := make([][]float64, nAder)
			v := make([][]float64, nAder)
			u := make([][]float64, nAder)
			du := make([][]float64, nAder)
			surf := make([][]float64, nAder)
			hv := make([][]float64, nAder)
			vv := make([][]float64, nAder)
			vdu := make([][]float64, nAder)

			h[0] = sp.M.ReconstructGLLValues(sp.Cfg, hSten)
			surf[0] = sp.M.ReconstructGLLValues(sp.Cfg, surfSten)
			v[0] = sp.M.ReconstructGLLValues(sp.Cfg, vSten)
			u[0], du[0] = sp.M.ReconstructGLLValuesAndDerivs(sp.Cfg, uSten, dy)
			applyWallU(v[0], sp.Dom.BCy == BCWall, j == 0, j == ny-1)

			hv[0] = mulElem(h[0], v[0])
			vv[0] = mulElem(v[0], v[0])
			vdu[0] = mulElem(v[0], du[0])

			for kt := 0; kt < nAder-1; kt++ {
				dhv := derivPhysical(sp.M.DerivMatrix, hv[kt], dy)
				press := make([]float64, ngll)
				for jj := 0; jj < ngll; jj++ {
					press[jj] = 0.5*vv[kt][jj] + sp.Dom.G*surf[kt][jj]
				}
				dpress := derivPhysical(sp.M.DerivMatrix, press, dy)

				h[kt+1] = make([]float64, ngll)
				v[kt+1] = make([]float64, ngll)
				u[kt+1] = make([]float64, ngll)
				for jj := 0; jj < ngll; jj++ {
					h[kt+1][jj] = -dhv[jj] / float64(kt+1)
					v[kt+1][jj] = -dpress[jj] / float64(kt+1)
					u[kt+1][jj] = -vdu[kt][jj] / float64(kt+1)
				}
				applyWallU(v[kt+1], sp.Dom.BCy == BCWall, j == 0, j == ny-1)

				surf[kt+1] = append([]float64(nil), h[kt+1]...)
				du[kt+1] = derivPhysical(sp.M.DerivMatrix, u[kt+1], dy)
				hv[kt+1] = convolveSum(h, v, kt+1)
				vv[kt+1] = convolveSum(v, v, kt+1)
				vdu[kt+1] = convolveSum(v, du, kt+1)
			}

			h0, v0, u0, surf0, vdu0 := h[0], v[0], u[0], surf[0], vdu[0]
			if sp.Cfg.TimeAvg {
				h0 = timeAverage(h, dt)
				v0 = timeAverage(v, dt)
				u0 = timeAverage(u, dt)
				surf0 = timeAverage(surf, dt)
				vdu0 = timeAverage(vdu, dt)
			}

			sp.fw.Set(h0[0], idH, 1, j, i)
			sp.fw.Set(h0[ngll-1], idH, 0, j+1, i)
			sp.fw.Set(v0[0], idV, 1, j, i)
			sp.fw.Set(v0[ngll-1], idV, 0, j+1, i)
			sp.fw.Set(u0[0], idU, 1, j, i)
			sp.fw.Set(u0[ngll-1], idU, 0, j+1, i)
			sp.surf.Set(surf0[0], 1, j, i)
			sp.surf.Set(surf0[ngll-1], 0, j+1, i)

			var acc float64
			for jj := 0; jj < ngll; jj++ {
				acc += sp.M.GLLWts[jj] * vdu0[jj]
			}
			tend.Set(-acc, idU, j, i)
		}
	})

	sp.applyEdgeBoundaryY(ny, nx)
	sp.riemannY(ny, nx)
	sp.assembleTendenciesY(tend, dy, ny, nx)
}

func applyWallU(u []float64, isWall, atLeft, atRight bool) {
	if !isWall {
		return
	}
	if atLeft {
		u[0] = 0
	}
	if atRight {
		u[len(u)-1] = 0
	}
}

func mulElem(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}

func derivPhysical(derivMatrix [][]float64, vals []float64, dx float64) []float64 {
	out := applyVec(derivMatrix, vals)
	for i := range out {
		out[i] /= dx
	}
	return out
}

// convolveSum computes the Cauchy-product term needed to advance a
// product series (e.g. h*u) to ADER order kt from its two factor
// series: sum_{r=0}^{kt} a[r][ii]*b[kt-r][ii].
func convolveSum(a, b [][]float64, kt int) []float64 {
	n := len(a[0])
	out := make([]float64, n)
	for r := 0; r <= kt; r++ {
		ar, br := a[r], b[kt-r]
		for ii := 0; ii < n; ii++ {
			out[ii] += ar[ii] * br[ii]
		}
	}
	return out
}

// timeAverage collapses an ADER Taylor series (rows indexed by
// derivative order) into its average over [0,dt]: term_kt contributes
// term_kt*dt^kt/(kt+1).
func timeAverage(rows [][]float64, dt float64) []float64 {
	n := len(rows[0])
	out := make([]float64, n)
	coef := 1.0
	for kt, row := range rows {
		w := coef / float64(kt+1)
		for ii, v := range row {
			out[ii] += v * w
		}
		coef *= dt
	}
	return out
}
