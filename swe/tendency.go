package swe

// assembleTendenciesX differences the X-sweep's post-Riemann edge
// fluxes across each cell to produce H and U's tendency, and
// accumulates V's passive-wave flux difference onto the transverse
// quadrature term computeTendenciesX already wrote into tend(V,...).
func (sp *Spatial) assembleTendenciesX(tend *Tensor, dx float64, ny, nx int) {
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			tend.Set(-(sp.fw.At(idH, 0, j, i+1)-sp.fw.At(idH, 0, j, i))/dx, idH, j, i)
			tend.Set(-(sp.fw.At(idU, 0, j, i+1)-sp.fw.At(idU, 0, j, i))/dx, idU, j, i)
			tend.Add(-(sp.fw.At(idV, 1, j, i)+sp.fw.At(idV, 0, j, i+1))/dx, idV, j, i)
		}
	}
}

// assembleTendenciesY is assembleTendenciesX's transpose: it writes
// V's tendency directly and accumulates U's transverse term.
func (sp *Spatial) assembleTendenciesY(tend *Tensor, dy float64, ny, nx int) {
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			tend.Set(-(sp.fw.At(idH, 0, j+1, i)-sp.fw.At(idH, 0, j, i))/dy, idH, j, i)
			tend.Set(-(sp.fw.At(idV, 0, j+1, i)-sp.fw.At(idV, 0, j, i))/dy, idV, j, i)
			tend.Add(-(sp.fw.At(idU, 1, j, i)+sp.fw.At(idU, 0, j+1, i))/dy, idU, j, i)
		}
	}
}
