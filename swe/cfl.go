package swe

import "math"

// ComputeTimeStep returns the largest dt satisfying the CFL condition
// dt <= min(cfl*dx/max(|u|+c), cfl*dy/max(|v|+c)), each maximum taken
// over the interior cells, where c is the local gravity-wave speed
// sqrt(g*H). Cells with H<=0 are skipped; if no cell has a positive
// wave speed the result is +Inf.
func (sp *Spatial) ComputeTimeStep(state *Tensor, cfl float64) float64 {
	hs := sp.hs()
	ny, nx := sp.Dom.Ny, sp.Dom.Nx
	dx, dy := sp.Dom.Dx(), sp.Dom.Dy()

	maxSpeedX := 0.0
	maxSpeedY := 0.0
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			h := state.At(idH, hs+j, hs+i)
			if h <= 0 {
				continue
			}
			c := math.Sqrt(sp.Dom.G * h)
			u := state.At(idU, hs+j, hs+i)
			if s := math.Abs(u) + c; s > maxSpeedX {
				maxSpeedX = s
			}
			v := state.At(idV, hs+j, hs+i)
			if s := math.Abs(v) + c; s > maxSpeedY {
				maxSpeedY = s
			}
		}
	}

	dt := math.Inf(1)
	if maxSpeedX > 0 {
		dt = math.Min(dt, cfl*dx/maxSpeedX)
	}
	if maxSpeedY > 0 {
		dt = math.Min(dt, cfl*dy/maxSpeedY)
	}
	return dt
}
