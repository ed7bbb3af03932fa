package swe

import "gonum.org/v1/gonum/floats"

// Mass returns the total water depth summed over every interior cell.
// The grid is uniform, so total mass is proportional to this sum; the
// conservation property of interest (mass_final ~= mass_init) doesn't
// need the proportionality constant.
func (sp *Spatial) Mass(state *Tensor) float64 {
	hs := sp.hs()
	ny, nx := sp.Dom.Ny, sp.Dom.Nx
	h := make([]float64, 0, ny*nx)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			h = append(h, state.At(idH, hs+j, hs+i))
		}
	}
	return floats.Sum(h)
}

// Finalize returns the relative mass drift since InitState, the
// conservation report the original Spatial::finalize prints at the end
// of a run.
func (sp *Spatial) Finalize(state *Tensor) float64 {
	if sp.initMass == 0 {
		return 0
	}
	return (sp.Mass(state) - sp.initMass) / sp.initMass
}
