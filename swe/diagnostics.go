package swe

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// RMSDepth returns the root-mean-square water depth over the interior
// grid, a cheap scalar diagnostic for comparing runs (e.g. confirming a
// lake-at-rest perturbation decays rather than growing) without
// needing a full field dump.
func (sp *Spatial) RMSDepth(state *Tensor) float64 {
	hs := sp.hs()
	ny, nx := sp.Dom.Ny, sp.Dom.Nx
	hsq := make([]float64, 0, ny*nx)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			h := state.At(idH, hs+j, hs+i)
			hsq = append(hsq, h*h)
		}
	}
	return math.Sqrt(stat.Mean(hsq, nil))
}
