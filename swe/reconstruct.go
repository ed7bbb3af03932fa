package swe

// ReconstructGLLValues turns an Ord-wide cell-average stencil into
// NGLL sub-cell point values, using WENO weighting when cfg.DoWeno is
// set and the plain high-order stencil otherwise.
func (m *Matrices) ReconstructGLLValues(cfg Config, stencil []float64) []float64 {
	if cfg.DoWeno {
		coefs := m.ComputeWenoCoefs(stencil)
		return applyVec(m.CoefsToGLL, coefs)
	}
	return applyVec(m.StenToGLL, stencil)
}

// ReconstructGLLValuesAndDerivs is ReconstructGLLValues plus the
// physical-space derivative (the reference-cell derivative divided by
// dx) at each GLL point, used for the transverse velocity component
// whose x- or y-derivative the ADER recurrence needs directly.
func (m *Matrices) ReconstructGLLValuesAndDerivs(cfg Config, stencil []float64, dx float64) (values, derivs []float64) {
	var coefs []float64
	if cfg.DoWeno {
		coefs = m.ComputeWenoCoefs(stencil)
	} else {
		coefs = applyVec(m.StenToCoefs, stencil)
	}
	values = applyVec(m.CoefsToGLL, coefs)
	derivs = applyVec(m.CoefsToDerivGLL, coefs)
	for i := range derivs {
		derivs[i] /= dx
	}
	return
}
