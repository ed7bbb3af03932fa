package swe

import "math"

// ComputeWenoCoefs reconstructs monomial coefficients from an Ord-wide
// cell-average stencil by weighting the HS+2 candidate polynomials
// (HS+1 overlapping low-order substencils plus the full high-order
// stencil) by their WENO-JS nonlinear weights. In smooth regions the
// weights relax to the ideal linear weights and the result matches the
// plain high-order reconstruction to leading order; near a
// discontinuity the smoother candidates dominate.
func (m *Matrices) ComputeWenoCoefs(stencil []float64) []float64 {
	nCand := m.HS + 2
	candidates := make([][]float64, nCand)
	betas := make([]float64, nCand)
	for k := 0; k < nCand; k++ {
		candidates[k] = applyVec(m.WenoStenToCoefs[k], stencil)
		betas[k] = smoothnessIndicator(candidates[k])
	}

	weights := make([]float64, nCand)
	var sum float64
	for k := 0; k < nCand; k++ {
		weights[k] = m.Idl[k] / math.Pow(wenoEps+betas[k], m.Sigma)
		sum += weights[k]
	}

	coefs := make([]float64, m.Ord)
	for k := 0; k < nCand; k++ {
		w := weights[k] / sum
		for c, v := range candidates[k] {
			coefs[c] += w * v
		}
	}
	return coefs
}

// smoothnessIndicator computes the classic Jiang-Shu smoothness
// indicator of a polynomial given in monomial coefficients over the
// reference cell [-1/2,1/2]: the sum, over every nonzero derivative
// order, of the squared L2 norm of that derivative on the cell.
func smoothnessIndicator(coef []float64) float64 {
	n := len(coef)
	deriv := append([]float64(nil), coef...)
	var beta float64
	for l := 1; l < n; l++ {
		deriv = differentiate(deriv)
		beta += l2NormSquared(deriv)
	}
	return beta
}

// differentiate returns the monomial coefficients of c's derivative,
// in a slice of the same length whose last entry is zero.
func differentiate(c []float64) []float64 {
	out := make([]float64, len(c))
	for m := 1; m < len(c); m++ {
		out[m-1] = float64(m) * c[m]
	}
	return out
}

// l2NormSquared computes integral_{-1/2}^{1/2} p(x)^2 dx for a
// polynomial p given in monomial coefficients.
func l2NormSquared(c []float64) float64 {
	var sum float64
	for a, ca := range c {
		if ca == 0 {
			continue
		}
		for b, cb := range c {
			sum += ca * cb * monomialIntegral(a+b)
		}
	}
	return sum
}

// monomialIntegral returns integral_{-1/2}^{1/2} x^p dx.
func monomialIntegral(p int) float64 {
	if p%2 != 0 {
		return 0
	}
	return 1.0 / (float64(p+1) * math.Pow(2, float64(p)))
}
