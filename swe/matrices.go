package swe

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrices holds every transform matrix that depends only on (Ord,
// NGLL) and not on the grid or the state: GLL quadrature nodes/weights,
// the stencil-to-coefficient and coefficient-to-GLL maps used by plain
// and WENO reconstruction, and the ADER spatial derivative matrix.
//
// Every map here follows one index convention: applying M to a source
// vector s (length = len(M)) to produce a destination vector d is
//
//	d[j] = sum_i M[i][j] * s[i]
//
// matching the way the reconstruction and ADER recurrences in the rest
// of this package read them. This mirrors TransformMatrices.h's family
// of sten_to_coefs/coefs_to_gll/coefs_to_deriv builders, but is derived
// directly from the defining moment and Vandermonde systems with
// gonum/mat rather than ported line-for-line, since the monomial basis
// used here differs from the original's.
type Matrices struct {
	Ord, NGLL, HS int

	GLLOrdPts, GLLOrdWts []float64 // order-Ord GLL rule on [-1/2,1/2]
	GLLPts, GLLWts       []float64 // order-NGLL GLL rule on [-1/2,1/2]

	StenToCoefs     [][]float64 // Ord x Ord
	CoefsToGLL      [][]float64 // Ord x NGLL
	CoefsToDerivGLL [][]float64 // Ord x NGLL
	StenToGLL       [][]float64 // Ord x NGLL
	StenToDerivGLL  [][]float64 // Ord x NGLL

	DerivMatrix [][]float64 // NGLL x NGLL, differentiates values sampled at the NGLL GLL nodes

	WenoStenToCoefs [][][]float64 // (HS+2) x Ord x Ord
	Idl             []float64     // HS+2 ideal linear weights
	Sigma           float64       // WENO-JS smoothness exponent
}

const wenoEps = 1.0e-6

// BuildMatrices constructs every transform matrix needed to reconstruct
// an Ord-wide cell-average stencil into NGLL sub-cell GLL point values
// (and their derivatives), with or without WENO weighting.
func BuildMatrices(ord, ngll int) (*Matrices, error) {
	if ord%2 == 0 || ord < 1 {
		return nil, fmt.Errorf("swe: ord must be a positive odd integer, got %d", ord)
	}
	if ngll < 1 {
		return nil, fmt.Errorf("swe: ngll must be positive, got %d", ngll)
	}
	hs := (ord - 1) / 2

	m := &Matrices{Ord: ord, NGLL: ngll, HS: hs, Sigma: 2.0}

	m.GLLOrdPts, m.GLLOrdWts = gllRule(ord)
	m.GLLPts, m.GLLWts = gllRule(ngll)

	offsets := make([]int, ord)
	for s := 0; s < ord; s++ {
		offsets[s] = s - hs
	}
	stenToCoefsDense, err := momentInverse(offsets)
	if err != nil {
		return nil, fmt.Errorf("swe: building sten_to_coefs: %w", err)
	}
	m.StenToCoefs = denseToSlice(stenToCoefsDense, ord, ord)

	m.CoefsToGLL = monomialEval(m.GLLPts, ord)
	m.CoefsToDerivGLL = monomialDerivEval(m.GLLPts, ord)
	m.StenToGLL = matMulSlices(m.StenToCoefs, m.CoefsToGLL)
	m.StenToDerivGLL = matMulSlices(m.StenToCoefs, m.CoefsToDerivGLL)

	m.DerivMatrix, err = buildDerivMatrix(m.GLLPts)
	if err != nil {
		return nil, fmt.Errorf("swe: building the ADER derivative matrix: %w", err)
	}

	if err := m.buildWeno(offsets); err != nil {
		return nil, err
	}

	return m, nil
}

// gllRule returns the n-point Gauss-Legendre-Lobatto nodes and weights
// on the unit cell [-1/2,1/2]. Interior nodes are found the way
// JacobiGL finds them (as the roots of a Jacobi(1,1) Gauss quadrature,
// via a symmetric tridiagonal eigendecomposition); weights use the
// standard closed-form Legendre-Gauss-Lobatto weight formula rather
// than the Gauss rule's own weights, since those two rules differ.
func gllRule(n int) (pts, wts []float64) {
	pts = make([]float64, n)
	if n == 1 {
		pts[0] = 0
		wts = []float64{1}
		return
	}
	pts[0], pts[n-1] = -1, 1
	if n > 2 {
		interior := jacobiGQNodes(1, 1, n-3)
		copy(pts[1:n-1], interior)
	}
	deg := n - 1
	wts = make([]float64, n)
	for i, x := range pts {
		p := legendreP(deg, x)
		wts[i] = 2.0 / (float64(deg) * float64(deg+1) * p * p)
	}
	// rescale from [-1,1] (weights sum to 2) to [-1/2,1/2] (sum to 1)
	for i := range pts {
		pts[i] /= 2
		wts[i] /= 2
	}
	return
}

// jacobiGQNodes returns the n+1 Gauss quadrature nodes of the Jacobi
// polynomial family (alpha,beta), found as the eigenvalues of the
// symmetric tridiagonal Jacobi matrix — the same construction
// DG1D/elements.go's JacobiGQ uses gonum/mat.EigenSym for.
func jacobiGQNodes(alpha, beta float64, n int) []float64 {
	if n < 0 {
		return nil
	}
	size := n + 1
	diag := make([]float64, size)
	offdiag := make([]float64, size-1)
	if alpha+beta != 0 {
		diag[0] = (beta - alpha) / (alpha + beta + 2)
	}
	for i := 1; i < size; i++ {
		fi := float64(i)
		if alpha+beta+2*fi != 0 {
			diag[i] = (beta*beta - alpha*alpha) / ((2*fi + alpha + beta) * (2*fi + alpha + beta + 2))
		}
	}
	for i := 0; i < size-1; i++ {
		fi := float64(i + 1)
		offdiag[i] = 2.0 / (2*fi + alpha + beta) * math.Sqrt(
			fi*(fi+alpha)*(fi+beta)*(fi+alpha+beta)/((2*fi+alpha+beta-1)*(2*fi+alpha+beta+1)))
	}
	sym := mat.NewSymDense(size, nil)
	for i := 0; i < size; i++ {
		sym.SetSym(i, i, diag[i])
		if i < size-1 {
			sym.SetSym(i, i+1, offdiag[i])
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		panic("swe: Jacobi matrix eigendecomposition failed")
	}
	vals := eig.Values(nil)
	out := append([]float64(nil), vals...)
	return out
}

// legendreP evaluates the degree-n Legendre polynomial at x via the
// standard three-term recurrence.
func legendreP(n int, x float64) float64 {
	if n == 0 {
		return 1
	}
	if n == 1 {
		return x
	}
	p0, p1 := 1.0, x
	for k := 2; k <= n; k++ {
		fk := float64(k)
		p2 := ((2*fk-1)*x*p1 - (fk-1)*p0) / fk
		p0, p1 = p1, p2
	}
	return p1
}

// momentInverse builds the (len(offsets) x len(offsets)) map that takes
// cell averages of a degree-(n-1) polynomial over unit cells centered
// at the given integer offsets, and returns monomial coefficients. It
// is the transpose inverse of the moment matrix A[s][m] = average of
// x^m over the cell at offsets[s].
func momentInverse(offsets []int) (*mat.Dense, error) {
	n := len(offsets)
	a := mat.NewDense(n, n, nil)
	for s, o := range offsets {
		lo, hi := float64(o)-0.5, float64(o)+0.5
		for m := 0; m < n; m++ {
			a.Set(s, m, (math.Pow(hi, float64(m+1))-math.Pow(lo, float64(m+1)))/float64(m+1))
		}
	}
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return nil, err
	}
	out := mat.NewDense(n, n, nil)
	out.CloneFrom(inv.T())
	return out, nil
}

// monomialEval returns the (n x len(pts)) map from degree-(n-1)
// monomial coefficients to values at pts.
func monomialEval(pts []float64, n int) [][]float64 {
	out := make([][]float64, n)
	for m := 0; m < n; m++ {
		out[m] = make([]float64, len(pts))
		for ii, x := range pts {
			out[m][ii] = math.Pow(x, float64(m))
		}
	}
	return out
}

// monomialDerivEval returns the (n x len(pts)) map from degree-(n-1)
// monomial coefficients to the value of their derivative at pts.
func monomialDerivEval(pts []float64, n int) [][]float64 {
	out := make([][]float64, n)
	out[0] = make([]float64, len(pts))
	for m := 1; m < n; m++ {
		out[m] = make([]float64, len(pts))
		for ii, x := range pts {
			out[m][ii] = float64(m) * math.Pow(x, float64(m-1))
		}
	}
	return out
}

// matMulSlices computes the composition of two [source][dest]-
// convention maps: a is (p x q), b is (q x r), result is (p x r) with
// result[i][k] = sum_j a[i][j] * b[j][k].
func matMulSlices(a, b [][]float64) [][]float64 {
	p, q := len(a), len(a[0])
	r := len(b[0])
	out := make([][]float64, p)
	for i := 0; i < p; i++ {
		out[i] = make([]float64, r)
		for k := 0; k < r; k++ {
			var sum float64
			for j := 0; j < q; j++ {
				sum += a[i][j] * b[j][k]
			}
			out[i][k] = sum
		}
	}
	return out
}

func denseToSlice(d *mat.Dense, r, c int) [][]float64 {
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = d.At(i, j)
		}
	}
	return out
}

// buildDerivMatrix builds the NGLLxNGLL nodal differentiation matrix
// D such that dv[ii] = sum_s D[s][ii]*v[s] differentiates a function
// sampled at the GLL nodes pts, via the classic
// evaluate -> differentiate-in-coefficient-space -> evaluate roundtrip.
func buildDerivMatrix(pts []float64) ([][]float64, error) {
	n := len(pts)
	vand := mat.NewDense(n, n, nil)
	for ii, x := range pts {
		for m := 0; m < n; m++ {
			vand.Set(ii, m, math.Pow(x, float64(m)))
		}
	}
	var vinv mat.Dense
	if err := vinv.Inverse(vand); err != nil {
		return nil, err
	}
	shift := mat.NewDense(n, n, nil)
	for m := 1; m < n; m++ {
		shift.Set(m-1, m, float64(m))
	}
	var tmp, d mat.Dense
	tmp.Mul(vand, shift)
	d.Mul(&tmp, &vinv)
	// d is the (value -> derivative-value) map in standard row-applies-
	// to-column convention; transpose it into this package's
	// [source][dest] convention.
	out := make([][]float64, n)
	for s := 0; s < n; s++ {
		out[s] = make([]float64, n)
		for ii := 0; ii < n; ii++ {
			out[s][ii] = d.At(ii, s)
		}
	}
	return out, nil
}

// buildWeno constructs the HS+2 candidate stencil-to-coefficient maps
// (HS+1 low-order overlapping substencils of width HS+1, plus the full
// high-order stencil) and solves for the ideal linear weights that
// recombine them into the full stencil's map.
func (m *Matrices) buildWeno(offsets []int) error {
	hs, ord := m.HS, m.Ord
	nCand := hs + 2
	m.WenoStenToCoefs = make([][][]float64, nCand)

	for k := 0; k <= hs; k++ {
		sub := offsets[k : k+hs+1]
		subMap, err := momentInverse(sub)
		if err != nil {
			return fmt.Errorf("swe: building weno substencil %d: %w", k, err)
		}
		full := make([][]float64, ord)
		for s := 0; s < ord; s++ {
			full[s] = make([]float64, ord)
		}
		for s := 0; s <= hs; s++ {
			for c := 0; c <= hs; c++ {
				full[k+s][c] = subMap.At(s, c)
			}
		}
		m.WenoStenToCoefs[k] = full
	}
	m.WenoStenToCoefs[hs+1] = m.StenToCoefs

	// Solve sum_k idl[k] * WenoStenToCoefs[k] = StenToCoefs (elementwise,
	// flattened) for the hs+2 ideal weights via least squares.
	rows := ord * ord
	design := mat.NewDense(rows, nCand, nil)
	target := mat.NewVecDense(rows, nil)
	for k := 0; k < nCand; k++ {
		for s := 0; s < ord; s++ {
			for c := 0; c < ord; c++ {
				design.Set(s*ord+c, k, m.WenoStenToCoefs[k][s][c])
			}
		}
	}
	for s := 0; s < ord; s++ {
		for c := 0; c < ord; c++ {
			target.SetVec(s*ord+c, m.StenToCoefs[s][c])
		}
	}
	var idl mat.VecDense
	if err := idl.SolveVec(design, target); err != nil {
		return fmt.Errorf("swe: solving for WENO ideal weights: %w", err)
	}
	m.Idl = make([]float64, nCand)
	for k := 0; k < nCand; k++ {
		m.Idl[k] = idl.AtVec(k)
	}
	return nil
}

// applyVec computes d[j] = sum_i mat[i][j] * s[i].
func applyVec(m [][]float64, s []float64) []float64 {
	if len(m) == 0 {
		return nil
	}
	out := make([]float64, len(m[0]))
	for i, row := range m {
		si := s[i]
		if si == 0 {
			continue
		}
		for j, v := range row {
			out[j] += v * si
		}
	}
	return out
}
