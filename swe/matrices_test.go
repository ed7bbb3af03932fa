package swe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func near(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < tol
}

func TestGLLWeightsSumToOne(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7} {
		pts, wts := gllRule(n)
		assert.Equal(t, n, len(pts))
		var sum float64
		for _, w := range wts {
			sum += w
		}
		assert.True(t, near(sum, 1, 1e-10), "n=%d sum=%v", n, sum)
	}
	pts, _ := gllRule(5)
	assert.True(t, near(pts[0], -0.5, 1e-10))
	assert.True(t, near(pts[4], 0.5, 1e-10))
}

func TestStenToCoefsReproducesConstant(t *testing.T) {
	m, err := BuildMatrices(5, 3)
	assert.NoError(t, err)

	stencil := []float64{2, 2, 2, 2, 2}
	coefs := applyVec(m.StenToCoefs, stencil)
	assert.True(t, near(coefs[0], 2, 1e-9))
	for _, c := range coefs[1:] {
		assert.True(t, near(c, 0, 1e-9))
	}
}

func TestStenToGLLReproducesLinearRamp(t *testing.T) {
	m, err := BuildMatrices(5, 4)
	assert.NoError(t, err)
	// Cell averages of f(x)=x over cells centered at -2..2 equal their
	// own offsets exactly, so the reconstructed GLL values should equal
	// the GLL points themselves (the stencil is exactly linear).
	stencil := []float64{-2, -1, 0, 1, 2}
	vals := applyVec(m.StenToGLL, stencil)
	for i, x := range m.GLLPts {
		assert.True(t, near(vals[i], x, 1e-9), "i=%d x=%v val=%v", i, x, vals[i])
	}
}

func TestWenoIdealWeightsSumToOne(t *testing.T) {
	m, err := BuildMatrices(5, 3)
	assert.NoError(t, err)
	var sum float64
	for _, w := range m.Idl {
		sum += w
	}
	assert.True(t, near(sum, 1, 1e-8), "idl sum=%v", sum)
	for _, w := range m.Idl {
		assert.True(t, w > 0, "ideal weight should be positive, got %v", w)
	}
}

func TestWenoRecoversFullStencilOnSmoothData(t *testing.T) {
	m, err := BuildMatrices(5, 3)
	assert.NoError(t, err)
	// A genuinely degree-4 polynomial's cell averages: f(x)=x^4 exactly.
	offsets := []float64{-2, -1, 0, 1, 2}
	stencil := make([]float64, 5)
	for i, o := range offsets {
		lo, hi := o-0.5, o+0.5
		stencil[i] = (hi*hi*hi*hi*hi - lo*lo*lo*lo*lo) / 5
	}
	direct := applyVec(m.StenToCoefs, stencil)
	weno := m.ComputeWenoCoefs(stencil)
	for i := range direct {
		assert.True(t, near(direct[i], weno[i], 1e-6), "coef %d: direct=%v weno=%v", i, direct[i], weno[i])
	}
}

func TestDerivMatrixDifferentiatesQuadratic(t *testing.T) {
	m, err := BuildMatrices(5, 5)
	assert.NoError(t, err)
	vals := make([]float64, len(m.GLLPts))
	want := make([]float64, len(m.GLLPts))
	for i, x := range m.GLLPts {
		vals[i] = x * x
		want[i] = 2 * x
	}
	got := applyVec(m.DerivMatrix, vals)
	for i := range got {
		assert.True(t, near(got[i], want[i], 1e-9), "i=%d got=%v want=%v", i, got[i], want[i])
	}
}

func TestBuildMatricesRejectsEvenOrd(t *testing.T) {
	_, err := BuildMatrices(4, 3)
	assert.Error(t, err)
}
