package swe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSpatial(t *testing.T, dom Domain, cfg Config) *Spatial {
	t.Helper()
	sp, err := NewSpatial(cfg, dom)
	assert.NoError(t, err)
	return sp
}

func runSteps(sp *Spatial, state *Tensor, dt float64, nSteps int) {
	for s := 0; s < nSteps; s++ {
		tend := sp.CreateTendency()
		for k := 0; k < sp.NumSplit(); k++ {
			sp.ComputeTendencies(state, tend, k, dt)
			if err := ApplyForwardEuler(sp, state, tend, dt); err != nil {
				panic(err)
			}
		}
		sp.EndStep()
	}
}

func TestNumSplitAndDirectionAlternation(t *testing.T) {
	sp := newTestSpatial(t, Domain{Nx: 10, Ny: 10, XLen: 1, YLen: 1, BCx: BCWall, BCy: BCWall, Profile: ProfileDam},
		Config{Ord: 5, NGLL: 3, NAder: 2, TimeAvg: true})
	assert.Equal(t, 2, sp.NumSplit())
	assert.Equal(t, DirX, sp.SplitDirection(0))
	assert.Equal(t, DirY, sp.SplitDirection(1))
	sp.EndStep()
	assert.Equal(t, DirY, sp.SplitDirection(0))
	assert.Equal(t, DirX, sp.SplitDirection(1))
}

func TestSim1DAlwaysSplitsXThenZeroesY(t *testing.T) {
	sp := newTestSpatial(t, Domain{Nx: 10, Ny: 1, XLen: 1, YLen: 1, BCx: BCWall, BCy: BCWall, Profile: ProfileDamRect1D, Sim1D: true},
		Config{Ord: 5, NGLL: 3, NAder: 2, TimeAvg: true})
	assert.Equal(t, 2, sp.NumSplit())
	assert.Equal(t, DirX, sp.SplitDirection(0))
	assert.Equal(t, DirY, sp.SplitDirection(1))

	state := sp.CreateState()
	assert.NoError(t, sp.InitState(state))
	dt := sp.ComputeTimeStep(state, 0.3)

	tend := sp.CreateTendency()
	sp.ComputeTendencies(state, tend, 1, dt)
	for i := 0; i < sp.Dom.Nx; i++ {
		for l := 0; l < numState; l++ {
			assert.Equal(t, 0.0, tend.At(l, 0, i))
		}
	}
}

func TestLakeAtRestStaysAtRest(t *testing.T) {
	dom := Domain{Nx: 40, Ny: 1, XLen: 2, YLen: 1, BCx: BCWall, BCy: BCWall, Profile: ProfileLakeAtRestPert1D, Sim1D: true}
	cfg := Config{Ord: 5, NGLL: 3, NAder: 2, TimeAvg: true}
	sp := newTestSpatial(t, dom, cfg)
	state := sp.CreateState()
	assert.NoError(t, sp.InitState(state))

	// Flatten the perturbation so only the lake-at-rest bathymetry bump
	// remains: H+b constant everywhere, U=V=0.
	hs := sp.hs()
	for i := 0; i < dom.Nx; i++ {
		b := sp.bath.At(hs, hs+i)
		state.Set(1-b, idH, hs, hs+i)
		state.Set(0, idU, hs, hs+i)
	}

	dt := sp.ComputeTimeStep(state, 0.3)
	runSteps(sp, state, dt, 5)

	for i := 0; i < dom.Nx; i++ {
		h := state.At(idH, hs, hs+i)
		b := sp.bath.At(hs, hs+i)
		assert.True(t, near(h+b, 1, 1e-6), "i=%d surface=%v", i, h+b)
		assert.True(t, near(state.At(idU, hs, hs+i), 0, 1e-6))
	}
}

func TestDamBreakStaysPositiveAndFinite(t *testing.T) {
	dom := Domain{Nx: 30, Ny: 30, XLen: 1, YLen: 1, BCx: BCWall, BCy: BCWall, Profile: ProfileDam}
	cfg := Config{Ord: 5, NGLL: 3, NAder: 2, TimeAvg: true, CheckMode: true}
	sp := newTestSpatial(t, dom, cfg)
	state := sp.CreateState()
	assert.NoError(t, sp.InitState(state))

	dt := sp.ComputeTimeStep(state, 0.3)
	runSteps(sp, state, dt, 10)

	hs := sp.hs()
	for j := 0; j < dom.Ny; j++ {
		for i := 0; i < dom.Nx; i++ {
			for l := 0; l < numState; l++ {
				v := state.At(l, hs+j, hs+i)
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
			}
			assert.True(t, state.At(idH, hs+j, hs+i) > 0)
		}
	}
}

func TestPeriodicBCConservesMass(t *testing.T) {
	dom := Domain{Nx: 24, Ny: 24, XLen: 1, YLen: 1, BCx: BCPeriodic, BCy: BCPeriodic, Profile: ProfileDam}
	cfg := Config{Ord: 5, NGLL: 3, NAder: 2, TimeAvg: true}
	sp := newTestSpatial(t, dom, cfg)
	state := sp.CreateState()
	assert.NoError(t, sp.InitState(state))

	dt := sp.ComputeTimeStep(state, 0.3)
	runSteps(sp, state, dt, 15)

	assert.True(t, near(sp.Finalize(state), 0, 1e-6), "mass drift=%v", sp.Finalize(state))
}

func TestComputeTimeStepGrowsWithHigherCFL(t *testing.T) {
	dom := Domain{Nx: 20, Ny: 20, XLen: 1, YLen: 1, BCx: BCWall, BCy: BCWall, Profile: ProfileDam}
	cfg := Config{Ord: 5, NGLL: 3, NAder: 2, TimeAvg: true}
	sp := newTestSpatial(t, dom, cfg)
	state := sp.CreateState()
	assert.NoError(t, sp.InitState(state))

	dtLo := sp.ComputeTimeStep(state, 0.2)
	dtHi := sp.ComputeTimeStep(state, 0.8)
	assert.True(t, dtHi > dtLo)
}

// TestDimensionalSplitPreservesXYSymmetry checks the split-sweep
// symmetry at the level it actually holds exactly: the X-sweep and
// Y-sweep kernels are each other's x<->y, u<->v conjugate, so applied
// independently to the same x<->y-symmetric starting state (same bath,
// same bc_x=bc_y), their tendencies must be exact conjugates of one
// another too. Checking this after a sequential X-then-Y full step
// would not hold to round-off — dimensional splitting of a nonlinear
// system is only first-order accurate in dt per step, and dimSwitch's
// alternation is what controls that error across steps, not within
// one — so the two sweeps are compared independently from a common
// starting state instead.
func TestDimensionalSplitPreservesXYSymmetry(t *testing.T) {
	dom := Domain{Nx: 16, Ny: 16, XLen: 1, YLen: 1, BCx: BCWall, BCy: BCWall, Profile: ProfileDam}
	cfg := Config{Ord: 5, NGLL: 3, NAder: 2, TimeAvg: true}
	sp := newTestSpatial(t, dom, cfg)
	state := sp.CreateState()
	assert.NoError(t, sp.InitState(state))

	hs := sp.hs()
	for j := 0; j < dom.Ny; j++ {
		for i := 0; i < dom.Nx; i++ {
			assert.True(t, near(state.At(idH, hs+j, hs+i), state.At(idH, hs+i, hs+j), 1e-12))
		}
	}

	dt := sp.ComputeTimeStep(state, 0.3)

	stateX := state.Clone()
	tendX := sp.CreateTendency()
	sp.ComputeTendencies(stateX, tendX, 0, dt) // dimSwitch starts false: index 0 is DirX

	stateY := state.Clone()
	tendY := sp.CreateTendency()
	sp.ComputeTendencies(stateY, tendY, 1, dt) // index 1 is DirY

	for j := 0; j < dom.Ny; j++ {
		for i := 0; i < dom.Nx; i++ {
			assert.True(t, near(tendX.At(idH, j, i), tendY.At(idH, i, j), 1e-10),
				"tend(H) not x<->y conjugate at (j=%d,i=%d)", j, i)
			assert.True(t, near(tendX.At(idU, j, i), tendY.At(idV, i, j), 1e-10),
				"tend(U)(j,i) != tend(V)(i,j) at (j=%d,i=%d)", j, i)
			assert.True(t, near(tendX.At(idV, j, i), tendY.At(idU, i, j), 1e-10),
				"tend(V)(j,i) != tend(U)(i,j) at (j=%d,i=%d)", j, i)
		}
	}
}

func TestCheckModeRejectsNonPositiveDepth(t *testing.T) {
	dom := Domain{Nx: 5, Ny: 1, XLen: 1, YLen: 1, BCx: BCWall, BCy: BCWall, Profile: ProfileDamRect1D, Sim1D: true}
	cfg := Config{Ord: 5, NGLL: 3, NAder: 1, CheckMode: true}
	sp := newTestSpatial(t, dom, cfg)
	state := sp.CreateState()
	assert.NoError(t, sp.InitState(state))

	tend := sp.CreateTendency()
	for i := 0; i < dom.Nx; i++ {
		tend.Set(-1000, idH, 0, i)
	}
	err := sp.ApplyTendencies(state, tend, func(l, j, i int, cur, t float64) float64 { return cur + t })
	assert.Error(t, err)
}
