package swe

import (
	"fmt"
	"log"
	"math"
	"runtime"
)

// Direction names one of the two operator-split sweep directions.
type Direction int

const (
	DirX Direction = iota
	DirY
)

// Spatial orchestrates the shallow-water solver over a fixed grid: it
// owns the precomputed transform matrices, the bathymetry and the
// scratch edge-value arrays the ADER/Riemann/boundary stages share, and
// exposes the operations cmd/run.go's time-stepping loop drives.
type Spatial struct {
	Cfg Config
	Dom Domain
	M   *Matrices

	bath *Tensor // (ny+2hs, nx+2hs)
	fw   *Tensor // (numState, 2, max(ny,nx)+1, max(nx,ny)+1)
	surf *Tensor // (2, max(ny,nx)+1, max(nx,ny)+1)

	dimSwitch   bool
	Parallelism int
	initMass    float64
	gridWritten map[OutputSink]bool
}

// NewSpatial validates cfg/dom, builds the transform matrices and
// allocates the bathymetry and edge-value scratch arrays.
func NewSpatial(cfg Config, dom Domain) (*Spatial, error) {
	m, err := BuildMatrices(cfg.Ord, cfg.NGLL)
	if err != nil {
		return nil, err
	}
	hs := cfg.HalfStencil()
	if dom.Nx < hs+1 {
		return nil, fmt.Errorf("swe: nx=%d too small for stencil half-width %d", dom.Nx, hs)
	}
	if !dom.Sim1D && dom.Ny < hs+1 {
		return nil, fmt.Errorf("swe: ny=%d too small for stencil half-width %d", dom.Ny, hs)
	}

	edge := dom.Nx
	if dom.Ny > edge {
		edge = dom.Ny
	}
	edge++

	if dom.G <= 0 {
		dom.G = DefaultGravity(dom.Profile)
	}

	sp := &Spatial{
		Cfg:         cfg,
		Dom:         dom,
		M:           m,
		bath:        NewTensor(dom.Ny+2*hs, dom.Nx+2*hs),
		fw:          NewTensor(numState, 2, edge, edge),
		surf:        NewTensor(2, edge, edge),
		Parallelism: runtime.GOMAXPROCS(0),
	}
	log.Printf("swe: %s", sp.Name())
	return sp, nil
}

func (sp *Spatial) hs() int { return sp.Cfg.HalfStencil() }

// Name returns a one-line description of the resolved grid, boundary
// conditions and initial profile, logged once at startup.
func (sp *Spatial) Name() string {
	return fmt.Sprintf("%dx%d grid, bc=(%s,%s), profile=%s, g=%g",
		sp.Dom.Nx, sp.Dom.Ny, sp.Dom.BCx, sp.Dom.BCy, sp.Dom.Profile, sp.Dom.G)
}

// CreateState allocates a state array sized for this grid, including
// halo cells.
func (sp *Spatial) CreateState() *Tensor {
	hs := sp.hs()
	return NewTensor(numState, sp.Dom.Ny+2*hs, sp.Dom.Nx+2*hs)
}

// CreateTendency allocates a tendency array sized for this grid's
// interior cells.
func (sp *Spatial) CreateTendency() *Tensor {
	return NewTensor(numState, sp.Dom.Ny, sp.Dom.Nx)
}

// NumSplit returns the number of dimensional-splitting sub-steps a
// full time step takes: always 2 (X and Y, in alternating order across
// successive full steps), matching the unconditional X/Y split of the
// original even in 1-D, where the Y sub-step's tendency is identically
// zero rather than omitted.
func (sp *Spatial) NumSplit() int { return 2 }

// SplitDirection returns the sweep direction for the splitIndex-th
// sub-step of the current full step, honoring the alternating
// dimSwitch order. In 1-D the order is fixed (X then Y) since the Y
// sub-step is a no-op and alternation has nothing to affect.
func (sp *Spatial) SplitDirection(splitIndex int) Direction {
	if sp.Dom.Sim1D {
		return [2]Direction{DirX, DirY}[splitIndex]
	}
	order := [2]Direction{DirX, DirY}
	if sp.dimSwitch {
		order = [2]Direction{DirY, DirX}
	}
	return order[splitIndex]
}

// EndStep toggles the dimensional-splitting order for the next full
// time step. The driver calls this once per full step, not once per
// sub-step.
func (sp *Spatial) EndStep() {
	if !sp.Dom.Sim1D {
		sp.dimSwitch = !sp.dimSwitch
	}
}

// ComputeTendencies fills tend with the splitIndex-th sub-step's
// tendency, reading state (with its halo) and dt (used for ADER's
// optional time-averaging). In 1-D the Y sub-step has nothing to
// reconstruct against (no Y halo), so its tendency is zeroed rather
// than run through the Y-sweep machinery.
func (sp *Spatial) ComputeTendencies(state, tend *Tensor, splitIndex int, dt float64) {
	switch sp.SplitDirection(splitIndex) {
	case DirX:
		sp.computeTendenciesX(state, tend, dt)
	case DirY:
		if sp.Dom.Sim1D {
			tend.Zero()
			return
		}
		sp.computeTendenciesY(state, tend, dt)
	}
}

// ApplyTendencies advances every interior state cell by calling apply
// with its current value and computed tendency; apply decides how to
// combine them (forward Euler, an SSP-RK3 stage, ...), which keeps
// time-integration policy out of this package. When Cfg.CheckMode is
// set, it returns an error naming the first cell where H becomes
// non-positive or non-finite.
func (sp *Spatial) ApplyTendencies(state, tend *Tensor, apply func(l, j, i int, cur, tendVal float64) float64) error {
	hs := sp.hs()
	ny, nx := sp.Dom.Ny, sp.Dom.Nx
	parallelFor(numState, sp.Parallelism, func(l int) {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				cur := state.At(l, hs+j, hs+i)
				nv := apply(l, j, i, cur, tend.At(l, j, i))
				state.Set(nv, l, hs+j, hs+i)
			}
		}
	})
	if sp.Cfg.CheckMode {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				h := state.At(idH, hs+j, hs+i)
				if !(h > 0) || math.IsNaN(h) || math.IsInf(h, 0) {
					return fmt.Errorf("swe: invalid depth H=%g at (j=%d,i=%d)", h, j, i)
				}
				for l := 0; l < numState; l++ {
					v := state.At(l, hs+j, hs+i)
					if math.IsNaN(v) || math.IsInf(v, 0) {
						return fmt.Errorf("swe: non-finite state[%d]=%g at (j=%d,i=%d)", l, v, j, i)
					}
				}
			}
		}
	}
	return nil
}

// ApplyForwardEuler is the plain apply policy: state += dt*tend.
func ApplyForwardEuler(sp *Spatial, state, tend *Tensor, dt float64) error {
	return sp.ApplyTendencies(state, tend, func(l, j, i int, cur, t float64) float64 {
		return cur + dt*t
	})
}
