package swe

import (
	"fmt"
	"strings"
)

// Config holds the parameters that size the reconstruction and time
// integration machinery: the WENO stencil width, the number of GLL
// quadrature/output points per cell, and the ADER order. These are
// fixed for the lifetime of a Spatial and determine the shapes of every
// transform matrix it builds.
type Config struct {
	Ord       int  // stencil width; must be odd
	NGLL      int  // number of GLL points used for sub-cell quadrature/output
	NAder     int  // number of ADER-CK Taylor-series terms (1 disables the recurrence)
	TimeAvg   bool // average the ADER Taylor series over the step instead of using t=0
	DoWeno    bool // reconstruct with WENO weighting instead of the plain high-order stencil
	CheckMode bool // validate H>0 and finiteness after every ApplyTendencies
}

// HalfStencil returns the stencil half-width implied by Ord.
func (c Config) HalfStencil() int { return (c.Ord - 1) / 2 }

// BCKind names the boundary treatment applied at a domain edge.
type BCKind int

const (
	BCWall BCKind = iota
	BCPeriodic
	BCOpen
)

func (k BCKind) String() string {
	switch k {
	case BCWall:
		return "wall"
	case BCPeriodic:
		return "periodic"
	case BCOpen:
		return "open"
	default:
		return "unknown"
	}
}

// ParseBCKind translates a configuration string into a BCKind, failing
// loudly (rather than defaulting) on anything unrecognised.
func ParseBCKind(s string) (BCKind, error) {
	switch s {
	case "wall":
		return BCWall, nil
	case "periodic":
		return BCPeriodic, nil
	case "open":
		return BCOpen, nil
	default:
		return 0, fmt.Errorf("unrecognised boundary condition %q (want wall, periodic, or open)", s)
	}
}

// InitProfile selects one of the built-in initial conditions.
type InitProfile int

const (
	ProfileDam InitProfile = iota
	ProfileLakeAtRestPert1D
	ProfileDamRect1D
	ProfileLakeAtRestPert2D
)

// Is1D reports whether the profile is meaningful only on a ny=1 grid.
func (p InitProfile) Is1D() bool {
	return p == ProfileLakeAtRestPert1D || p == ProfileDamRect1D
}

func (p InitProfile) String() string {
	switch p {
	case ProfileDam:
		return "dam"
	case ProfileLakeAtRestPert1D:
		return "lake_at_rest_pert_1d"
	case ProfileDamRect1D:
		return "dam_rect_1d"
	case ProfileLakeAtRestPert2D:
		return "lake_at_rest_pert_2d"
	default:
		return "unknown"
	}
}

// ParseInitProfile translates a configuration string into an
// InitProfile. The match is case-insensitive so "dam" and "DAM" both
// resolve, but String always renders the lowercase form.
func ParseInitProfile(s string) (InitProfile, error) {
	switch strings.ToLower(s) {
	case "dam":
		return ProfileDam, nil
	case "lake_at_rest_pert_1d":
		return ProfileLakeAtRestPert1D, nil
	case "dam_rect_1d":
		return ProfileDamRect1D, nil
	case "lake_at_rest_pert_2d":
		return ProfileLakeAtRestPert2D, nil
	default:
		return 0, fmt.Errorf("unrecognised initData profile %q", s)
	}
}

// Domain holds the runtime grid description: its resolution, physical
// extent, boundary conditions and initial profile. Unlike Config, these
// may vary from run to run without touching the reconstruction
// machinery.
type Domain struct {
	Nx, Ny   int
	XLen     float64
	YLen     float64
	BCx, BCy BCKind
	Profile  InitProfile
	Sim1D    bool
	G        float64 // gravitational constant
}

func (d Domain) Dx() float64 { return d.XLen / float64(d.Nx) }
func (d Domain) Dy() float64 { return d.YLen / float64(d.Ny) }

// DefaultGravity returns the gravitational constant a profile uses when
// the configuration file doesn't set one explicitly: 1.0 for the
// unit-scaled 2-D dam break, 9.81 for every other catalogue profile.
func DefaultGravity(p InitProfile) float64 {
	if p == ProfileDam {
		return 1.0
	}
	return 9.81
}

const (
	idH = 0
	idU = 1
	idV = 2

	numState = 3
)

// IdxH, IdxU and IdxV are the state array's variable-axis indices,
// exported so callers outside this package (output sinks, the driver)
// can read a Tensor's H/U/V planes without reaching into unexported
// constants.
const (
	IdxH = idH
	IdxU = idU
	IdxV = idV
)
