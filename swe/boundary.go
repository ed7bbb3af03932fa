package swe

// applyStateHalosX fills the hs ghost columns on each side of the grid
// from the interior, according to the X boundary condition. Wall and
// open conditions extrapolate the nearest interior cell (wall also
// zeroes the normal velocity U); periodic wraps around the grid.
func (sp *Spatial) applyStateHalosX(state *Tensor) {
	hs, ny, nx := sp.hs(), sp.Dom.Ny, sp.Dom.Nx
	for l := 0; l < numState; l++ {
		for j := 0; j < ny; j++ {
			for ii := 0; ii < hs; ii++ {
				switch sp.Dom.BCx {
				case BCPeriodic:
					state.Set(state.At(l, hs+j, nx+ii), l, hs+j, ii)
					state.Set(state.At(l, hs+j, hs+ii), l, hs+j, nx+hs+ii)
				default: // wall, open
					lo := state.At(l, hs+j, hs)
					hi := state.At(l, hs+j, hs+nx-1)
					if sp.Dom.BCx == BCWall && l == idU {
						lo, hi = 0, 0
					}
					state.Set(lo, l, hs+j, ii)
					state.Set(hi, l, hs+j, nx+hs+ii)
				}
			}
		}
	}
}

// applyStateHalosY is applyStateHalosX's transpose: it fills the hs
// ghost rows above and below the grid, zeroing V at a wall.
func (sp *Spatial) applyStateHalosY(state *Tensor) {
	hs, ny, nx := sp.hs(), sp.Dom.Ny, sp.Dom.Nx
	for l := 0; l < numState; l++ {
		for i := 0; i < nx; i++ {
			for jj := 0; jj < hs; jj++ {
				switch sp.Dom.BCy {
				case BCPeriodic:
					state.Set(state.At(l, ny+jj, hs+i), l, jj, hs+i)
					state.Set(state.At(l, hs+jj, hs+i), l, ny+hs+jj, hs+i)
				default:
					lo := state.At(l, hs, hs+i)
					hi := state.At(l, hs+ny-1, hs+i)
					if sp.Dom.BCy == BCWall && l == idV {
						lo, hi = 0, 0
					}
					state.Set(lo, l, jj, hs+i)
					state.Set(hi, l, ny+hs+jj, hs+i)
				}
			}
		}
	}
}

// applyBathymetryHalosX/Y extend the bathymetry into the ghost cells
// the same way the state halos are extended, minus any velocity
// zeroing (bathymetry has no velocity component). These run once, at
// initialization, since bathymetry is static.
func (sp *Spatial) applyBathymetryHalosX() {
	hs, ny, nx := sp.hs(), sp.Dom.Ny, sp.Dom.Nx
	for j := 0; j < ny; j++ {
		for ii := 0; ii < hs; ii++ {
			switch sp.Dom.BCx {
			case BCPeriodic:
				sp.bath.Set(sp.bath.At(hs+j, nx+ii), hs+j, ii)
				sp.bath.Set(sp.bath.At(hs+j, hs+ii), hs+j, nx+hs+ii)
			default:
				sp.bath.Set(sp.bath.At(hs+j, hs), hs+j, ii)
				sp.bath.Set(sp.bath.At(hs+j, hs+nx-1), hs+j, nx+hs+ii)
			}
		}
	}
}

func (sp *Spatial) applyBathymetryHalosY() {
	hs, ny, nx := sp.hs(), sp.Dom.Ny, sp.Dom.Nx
	for i := 0; i < nx; i++ {
		for jj := 0; jj < hs; jj++ {
			switch sp.Dom.BCy {
			case BCPeriodic:
				sp.bath.Set(sp.bath.At(ny+jj, hs+i), jj, hs+i)
				sp.bath.Set(sp.bath.At(hs+jj, hs+i), ny+hs+jj, hs+i)
			default:
				sp.bath.Set(sp.bath.At(hs, hs+i), jj, hs+i)
				sp.bath.Set(sp.bath.At(hs+ny-1, hs+i), ny+hs+jj, hs+i)
			}
		}
	}
}

// applyEdgeBoundaryX fixes up the two fwaves/surf_limits columns that
// lie on the domain's left and right physical edges, after every
// interior edge has been filled by the ADER reconstruction but before
// the Riemann solve reads them. Wall and open conditions reflect the
// edge value back on itself (wall also zeroes U); periodic wraps the
// two physical edges onto each other.
func (sp *Spatial) applyEdgeBoundaryX(ny, nx int) {
	for j := 0; j < ny; j++ {
		switch sp.Dom.BCx {
		case BCPeriodic:
			for l := 0; l < numState; l++ {
				sp.fw.Set(sp.fw.At(l, 0, j, nx), l, 0, j, 0)
				sp.fw.Set(sp.fw.At(l, 1, j, 0), l, 1, j, nx)
			}
			sp.surf.Set(sp.surf.At(0, j, nx), 0, j, 0)
			sp.surf.Set(sp.surf.At(1, j, 0), 1, j, nx)
		default:
			for l := 0; l < numState; l++ {
				v0, v1 := sp.fw.At(l, 1, j, 0), sp.fw.At(l, 0, j, nx)
				if sp.Dom.BCx == BCWall && l == idU {
					v0, v1 = 0, 0
				}
				sp.fw.Set(v0, l, 0, j, 0)
				sp.fw.Set(v1, l, 1, j, nx)
			}
			sp.surf.Set(sp.surf.At(1, j, 0), 0, j, 0)
			sp.surf.Set(sp.surf.At(0, j, nx), 1, j, nx)
		}
	}
}

// applyEdgeBoundaryY is applyEdgeBoundaryX's transpose, fixing up the
// top and bottom physical edges and zeroing V at a wall.
func (sp *Spatial) applyEdgeBoundaryY(ny, nx int) {
	for i := 0; i < nx; i++ {
		switch sp.Dom.BCy {
		case BCPeriodic:
			for l := 0; l < numState; l++ {
				sp.fw.Set(sp.fw.At(l, 0, ny, i), l, 0, 0, i)
				sp.fw.Set(sp.fw.At(l, 1, 0, i), l, 1, ny, i)
			}
			sp.surf.Set(sp.surf.At(0, ny, i), 0, 0, i)
			sp.surf.Set(sp.surf.At(1, 0, i), 1, ny, i)
		default:
			for l := 0; l < numState; l++ {
				v0, v1 := sp.fw.At(l, 1, 0, i), sp.fw.At(l, 0, ny, i)
				if sp.Dom.BCy == BCWall && l == idV {
					v0, v1 = 0, 0
				}
				sp.fw.Set(v0, l, 0, 0, i)
				sp.fw.Set(v1, l, 1, ny, i)
			}
			sp.surf.Set(sp.surf.At(1, 0, i), 0, 0, i)
			sp.surf.Set(sp.surf.At(0, ny, i), 1, ny, i)
		}
	}
}
