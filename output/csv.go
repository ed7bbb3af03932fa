package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/notargets/gocfd-swe/swe"
)

// CSVSink writes the grid once, to a companion file named after path
// with ".grid" inserted before its extension ("out.csv" ->
// "out.grid.csv"), holding (j,i,x,y,bath), and one frame row per
// (frame, cell) to path itself:
// etime,j,i,H,U,V,surface. It is the default sink, grounded on the
// plain encoding/csv use the rest of the pack reaches for when no
// richer output format is wired (this module never implements the
// original's NetCDF output; see DESIGN.md).
type CSVSink struct {
	f        *os.File
	w        *csv.Writer
	gridPath string
}

func NewCSVSink(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("output: creating %q: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"etime", "j", "i", "H", "U", "V", "surface"}); err != nil {
		f.Close()
		return nil, err
	}
	ext := filepath.Ext(path)
	gridPath := strings.TrimSuffix(path, ext) + ".grid" + ext
	return &CSVSink{f: f, w: w, gridPath: gridPath}, nil
}

func (s *CSVSink) WriteGrid(sp *swe.Spatial) error {
	gf, err := os.Create(s.gridPath)
	if err != nil {
		return fmt.Errorf("output: creating %q: %w", s.gridPath, err)
	}
	defer gf.Close()
	gw := csv.NewWriter(gf)
	if err := gw.Write([]string{"j", "i", "x", "y", "bath"}); err != nil {
		return err
	}
	hs := sp.Cfg.HalfStencil()
	dx, dy := sp.Dom.Dx(), sp.Dom.Dy()
	for j := 0; j < sp.Dom.Ny; j++ {
		y := (float64(j) + 0.5) * dy
		for i := 0; i < sp.Dom.Nx; i++ {
			x := (float64(i) + 0.5) * dx
			row := []string{
				fmt.Sprintf("%d", j),
				fmt.Sprintf("%d", i),
				fmt.Sprintf("%g", x),
				fmt.Sprintf("%g", y),
				fmt.Sprintf("%g", sp.Bathymetry(hs+j, hs+i)),
			}
			if err := gw.Write(row); err != nil {
				return err
			}
		}
	}
	gw.Flush()
	return gw.Error()
}

func (s *CSVSink) WriteFrame(sp *swe.Spatial, state *swe.Tensor, etime float64) error {
	hs := sp.Cfg.HalfStencil()
	for j := 0; j < sp.Dom.Ny; j++ {
		for i := 0; i < sp.Dom.Nx; i++ {
			h := state.At(swe.IdxH, hs+j, hs+i)
			row := []string{
				fmt.Sprintf("%g", etime),
				fmt.Sprintf("%d", j),
				fmt.Sprintf("%d", i),
				fmt.Sprintf("%g", h),
				fmt.Sprintf("%g", state.At(swe.IdxU, hs+j, hs+i)),
				fmt.Sprintf("%g", state.At(swe.IdxV, hs+j, hs+i)),
				fmt.Sprintf("%g", h+sp.Bathymetry(hs+j, hs+i)),
			}
			if err := s.w.Write(row); err != nil {
				return err
			}
		}
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *CSVSink) Close() error {
	s.w.Flush()
	return s.f.Close()
}
