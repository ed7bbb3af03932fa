package output

import (
	"sync"

	"github.com/notargets/avs/chart2d"
	avsutils "github.com/notargets/avs/utils"

	"github.com/notargets/gocfd-swe/swe"
)

// PlotSink draws a live X-cut through the domain's middle row, for the
// `-graph` flag: the static bathymetry once (WriteGrid) and the
// free surface H+b per frame. It is entirely optional and never
// required to drive the solver; grounded on Euler1D.Plot's
// chart2d.NewChart2D + plotOnce.Do pattern.
type PlotSink struct {
	once     sync.Once
	chart    *chart2d.Chart2D
	colorMap *avsutils.ColorMap
}

func NewPlotSink() *PlotSink { return &PlotSink{} }

func (p *PlotSink) ensureChart(sp *swe.Spatial) {
	p.once.Do(func() {
		p.chart = chart2d.NewChart2D(1280, 720, 0, float32(sp.Dom.XLen), -1, 5)
		p.colorMap = avsutils.NewColorMap(-1, 1, 1)
		go p.chart.Plot()
	})
}

func (p *PlotSink) WriteGrid(sp *swe.Spatial) error {
	p.ensureChart(sp)

	hs := sp.Cfg.HalfStencil()
	nx := sp.Dom.Nx
	j := sp.Dom.Ny / 2
	dx := sp.Dom.Dx()

	x := make([]float32, nx)
	b := make([]float32, nx)
	for i := 0; i < nx; i++ {
		x[i] = float32((float64(i) + 0.5) * dx)
		b[i] = float32(sp.Bathymetry(hs+j, hs+i))
	}

	return p.chart.AddSeries("bath", x, b, chart2d.NoGlyph, chart2d.Solid, p.colorMap.GetRGB(0))
}

func (p *PlotSink) WriteFrame(sp *swe.Spatial, state *swe.Tensor, etime float64) error {
	p.ensureChart(sp)

	hs := sp.Cfg.HalfStencil()
	nx := sp.Dom.Nx
	j := sp.Dom.Ny / 2
	dx := sp.Dom.Dx()

	x := make([]float32, nx)
	surf := make([]float32, nx)
	for i := 0; i < nx; i++ {
		x[i] = float32((float64(i) + 0.5) * dx)
		surf[i] = float32(state.At(swe.IdxH, hs+j, hs+i) + sp.Bathymetry(hs+j, hs+i))
	}

	return p.chart.AddSeries("surface", x, surf, chart2d.NoGlyph, chart2d.Solid, p.colorMap.GetRGB(1))
}

func (p *PlotSink) Close() error { return nil }
