package swe

// OutputSink is implemented by anything that can receive the grid once
// and a frame of state at a time, matching the driver-facing output
// operation below. output.Sink (CSV, plot) satisfies this structurally.
type OutputSink interface {
	WriteGrid(sp *Spatial) error
	WriteFrame(sp *Spatial, state *Tensor, etime float64) error
}

// Bathymetry returns the cell-averaged bathymetry at the given
// (possibly halo-inclusive) index, for sinks that need to report it
// alongside the grid.
func (sp *Spatial) Bathymetry(j, i int) float64 { return sp.bath.At(j, i) }

// Output writes the grid (x, y, bathymetry) to sink once, the first
// time it's called with that sink, then the current frame (thickness,
// u, v and the free surface h+b) every time.
func (sp *Spatial) Output(sink OutputSink, state *Tensor, etime float64) error {
	if !sp.gridWritten[sink] {
		if err := sink.WriteGrid(sp); err != nil {
			return err
		}
		if sp.gridWritten == nil {
			sp.gridWritten = make(map[OutputSink]bool)
		}
		sp.gridWritten[sink] = true
	}
	return sink.WriteFrame(sp, state, etime)
}
