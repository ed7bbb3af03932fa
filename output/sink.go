// Package output implements the frame sinks a run can write its state
// to: a CSV dump for offline analysis and an optional interactive plot.
// NetCDF, the original's output format, is out of scope here — nothing
// in this module reads or writes it.
package output

import "github.com/notargets/gocfd-swe/swe"

// Sink receives the grid once and then a frame every time the driver
// decides to emit one.
type Sink interface {
	WriteGrid(sp *swe.Spatial) error
	WriteFrame(sp *swe.Spatial, state *swe.Tensor, etime float64) error
	Close() error
}
