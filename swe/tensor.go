package swe

import "fmt"

// Tensor is a flat, row-major, fixed-shape array of float64, used for
// every state, tendency and edge-value array the solver carries. It
// plays the role the original's fixed-size stack arrays played, except
// that here the shape is a runtime value (Config/Domain derived) rather
// than a compile-time template parameter.
type Tensor struct {
	dims    []int
	strides []int
	data    []float64
}

// NewTensor allocates a zeroed Tensor with the given shape.
func NewTensor(dims ...int) *Tensor {
	strides := make([]int, len(dims))
	stride := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= dims[i]
	}
	return &Tensor{
		dims:    append([]int(nil), dims...),
		strides: strides,
		data:    make([]float64, stride),
	}
}

func (t *Tensor) offset(idx []int) int {
	if len(idx) != len(t.dims) {
		panic(fmt.Sprintf("tensor: want %d indices, got %d", len(t.dims), len(idx)))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= t.dims[i] {
			panic(fmt.Sprintf("tensor: index %d out of bounds [0,%d) at axis %d", v, t.dims[i], i))
		}
		off += v * t.strides[i]
	}
	return off
}

// At returns the value at idx.
func (t *Tensor) At(idx ...int) float64 { return t.data[t.offset(idx)] }

// Set stores v at idx.
func (t *Tensor) Set(v float64, idx ...int) { t.data[t.offset(idx)] = v }

// Add accumulates v into the value at idx.
func (t *Tensor) Add(v float64, idx ...int) { t.data[t.offset(idx)] += v }

// Zero resets every element to zero.
func (t *Tensor) Zero() {
	for i := range t.data {
		t.data[i] = 0
	}
}

// Dims returns the tensor's shape.
func (t *Tensor) Dims() []int { return t.dims }

// Raw exposes the backing storage for reductions (e.g. gonum/floats).
func (t *Tensor) Raw() []float64 { return t.data }

// Clone returns a deep copy of t.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{
		dims:    append([]int(nil), t.dims...),
		strides: append([]int(nil), t.strides...),
		data:    append([]float64(nil), t.data...),
	}
}

// CombineInto sets dst = wa*a + wb*b elementwise over the full backing
// array, the primitive the SSP-RK3 stage blending in cmd/run.go is
// built from.
func CombineInto(dst, a *Tensor, wa float64, b *Tensor, wb float64) {
	da, db, dd := a.data, b.data, dst.data
	for i := range dd {
		dd[i] = wa*da[i] + wb*db[i]
	}
}
