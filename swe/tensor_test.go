package swe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTensorAtSet(t *testing.T) {
	tr := NewTensor(2, 3, 4)
	tr.Set(7, 1, 2, 3)
	assert.Equal(t, 7.0, tr.At(1, 2, 3))
	assert.Equal(t, 0.0, tr.At(0, 0, 0))

	tr.Add(3, 1, 2, 3)
	assert.Equal(t, 10.0, tr.At(1, 2, 3))
}

func TestTensorCloneIsIndependent(t *testing.T) {
	a := NewTensor(2, 2)
	a.Set(5, 0, 0)
	b := a.Clone()
	b.Set(9, 0, 0)
	assert.Equal(t, 5.0, a.At(0, 0))
	assert.Equal(t, 9.0, b.At(0, 0))
}

func TestTensorOutOfBoundsPanics(t *testing.T) {
	tr := NewTensor(2, 2)
	assert.Panics(t, func() { tr.At(2, 0) })
}

func TestCombineInto(t *testing.T) {
	a := NewTensor(3)
	b := NewTensor(3)
	for i := 0; i < 3; i++ {
		a.Set(float64(i), i)
		b.Set(float64(i)*10, i)
	}
	dst := NewTensor(3)
	CombineInto(dst, a, 0.5, b, 0.5)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 5.5*float64(i), dst.At(i), 1e-12)
	}
}
