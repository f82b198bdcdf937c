package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelderWeldsWithinThreshold(t *testing.T) {
	w := newWelder(0.5, 8)

	i0 := w.Add(Vector{0, 0, 0})
	i1 := w.Add(Vector{0.3, 0, 0})
	assert.Equal(t, i0, i1, "0.3 < threshold 0.5, should weld to the same vertex")
	assert.Len(t, w.Vertices(), 1)
}

func TestWelderKeepsDistinctBeyondThreshold(t *testing.T) {
	w := newWelder(0.5, 8)

	i0 := w.Add(Vector{0, 0, 0})
	i1 := w.Add(Vector{0.6, 0, 0})
	assert.NotEqual(t, i0, i1, "0.6 >= threshold 0.5, should stay distinct")
	assert.Len(t, w.Vertices(), 2)
}

func TestWelderStrictBoundary(t *testing.T) {
	// distance exactly equal to threshold does not weld: the comparison is
	// strict (<), not <=.
	w := newWelder(0.5, 8)
	i0 := w.Add(Vector{0, 0, 0})
	i1 := w.Add(Vector{0.5, 0, 0})
	assert.NotEqual(t, i0, i1)
}

func TestWelderSingleBucketStillWorks(t *testing.T) {
	w := newWelder(0.5, 0)
	assert.Len(t, w.buckets, 1)
	w.Add(Vector{0, 0, 0})
	w.Add(Vector{10, 10, 10})
	assert.Len(t, w.Vertices(), 2)
}
