package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-6

func TestCosineSimilarity_Identity(t *testing.T) {
	vectors := [][]float32{
		{1, 0},
		{0.6, 0.8},
		{0.5, 0.5, 0.5, 0.5},
	}

	for _, v := range vectors {
		score := CosineSimilarity(v, v)
		assert.InDelta(t, 1.0, score, tolerance, "unit-normalized vector against itself scores 1")
	}
}

func TestCosineSimilarity_Negation(t *testing.T) {
	a := []float32{0.3, -0.7, 0.2}
	b := make([]float32, len(a))

	for i, v := range a {
		b[i] = -v
	}

	assert.InDelta(t, -1.0, CosineSimilarity(a, b), tolerance)
}

func TestCosineSimilarity_Orthogonal(t *testing.T) {
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), tolerance)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{2, 2}, []float32{2, -2}), tolerance)
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	// epsilon in the denominator prevents division by zero
	score := CosineSimilarity([]float32{0, 0, 0}, []float32{1, 2, 3})

	assert.False(t, math.IsNaN(score))
	assert.False(t, math.IsInf(score, 0))
	assert.InDelta(t, 0.0, score, tolerance)
}

func TestCosineSimilarity_Bounded(t *testing.T) {
	a := []float32{3.5, -1.25, 0.75, 9}
	b := []float32{-0.5, 4, 2.25, -7}

	score := CosineSimilarity(a, b)

	assert.LessOrEqual(t, score, 1.0+tolerance)
	assert.GreaterOrEqual(t, score, -1.0-tolerance)
}
