package search

import "math"

// keeps the denominator non-zero for all-zero vectors
const epsilon = 1e-9

// CosineSimilarity returns dot(a,b) / (‖a‖·‖b‖) in roughly [-1, 1].
// Callers must pass equal-length vectors; mismatched pairs are
// non-comparable and must be scored 0 without calling this.
func CosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64

	for i := range a {
		ai := float64(a[i])
		bi := float64(b[i])

		dot += ai * bi
		normA += ai * ai
		normB += bi * bi
	}

	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + epsilon)
}
