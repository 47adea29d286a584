package semantic

import (
	"fmt"
	"log/slog"
	"math"
)

// CosineSimilarity computes dot(a,b)/(‖a‖‖b‖), clamped to [-1, 1] to absorb
// floating point error. A zero-norm vector on either side yields 0 with a
// logged warning rather than an error, since a degenerate embedding should
// not abort the surrounding batch.
func CosineSimilarity(a, b []float32) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilVector
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		slog.Warn("zero-norm vector in cosine similarity")
		return 0, nil
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(-1, math.Min(1, similarity)), nil
}
