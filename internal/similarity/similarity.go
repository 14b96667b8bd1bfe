// Package similarity provides vector similarity scoring and ranking for recommendations.
package similarity

import (
	"math"
	"sort"
)

// Candidate pairs an identifier with the vector to score.
type Candidate struct {
	ID     string
	Vector []float64
}

// Ranked is a candidate with its computed similarity score.
type Ranked struct {
	Candidate
	Score float64
}

// dotProduct computes the dot product of two equal-length vectors.
func dotProduct(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// magnitude computes the Euclidean norm of a vector.
func magnitude(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Cosine computes the cosine similarity between two vectors, in [-1, 1].
// Mismatched lengths or a zero-magnitude vector score 0 rather than erroring,
// so malformed vectors sort to the bottom of a ranking.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	magA := magnitude(a)
	magB := magnitude(b)
	if magA == 0 || magB == 0 {
		return 0
	}
	return dotProduct(a, b) / (magA * magB)
}

// Rank scores every candidate against the query vector and returns them
// sorted by descending score. Candidates with a NaN score are dropped.
// Ties keep their input order. Inputs are not mutated.
func Rank(query []float64, candidates []Candidate) []Ranked {
	if len(query) == 0 {
		return nil
	}

	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		score := Cosine(query, c.Vector)
		if math.IsNaN(score) {
			continue
		}
		ranked = append(ranked, Ranked{Candidate: c, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
