// Package match ranks stored face encodings by similarity to a query
// vector. The lookup sits behind the Index interface so the linear scan
// used today can be swapped for an indexed structure without touching
// callers.
package match

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Candidate is one stored encoding eligible for matching.
type Candidate struct {
	ID       uuid.UUID
	Encoding []float32
}

// Match is a ranked result. Lower distance means more similar.
type Match struct {
	ID       uuid.UUID
	Distance float64
}

// Index finds the nearest candidates to a query vector.
type Index interface {
	// Nearest returns up to k matches ordered by ascending distance.
	Nearest(query []float32, k int) []Match
}

// Linear is a brute-force Index: it compares the query against every
// candidate. O(n·d) per lookup, adequate at current record counts.
type Linear struct {
	candidates []Candidate
}

func NewLinear(candidates []Candidate) *Linear {
	return &Linear{candidates: candidates}
}

func (l *Linear) Nearest(query []float32, k int) []Match {
	matches := make([]Match, 0, len(l.candidates))
	for _, c := range l.candidates {
		if len(c.Encoding) != len(query) {
			continue
		}
		matches = append(matches, Match{
			ID:       c.ID,
			Distance: EuclideanDistance(query, c.Encoding),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// EuclideanDistance calculates the L2 distance between two vectors of
// equal length.
func EuclideanDistance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
