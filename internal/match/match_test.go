package match

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestEuclideanDistance(t *testing.T) {
	t.Parallel()

	got := EuclideanDistance([]float32{0, 0}, []float32{3, 4})
	if math.Abs(got-5) > 1e-9 {
		t.Fatalf("distance: got %v want 5", got)
	}

	if d := EuclideanDistance([]float32{1, 2, 3}, []float32{1, 2, 3}); d != 0 {
		t.Fatalf("identical vectors: got %v want 0", d)
	}
}

func TestNearestOrdering(t *testing.T) {
	t.Parallel()

	far := uuid.New()
	near := uuid.New()
	mid := uuid.New()

	idx := NewLinear([]Candidate{
		{ID: far, Encoding: []float32{10, 0}},
		{ID: near, Encoding: []float32{1, 0}},
		{ID: mid, Encoding: []float32{5, 0}},
	})

	matches := idx.Nearest([]float32{0, 0}, 3)
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}

	want := []uuid.UUID{near, mid, far}
	for i, m := range matches {
		if m.ID != want[i] {
			t.Fatalf("rank %d: got %s want %s", i, m.ID, want[i])
		}
	}
	if matches[0].Distance > matches[1].Distance || matches[1].Distance > matches[2].Distance {
		t.Fatalf("distances not ascending: %v", matches)
	}
}

func TestNearestTruncatesToK(t *testing.T) {
	t.Parallel()

	candidates := make([]Candidate, 10)
	for i := range candidates {
		candidates[i] = Candidate{ID: uuid.New(), Encoding: []float32{float32(i)}}
	}

	matches := NewLinear(candidates).Nearest([]float32{0}, 3)
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
}

func TestNearestFewerCandidatesThanK(t *testing.T) {
	t.Parallel()

	only := uuid.New()
	matches := NewLinear([]Candidate{{ID: only, Encoding: []float32{1}}}).Nearest([]float32{0}, 3)
	if len(matches) != 1 || matches[0].ID != only {
		t.Fatalf("got %v, want single match %s", matches, only)
	}
}

func TestNearestSkipsMismatchedDimensions(t *testing.T) {
	t.Parallel()

	good := uuid.New()
	idx := NewLinear([]Candidate{
		{ID: uuid.New(), Encoding: []float32{1, 2, 3}},
		{ID: good, Encoding: []float32{1, 1}},
	})

	matches := idx.Nearest([]float32{0, 0}, 5)
	if len(matches) != 1 || matches[0].ID != good {
		t.Fatalf("got %v, want only the 2-d candidate", matches)
	}
}

func TestNearestEmptyIndex(t *testing.T) {
	t.Parallel()

	if matches := NewLinear(nil).Nearest([]float32{1}, 3); len(matches) != 0 {
		t.Fatalf("got %v, want empty", matches)
	}
}
