package knn

import (
	"errors"
	"math"
	"testing"
)

func TestEuclidean(t *testing.T) {
	type testCase struct {
		v1, v2 []float64
		want   float64
	}

	tCases := []testCase{
		// 0) Zero distance.
		{v1: []float64{1, 2, 3}, v2: []float64{1, 2, 3}, want: 0},
		// 1) Unit axis.
		{v1: []float64{0, 0, 0}, v2: []float64{1, 0, 0}, want: 1},
		// 2) 3-4-5 triangle.
		{v1: []float64{0, 0}, v2: []float64{3, 4}, want: 5},
		// 3) Full diagonal of the feature cube.
		{v1: []float64{0, 0, 0}, v2: []float64{100, 100, 100}, want: 100 * math.Sqrt(3)},
	}

	for i, tCase := range tCases {
		got, err := Euclidean(tCase.v1, tCase.v2)
		if err != nil {
			t.Fatalf("case %d: unexpected err: %v", i, err)
		}
		if math.Abs(got-tCase.want) > 1e-9 {
			t.Fatalf("case %d: got %v, want %v", i, got, tCase.want)
		}
	}
}

func TestEuclideanSymmetric(t *testing.T) {
	v1 := []float64{12.5, 88.1, 3.9}
	v2 := []float64{70.2, 14.4, 55.5}

	d1, err := Euclidean(v1, v2)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Euclidean(v2, v1)
	if err != nil {
		t.Fatal(err)
	}
	if d1 != d2 {
		t.Fatalf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestEuclideanDimensionMismatch(t *testing.T) {
	_, err := Euclidean([]float64{1, 2}, []float64{1, 2, 3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got err %v, want ErrDimensionMismatch", err)
	}
}

func TestNearest(t *testing.T) {
	pool := [][]float64{
		{10, 10, 10}, // 0
		{0, 0, 0},    // 1
		{50, 50, 50}, // 2
		{9, 9, 9},    // 3
	}

	type testCase struct {
		query       []float64
		k           int
		wantIndexes []int
	}

	tCases := []testCase{
		// 0) Single nearest.
		{query: []float64{1, 1, 1}, k: 1, wantIndexes: []int{1}},
		// 1) Two nearest, ordered.
		{query: []float64{8, 8, 8}, k: 2, wantIndexes: []int{3, 0}},
		// 2) k equals pool size.
		{query: []float64{0, 0, 0}, k: 4, wantIndexes: []int{1, 3, 0, 2}},
		// 3) k larger than pool size returns the whole pool.
		{query: []float64{0, 0, 0}, k: 10, wantIndexes: []int{1, 3, 0, 2}},
	}

	for i, tCase := range tCases {
		got, err := Nearest(pool, tCase.query, tCase.k)
		if err != nil {
			t.Fatalf("case %d: unexpected err: %v", i, err)
		}
		if len(got) != len(tCase.wantIndexes) {
			t.Fatalf("case %d: got %d hits, want %d", i, len(got), len(tCase.wantIndexes))
		}
		for j, hit := range got {
			if hit.Index != tCase.wantIndexes[j] {
				t.Fatalf("case %d: hit %d has index %d, want %d",
					i, j, hit.Index, tCase.wantIndexes[j])
			}
			if j > 0 && got[j-1].Distance > hit.Distance {
				t.Fatalf("case %d: distances not ascending at %d", i, j)
			}
		}
	}
}

func TestNearestTieBreakByIndex(t *testing.T) {
	// Three points at identical distance from the query.
	pool := [][]float64{
		{10, 0, 0}, // 0
		{0, 10, 0}, // 1
		{0, 0, 10}, // 2
	}

	got, err := Nearest(pool, []float64{0, 0, 0}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Index != 0 || got[1].Index != 1 {
		t.Fatalf("tie not broken by pool order: got indexes %d, %d", got[0].Index, got[1].Index)
	}
}

func TestNearestInvalidK(t *testing.T) {
	_, err := Nearest([][]float64{{1}}, []float64{1}, 0)
	if !errors.Is(err, ErrInvalidK) {
		t.Fatalf("got err %v, want ErrInvalidK", err)
	}
}

func TestNearestEmptyPool(t *testing.T) {
	got, err := Nearest(nil, []float64{1, 2, 3}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d hits from empty pool", len(got))
	}
}
