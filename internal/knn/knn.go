// Package knn implements the brute-force k-nearest-neighbours scan the
// recommendation service runs over the song catalog. At catalog scale
// (around a hundred points) a linear scan with an ordered k-buffer beats
// any indexing structure, so that is all there is.
package knn

import (
	"errors"
	"math"
)

var ErrDimensionMismatch = errors.New("vectors have different dimensions")

var ErrInvalidK = errors.New("k must be at least 1")

// Euclidean returns the Euclidean distance between two vectors of equal
// length.
func Euclidean(v1, v2 []float64) (float64, error) {
	if len(v1) != len(v2) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := 0; i < len(v1); i++ {
		d := v1[i] - v2[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Hit is one scan result: the index of a vector in the scanned pool and its
// distance to the query.
type Hit struct {
	Index    int
	Distance float64
}

// hits keeps the k best candidates ordered ascending by distance.
type hits []Hit

// insert bubbles the candidate into its sorted position, pushing the current
// worst hit out of the buffer. The strict less-than comparison means a
// candidate never displaces an earlier hit with the same distance, so equal
// distances resolve to the lower pool index as long as the pool is scanned
// in index order.
func (h hits) insert(candidate Hit) {
	for i := 0; i < len(h); i++ {
		if candidate.Distance < h[i].Distance {
			candidate, h[i] = h[i], candidate
		}
	}
}

// Nearest scans every vector in the pool and returns the k closest to the
// query by Euclidean distance, ordered ascending. Exact distance ties keep
// the original pool order. If k exceeds the pool size the whole pool is
// returned.
func Nearest(pool [][]float64, query []float64, k int) ([]Hit, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if k > len(pool) {
		k = len(pool)
	}

	best := make(hits, 0, k)
	for i, v := range pool {
		dist, err := Euclidean(query, v)
		if err != nil {
			return nil, err
		}

		candidate := Hit{Index: i, Distance: dist}
		if len(best) < k {
			// Grow the buffer in sorted order first.
			pos := len(best)
			for pos > 0 && best[pos-1].Distance > dist {
				pos--
			}
			best = append(best, Hit{})
			copy(best[pos+1:], best[pos:])
			best[pos] = candidate
			continue
		}
		if dist < best[k-1].Distance {
			best.insert(candidate)
		}
	}

	return best, nil
}
