package services

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/joscor34/k-nearest-music-example/internal/dataset"
	"github.com/joscor34/k-nearest-music-example/internal/knn"
	"github.com/joscor34/k-nearest-music-example/internal/models"
	"github.com/joscor34/k-nearest-music-example/internal/repository"
)

var (
	ErrInvalidK        = errors.New("k out of range")
	ErrQueryOutOfRange = errors.New("query point out of range")
)

type RecommendationService interface {
	// Recommend returns the k catalog songs nearest to the query point and
	// the genre they elect by majority vote.
	Recommend(query models.QueryPoint, k int) (*models.Recommendation, error)
	// RandomQuery returns a random point in the feature cube, for the
	// "surprise me" endpoint.
	RandomQuery() models.QueryPoint
}

type recommendationService struct {
	songRepo repository.SongRepository

	// rng backs RandomQuery only; the query path itself has no randomness.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRecommendationService(songRepo repository.SongRepository, rng *rand.Rand) RecommendationService {
	return &recommendationService{
		songRepo: songRepo,
		rng:      rng,
	}
}

func (s *recommendationService) Recommend(query models.QueryPoint, k int) (*models.Recommendation, error) {
	size := s.songRepo.CountSongs()
	if k < 1 || k > size {
		return nil, fmt.Errorf("%w: k=%d, catalog size=%d", ErrInvalidK, k, size)
	}
	if !query.InBounds() {
		return nil, fmt.Errorf("%w: %+v, features must be within [%v, %v]",
			ErrQueryOutOfRange, query, models.FeatureMin, models.FeatureMax)
	}

	hits, err := knn.Nearest(s.songRepo.FeatureVectors(), query.Vector(), k)
	if err != nil {
		return nil, fmt.Errorf("knn scan: %w", err)
	}

	songs := s.songRepo.GetAllSongs()
	neighbors := make([]models.Neighbor, 0, len(hits))
	for i, hit := range hits {
		neighbors = append(neighbors, models.Neighbor{
			Song:     songs[hit.Index],
			Distance: hit.Distance,
			Rank:     i + 1,
		})
	}

	votes := tallyVotes(neighbors)
	winner := votes[0].Genre

	for i := range neighbors {
		neighbors[i].Explanation = explain(&neighbors[i], winner)
	}

	return &models.Recommendation{
		Query:     query,
		K:         k,
		Neighbors: neighbors,
		Votes:     votes,
		Genre:     winner,
	}, nil
}

func (s *recommendationService) RandomQuery() models.QueryPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dataset.RandomQuery(s.rng)
}

// tallyVotes counts genres among the neighbors and orders them by vote count
// descending. Vote ties keep first-appearance order, so a tied genre whose
// closest representative ranks higher wins; the recommended genre is always
// the first entry. Genres with zero votes are omitted.
func tallyVotes(neighbors []models.Neighbor) []models.GenreVote {
	counts := make(map[string]int, len(neighbors))
	order := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		if counts[n.Song.Genre] == 0 {
			order = append(order, n.Song.Genre)
		}
		counts[n.Song.Genre]++
	}

	votes := make([]models.GenreVote, 0, len(order))
	for _, genre := range order {
		votes = append(votes, models.GenreVote{Genre: genre, Votes: counts[genre]})
	}
	sort.SliceStable(votes, func(i, j int) bool {
		return votes[i].Votes > votes[j].Votes
	})
	return votes
}

func explain(n *models.Neighbor, winner string) string {
	parts := []string{fmt.Sprintf("Distance: %.2f", n.Distance)}

	switch {
	case n.Distance < 10:
		parts = append(parts, "Very close match")
	case n.Distance < 25:
		parts = append(parts, "Close match")
	default:
		parts = append(parts, "Distant match")
	}

	if n.Song.Genre == winner {
		parts = append(parts, "Voted for the recommended genre")
	}

	return strings.Join(parts, " • ")
}
