// Package dataset builds the synthetic song catalog the demo serves. The
// catalog is generated once at startup and never mutated afterwards.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/joscor34/k-nearest-music-example/internal/models"
)

var (
	ErrInvalidCount = errors.New("dataset size must be positive")
	ErrInvalidRange = errors.New("invalid genre range")
)

// Range bounds one feature for one genre. Min and Max are inclusive and must
// lie within [0,100] with Min <= Max.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FeatureRanges holds the three per-feature ranges a genre samples from.
type FeatureRanges struct {
	Energy       Range `json:"energy"`
	Danceability Range `json:"danceability"`
	Valence      Range `json:"valence"`
}

// GenreRanges maps genre labels to their feature ranges.
type GenreRanges map[string]FeatureRanges

// DefaultRanges returns the genre profile the original demo ships with.
func DefaultRanges() GenreRanges {
	return GenreRanges{
		"Pop":       {Energy: Range{60, 80}, Danceability: Range{70, 90}, Valence: Range{60, 85}},
		"Rock":      {Energy: Range{70, 95}, Danceability: Range{40, 70}, Valence: Range{40, 70}},
		"EDM":       {Energy: Range{80, 100}, Danceability: Range{75, 95}, Valence: Range{60, 90}},
		"Jazz":      {Energy: Range{20, 50}, Danceability: Range{30, 60}, Valence: Range{40, 70}},
		"Reggaeton": {Energy: Range{70, 90}, Danceability: Range{80, 100}, Valence: Range{65, 85}},
		"Indie":     {Energy: Range{40, 70}, Danceability: Range{40, 70}, Valence: Range{45, 75}},
		"Hip Hop":   {Energy: Range{60, 85}, Danceability: Range{70, 90}, Valence: Range{40, 70}},
		"Classical": {Energy: Range{20, 40}, Danceability: Range{10, 30}, Valence: Range{50, 80}},
	}
}

func (r Range) valid() bool {
	return r.Min <= r.Max && r.Min >= models.FeatureMin && r.Max <= models.FeatureMax
}

// Validate checks the range table without generating anything.
func (gr GenreRanges) Validate() error {
	if len(gr) == 0 {
		return fmt.Errorf("%w: no genres configured", ErrInvalidRange)
	}
	for genre, fr := range gr {
		if !models.KnownGenre(genre) {
			return fmt.Errorf("%w: unknown genre %q", ErrInvalidRange, genre)
		}
		for _, r := range []Range{fr.Energy, fr.Danceability, fr.Valence} {
			if !r.valid() {
				return fmt.Errorf("%w: genre %q has range [%v, %v]",
					ErrInvalidRange, genre, r.Min, r.Max)
			}
		}
	}
	return nil
}

// genres returns the configured genre labels in the fixed models.Genres
// order. Map iteration order must never leak into generation, otherwise a
// seeded run stops being reproducible.
func (gr GenreRanges) genres() []string {
	ordered := make([]string, 0, len(gr))
	for _, g := range models.Genres {
		if _, ok := gr[g]; ok {
			ordered = append(ordered, g)
		}
	}
	return ordered
}

// Generate produces n songs, each assigned a uniformly random genre from the
// configured set and feature values drawn uniformly within that genre's
// ranges. All randomness, including song IDs, comes from rng, so a fixed
// seed reproduces the catalog exactly.
func Generate(n int, ranges GenreRanges, rng *rand.Rand) ([]models.Song, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	if err := ranges.Validate(); err != nil {
		return nil, err
	}

	genres := ranges.genres()
	songs := make([]models.Song, 0, n)
	for i := 0; i < n; i++ {
		genre := genres[rng.Intn(len(genres))]
		fr := ranges[genre]

		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, fmt.Errorf("generate song id: %w", err)
		}

		songs = append(songs, models.Song{
			ID:           id.String(),
			Title:        fmt.Sprintf("%s Song %d", genre, i%20+1),
			Genre:        genre,
			Color:        models.GenreColor(genre),
			Energy:       sample(fr.Energy, rng),
			Danceability: sample(fr.Danceability, rng),
			Valence:      sample(fr.Valence, rng),
			Position:     i,
		})
	}
	return songs, nil
}

// RandomQuery returns a uniformly random point in the feature cube, used by
// the "surprise me" query endpoint.
func RandomQuery(rng *rand.Rand) models.QueryPoint {
	span := models.FeatureMax - models.FeatureMin
	return models.QueryPoint{
		Energy:       models.FeatureMin + rng.Float64()*span,
		Danceability: models.FeatureMin + rng.Float64()*span,
		Valence:      models.FeatureMin + rng.Float64()*span,
	}
}

func sample(r Range, rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
