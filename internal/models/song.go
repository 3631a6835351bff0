package models

import (
	"time"
)

// Feature bounds shared by the generator, the query validation and the UI
// sliders.
const (
	FeatureMin = 0.0
	FeatureMax = 100.0
)

// Song is one point of the synthetic catalog. The three audio features span
// the 3D space the demo plots: energy (x), danceability (y) and valence (z),
// each in [0,100]. Songs are immutable after generation.
type Song struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Genre        string    `gorm:"type:varchar(100);not null;index" json:"genre"`
	Color        string    `gorm:"type:varchar(7);not null" json:"color"`
	Energy       float64   `gorm:"not null" json:"energy"`
	Danceability float64   `gorm:"not null" json:"danceability"`
	Valence      float64   `gorm:"not null" json:"valence"`
	Position     int       `gorm:"not null;uniqueIndex" json:"position"`
	CreatedAt    time.Time `json:"created_at"`
}

// FeatureVector returns the song's coordinates in feature space, in the
// fixed (energy, danceability, valence) axis order.
func (s *Song) FeatureVector() []float64 {
	return []float64{s.Energy, s.Danceability, s.Valence}
}

// QueryPoint is a transient coordinate supplied by the caller; it is never
// part of the stored catalog.
type QueryPoint struct {
	Energy       float64 `json:"energy"`
	Danceability float64 `json:"danceability"`
	Valence      float64 `json:"valence"`
}

// Vector returns the query coordinates in the same axis order as
// Song.FeatureVector.
func (q QueryPoint) Vector() []float64 {
	return []float64{q.Energy, q.Danceability, q.Valence}
}

// InBounds reports whether every coordinate lies within [FeatureMin, FeatureMax].
func (q QueryPoint) InBounds() bool {
	for _, v := range q.Vector() {
		if v < FeatureMin || v > FeatureMax {
			return false
		}
	}
	return true
}

// Neighbor is one entry of a recommendation's ranked neighbor list.
type Neighbor struct {
	Song        Song    `json:"song"`
	Distance    float64 `json:"distance"`
	Rank        int     `json:"rank"`
	Explanation string  `json:"explanation,omitempty"`
}

// GenreVote is the tally of one genre among the K neighbors. Votes are
// reported as an ordered slice rather than a map so responses stay
// deterministic; the winning genre is always the first element.
type GenreVote struct {
	Genre string `json:"genre"`
	Votes int    `json:"votes"`
}

// Recommendation is the full answer to one KNN query.
type Recommendation struct {
	Query     QueryPoint  `json:"query"`
	K         int         `json:"k"`
	Neighbors []Neighbor  `json:"neighbors"`
	Votes     []GenreVote `json:"votes"`
	Genre     string      `json:"recommended_genre"`
}
