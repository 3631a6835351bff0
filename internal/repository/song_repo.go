package repository

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/joscor34/k-nearest-music-example/internal/models"
)

var ErrSongNotFound = errors.New("song not found")

// SongRepository provides read access to the song catalog. The catalog is
// built once at startup and never changes, so every method is safe to call
// from concurrent request handlers.
type SongRepository interface {
	GetAllSongs() []models.Song
	GetSongByID(id string) (*models.Song, error)
	GetSongsByGenre(genre string, limit int) []models.Song
	GetRandomSongs(limit int) []models.Song
	SearchSongs(query string, limit int) []models.Song
	CountSongs() int
	GenreCounts() map[string]int
	// FeatureVectors returns one vector per song, in catalog order. The
	// returned slice is shared and must be treated as read-only.
	FeatureVectors() [][]float64
}

type songRepo struct {
	songs   []models.Song
	byID    map[string]int
	vectors [][]float64

	// rng backs GetRandomSongs only; reads of the catalog itself never
	// touch it.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSongRepository wraps a generated catalog. The songs are copied and
// ordered by their generation position so that index-based distance
// tie-breaking stays deterministic no matter where the catalog came from.
// The rng feeds random sampling and is seeded by the caller.
func NewSongRepository(songs []models.Song, rng *rand.Rand) SongRepository {
	owned := make([]models.Song, len(songs))
	copy(owned, songs)
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].Position < owned[j].Position
	})

	byID := make(map[string]int, len(owned))
	vectors := make([][]float64, len(owned))
	for i := range owned {
		byID[owned[i].ID] = i
		vectors[i] = owned[i].FeatureVector()
	}

	return &songRepo{songs: owned, byID: byID, vectors: vectors, rng: rng}
}

func (r *songRepo) GetAllSongs() []models.Song {
	out := make([]models.Song, len(r.songs))
	copy(out, r.songs)
	return out
}

func (r *songRepo) GetSongByID(id string) (*models.Song, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrSongNotFound
	}
	song := r.songs[i]
	return &song, nil
}

func (r *songRepo) GetSongsByGenre(genre string, limit int) []models.Song {
	var out []models.Song
	for _, song := range r.songs {
		if strings.EqualFold(song.Genre, genre) {
			out = append(out, song)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

// GetRandomSongs returns up to limit distinct songs sampled uniformly from
// the catalog.
func (r *songRepo) GetRandomSongs(limit int) []models.Song {
	if limit <= 0 {
		return nil
	}
	if limit > len(r.songs) {
		limit = len(r.songs)
	}

	r.mu.Lock()
	picks := r.rng.Perm(len(r.songs))[:limit]
	r.mu.Unlock()

	out := make([]models.Song, 0, limit)
	for _, i := range picks {
		out = append(out, r.songs[i])
	}
	return out
}

func (r *songRepo) SearchSongs(query string, limit int) []models.Song {
	var out []models.Song
	needle := strings.ToLower(query)
	for _, song := range r.songs {
		if strings.Contains(strings.ToLower(song.Title), needle) {
			out = append(out, song)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

func (r *songRepo) CountSongs() int {
	return len(r.songs)
}

func (r *songRepo) GenreCounts() map[string]int {
	counts := make(map[string]int)
	for _, song := range r.songs {
		counts[song.Genre]++
	}
	return counts
}

func (r *songRepo) FeatureVectors() [][]float64 {
	return r.vectors
}
