package dataset

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/joscor34/k-nearest-music-example/internal/models"
)

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	songs, err := Generate(100, DefaultRanges(), rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(songs) != 100 {
		t.Fatalf("got %d songs, want 100", len(songs))
	}

	ranges := DefaultRanges()
	seen := make(map[string]bool, len(songs))
	for i, song := range songs {
		if song.Position != i {
			t.Fatalf("song %d has position %d", i, song.Position)
		}
		if seen[song.ID] {
			t.Fatalf("duplicate song id %s", song.ID)
		}
		seen[song.ID] = true

		fr, ok := ranges[song.Genre]
		if !ok {
			t.Fatalf("song %d has unknown genre %q", i, song.Genre)
		}
		if song.Energy < fr.Energy.Min || song.Energy > fr.Energy.Max {
			t.Fatalf("song %d energy %v outside %v", i, song.Energy, fr.Energy)
		}
		if song.Danceability < fr.Danceability.Min || song.Danceability > fr.Danceability.Max {
			t.Fatalf("song %d danceability %v outside %v", i, song.Danceability, fr.Danceability)
		}
		if song.Valence < fr.Valence.Min || song.Valence > fr.Valence.Max {
			t.Fatalf("song %d valence %v outside %v", i, song.Valence, fr.Valence)
		}
		if song.Color != models.GenreColor(song.Genre) {
			t.Fatalf("song %d color %q does not match genre %q", i, song.Color, song.Genre)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate(50, DefaultRanges(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate(50, DefaultRanges(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed produced different catalogs")
	}
}

func TestGenerateSeedChangesCatalog(t *testing.T) {
	first, err := Generate(50, DefaultRanges(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate(50, DefaultRanges(), rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatal(err)
	}

	if reflect.DeepEqual(first, second) {
		t.Fatal("different seeds produced identical catalogs")
	}
}

func TestGenerateInvalidCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Generate(n, DefaultRanges(), rand.New(rand.NewSource(42)))
		if !errors.Is(err, ErrInvalidCount) {
			t.Fatalf("n=%d: got err %v, want ErrInvalidCount", n, err)
		}
	}
}

func TestGenerateInvalidRanges(t *testing.T) {
	type testCase struct {
		name   string
		ranges GenreRanges
	}

	tCases := []testCase{
		{
			name:   "empty table",
			ranges: GenreRanges{},
		},
		{
			name: "min greater than max",
			ranges: GenreRanges{
				"Pop": {Energy: Range{80, 60}, Danceability: Range{70, 90}, Valence: Range{60, 85}},
			},
		},
		{
			name: "above feature bounds",
			ranges: GenreRanges{
				"Pop": {Energy: Range{60, 120}, Danceability: Range{70, 90}, Valence: Range{60, 85}},
			},
		},
		{
			name: "below feature bounds",
			ranges: GenreRanges{
				"Pop": {Energy: Range{-10, 60}, Danceability: Range{70, 90}, Valence: Range{60, 85}},
			},
		},
		{
			name: "unknown genre",
			ranges: GenreRanges{
				"Polka": {Energy: Range{0, 100}, Danceability: Range{0, 100}, Valence: Range{0, 100}},
			},
		},
	}

	for _, tCase := range tCases {
		_, err := Generate(10, tCase.ranges, rand.New(rand.NewSource(42)))
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("%s: got err %v, want ErrInvalidRange", tCase.name, err)
		}
	}
}

func TestRandomQueryInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		q := RandomQuery(rng)
		if !q.InBounds() {
			t.Fatalf("query %d out of bounds: %+v", i, q)
		}
	}
}
