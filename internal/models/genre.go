package models

// Genres is the fixed set of labels the generator draws from, in the order
// the original demo configures them.
var Genres = []string{
	"Pop",
	"Rock",
	"EDM",
	"Jazz",
	"Reggaeton",
	"Indie",
	"Hip Hop",
	"Classical",
}

// GenreColors maps each genre to the hex color the 3D plot renders it with.
var GenreColors = map[string]string{
	"Pop":       "#FF1493",
	"Rock":      "#FF4500",
	"EDM":       "#00FFFF",
	"Jazz":      "#FFD700",
	"Reggaeton": "#FF69B4",
	"Indie":     "#9370DB",
	"Hip Hop":   "#32CD32",
	"Classical": "#87CEEB",
}

// GenreColor returns the display color for a genre, falling back to a
// neutral gray for labels outside the configured set.
func GenreColor(genre string) string {
	if c, ok := GenreColors[genre]; ok {
		return c
	}
	return "#808080"
}

// KnownGenre reports whether the label belongs to the configured set.
func KnownGenre(genre string) bool {
	_, ok := GenreColors[genre]
	return ok
}
