package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joscor34/k-nearest-music-example/internal/dataset"
	"github.com/joscor34/k-nearest-music-example/internal/models"
	"github.com/joscor34/k-nearest-music-example/internal/repository"
)

type SongHandler struct {
	songRepo repository.SongRepository
	ranges   dataset.GenreRanges
}

func NewSongHandler(songRepo repository.SongRepository, ranges dataset.GenreRanges) *SongHandler {
	return &SongHandler{
		songRepo: songRepo,
		ranges:   ranges,
	}
}

func (h *SongHandler) GetAllSongs(c *gin.Context) {
	songs := h.songRepo.GetAllSongs()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Songs fetched",
		"data": gin.H{
			"songs": songs,
			"total": len(songs),
		},
	})
}

func (h *SongHandler) GetSongByID(c *gin.Context) {
	id := c.Param("id")

	song, err := h.songRepo.GetSongByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Song not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch song",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Song fetched",
		"data":    gin.H{"song": song},
	})
}

// GetRandomSongs returns a random sample of the catalog, for the demo's
// "show me some songs" action.
func (h *SongHandler) GetRandomSongs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	songs := h.songRepo.GetRandomSongs(limit)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Random songs fetched",
		"data": gin.H{
			"songs": songs,
			"total": len(songs),
		},
	})
}

func (h *SongHandler) SearchSongs(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Query parameter 'q' is required",
		})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	songs := h.songRepo.SearchSongs(query, limit)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Search completed",
		"data": gin.H{
			"songs": songs,
			"query": query,
			"total": len(songs),
		},
	})
}

// GetGenres returns the plot legend: every configured genre with its color,
// song count and feature ranges, in the fixed display order.
func (h *SongHandler) GetGenres(c *gin.Context) {
	counts := h.songRepo.GenreCounts()

	genres := make([]gin.H, 0, len(models.Genres))
	for _, genre := range models.Genres {
		fr, ok := h.ranges[genre]
		if !ok {
			continue
		}
		genres = append(genres, gin.H{
			"genre":  genre,
			"color":  models.GenreColor(genre),
			"count":  counts[genre],
			"ranges": fr,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Genres fetched",
		"data": gin.H{
			"genres": genres,
			"total":  h.songRepo.CountSongs(),
		},
	})
}
