package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joscor34/k-nearest-music-example/internal/config"
	"github.com/joscor34/k-nearest-music-example/internal/models"
	"github.com/joscor34/k-nearest-music-example/internal/services"
)

type RecommendationHandler struct {
	recService services.RecommendationService
	config     *config.Config
}

func NewRecommendationHandler(rec services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recService: rec,
		config:     config.GlobalConfig,
	}
}

// recommendRequest is the POST body. Feature fields are pointers so that a
// legitimate 0.0 survives the required check.
type recommendRequest struct {
	Energy       *float64 `json:"energy" binding:"required"`
	Danceability *float64 `json:"danceability" binding:"required"`
	Valence      *float64 `json:"valence" binding:"required"`
	K            int      `json:"k"`
}

func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	query := models.QueryPoint{
		Energy:       *req.Energy,
		Danceability: *req.Danceability,
		Valence:      *req.Valence,
	}

	h.respond(c, query, h.clampK(req.K))
}

func (h *RecommendationHandler) RandomRecommend(c *gin.Context) {
	kStr := c.DefaultQuery("k", strconv.Itoa(h.config.DefaultK))
	k, err := strconv.Atoi(kStr)
	if err != nil || k <= 0 {
		k = h.config.DefaultK
	}

	h.respond(c, h.recService.RandomQuery(), h.clampK(k))
}

func (h *RecommendationHandler) respond(c *gin.Context, query models.QueryPoint, k int) {
	rec, err := h.recService.Recommend(query, k)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Failed to generate recommendation"
		if errors.Is(err, services.ErrInvalidK) || errors.Is(err, services.ErrQueryOutOfRange) {
			status = http.StatusBadRequest
			message = "Invalid query parameters"
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": message,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recommendation generated",
		"data": gin.H{
			"query":             rec.Query,
			"k":                 rec.K,
			"neighbors":         rec.Neighbors,
			"votes":             rec.Votes,
			"recommended_genre": rec.Genre,
			"metadata": gin.H{
				"default_k": h.config.DefaultK,
				"max_k":     h.config.MaxK,
			},
		},
	})
}

// clampK applies the UI slider limits. Values above the configured maximum
// are capped rather than rejected; non-positive values fall back to the
// default so the service still sees something in range.
func (h *RecommendationHandler) clampK(k int) int {
	if k <= 0 {
		return h.config.DefaultK
	}
	if k > h.config.MaxK {
		return h.config.MaxK
	}
	return k
}
