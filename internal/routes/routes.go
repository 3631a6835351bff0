package routes

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/joscor34/k-nearest-music-example/internal/config"
	"github.com/joscor34/k-nearest-music-example/internal/handlers"
)

func SetupRoutes(
	songHandler *handlers.SongHandler,
	recommendationHandler *handlers.RecommendationHandler,
) *gin.Engine {

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	cfg := config.GlobalConfig

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if cfg.Env == "production" {
		if cfg.CORSOrigin == "" {
			log.Fatal("CORS_ORIGIN must be set in production")
		}
		corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	} else {
		allowedOrigins := []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		}
		if cfg.CORSOrigin != "" {
			allowedOrigins = append(allowedOrigins, cfg.CORSOrigin)
		}

		corsConfig.AllowOriginFunc = func(origin string) bool {
			for _, allowed := range allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return strings.HasPrefix(origin, "http://192.168.") ||
				strings.HasPrefix(origin, "http://10.")
		}
	}

	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	})

	api := router.Group("/api")
	{
		songs := api.Group("/songs")
		{
			songs.GET("", songHandler.GetAllSongs)
			songs.GET("/search", songHandler.SearchSongs)
			songs.GET("/random", songHandler.GetRandomSongs)
			songs.GET("/:id", songHandler.GetSongByID)
		}

		api.GET("/genres", songHandler.GetGenres)

		recommend := api.Group("/recommend")
		{
			recommend.POST("", recommendationHandler.Recommend)
			recommend.GET("/random", recommendationHandler.RandomRecommend)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "success",
			"message": "Server is running",
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "success",
			"message": "KNN Music Recommendation API",
			"version": "1.0.0",
		})
	})

	return router
}
