package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joscor34/k-nearest-music-example/internal/config"
	"github.com/joscor34/k-nearest-music-example/internal/database"
	"github.com/joscor34/k-nearest-music-example/internal/dataset"
	"github.com/joscor34/k-nearest-music-example/internal/handlers"
	"github.com/joscor34/k-nearest-music-example/internal/models"
	"github.com/joscor34/k-nearest-music-example/internal/repository"
	"github.com/joscor34/k-nearest-music-example/internal/routes"
	"github.com/joscor34/k-nearest-music-example/internal/services"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Println("Config load warning:", err)
		log.Println("Using environment variables only")
	}
	cfg := config.GlobalConfig

	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	ranges := dataset.DefaultRanges()

	songs, err := buildCatalog(cfg, ranges, rng)
	if err != nil {
		log.Fatalf("Catalog setup failed: %v", err)
	}
	log.Printf("Catalog ready: %d songs, seed %d", len(songs), cfg.RandomSeed)

	songRepo := repository.NewSongRepository(songs, rand.New(rand.NewSource(cfg.RandomSeed)))
	recService := services.NewRecommendationService(songRepo, rng)

	songHandler := handlers.NewSongHandler(songRepo, ranges)
	recommendationHandler := handlers.NewRecommendationHandler(recService)

	router := routes.SetupRoutes(songHandler, recommendationHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.ServerPort
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("KNN music recommendation API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Println("Forced shutdown:", err)
	}

	log.Println("Server exited")
}

// buildCatalog generates the song catalog, or, when a database is
// configured, reloads the one stored by a previous run so restarts keep
// serving identical songs. The database is strictly optional; any failure
// there falls back to in-memory generation.
func buildCatalog(cfg *config.Config, ranges dataset.GenreRanges, rng *rand.Rand) ([]models.Song, error) {
	if !cfg.DatabaseEnabled() {
		return dataset.Generate(cfg.DatasetSize, ranges, rng)
	}

	if err := database.ConnectDB(); err != nil {
		log.Println("Database connection failed:", err)
		log.Println("Continuing with in-memory catalog only")
		return dataset.Generate(cfg.DatasetSize, ranges, rng)
	}

	if err := database.AutoMigrate(); err != nil {
		return nil, err
	}

	if stored, ok, err := database.LoadCatalog(cfg.DatasetSize); err != nil {
		log.Println("Catalog reload failed:", err)
	} else if ok {
		log.Printf("Reusing stored catalog of %d songs", len(stored))
		return stored, nil
	}

	songs, err := dataset.Generate(cfg.DatasetSize, ranges, rng)
	if err != nil {
		return nil, err
	}
	if err := database.SaveCatalog(songs); err != nil {
		log.Println("Catalog save failed:", err)
	}
	return songs, nil
}
