package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	Env        string
	CORSOrigin string

	// Catalog generation.
	DatasetSize int
	RandomSeed  int64

	// Query limits mirroring the demo UI sliders.
	DefaultK int
	MaxK     int

	// Optional catalog persistence. Disabled when DBHost is empty.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

var GlobalConfig *Config

// DatabaseEnabled reports whether a Postgres catalog store is configured.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	GlobalConfig = &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		CORSOrigin: getEnv("CORS_ORIGIN", ""),

		DatasetSize: getEnvInt("DATASET_SIZE", 100),
		RandomSeed:  int64(getEnvInt("RANDOM_SEED", 42)),

		DefaultK: getEnvInt("DEFAULT_K", 5),
		MaxK:     getEnvInt("MAX_K", 30),

		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "knn_music"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	if GlobalConfig.DatasetSize <= 0 {
		log.Printf("DATASET_SIZE %d is invalid, falling back to 100", GlobalConfig.DatasetSize)
		GlobalConfig.DatasetSize = 100
	}
	if GlobalConfig.DefaultK < 1 {
		GlobalConfig.DefaultK = 5
	}
	if GlobalConfig.MaxK < GlobalConfig.DefaultK {
		GlobalConfig.MaxK = GlobalConfig.DefaultK
	}
	if GlobalConfig.MaxK > GlobalConfig.DatasetSize {
		GlobalConfig.MaxK = GlobalConfig.DatasetSize
	}
	if GlobalConfig.DefaultK > GlobalConfig.MaxK {
		GlobalConfig.DefaultK = GlobalConfig.MaxK
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
