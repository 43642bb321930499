package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string
	TMDBApiKey      string
	TMDBBaseURL     string
	TMDBImageURL    string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		TMDBApiKey:      getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL:     getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBImageURL:    getEnv("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p/original"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

