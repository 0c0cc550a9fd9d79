package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment-provided settings.
type Config struct {
	MongoURI    string
	DBName      string
	TokenSecret string
	Port        string
}

// Load reads configuration from the environment, honoring a local .env
// file when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		MongoURI:    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "bistro_boss"),
		TokenSecret: getEnv("ACCESS_TOKEN_SECRET", "bistro_boss_access_secret"),
		Port:        getEnv("PORT", "5000"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
