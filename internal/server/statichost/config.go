package statichost

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the static host settings.
type Config struct {
	Port      string
	StaticDir string
}

// LoadConfig reads settings from the environment, with an optional .env
// overlay. A missing .env file is not an error.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "4200"),
		StaticDir: getEnv("STATIC_DIR", "web"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
