package config

import (
	"os"
	"strconv"
	"time"

	"github.com/subosito/gotenv"
)

// Config is the process configuration, read from the environment once at
// startup.
type Config struct {
	Port string

	// GoogleAPIKey gates the generative model. When empty the service still
	// starts; every generation-dependent endpoint answers with its fallback
	// payload.
	GoogleAPIKey string

	FastModel    string
	QualityModel string

	// ModelTimeout bounds a single generation call, retry included.
	ModelTimeout time.Duration

	// JWTSecret enables backend-to-backend auth when set. Empty means open
	// routes.
	JWTSecret string
	APIKey    string
	APISecret string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	gotenv.Load()

	return Config{
		Port:         getenv("PORT", "8000"),
		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		FastModel:    getenv("GEMINI_FLASH_MODEL", "gemini-2.5-flash"),
		QualityModel: getenv("GEMINI_PRO_MODEL", "gemini-2.5-pro"),
		ModelTimeout: getenvDuration("MODEL_TIMEOUT_SECONDS", 60*time.Second),
		JWTSecret:    os.Getenv("SAFEGUARD_JWT_SECRET"),
		APIKey:       os.Getenv("SAFEGUARD_API_KEY"),
		APISecret:    os.Getenv("SAFEGUARD_API_SECRET"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
