package config

import (
	"os"
	"strconv"
	"time"

	"drivexam_web/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	BackendAPIURL string
	SessionSecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LogLevel string
	LogJSON  bool

	DefaultLang string

	// Referral slot expiry. A captured code survives navigation and reloads
	// until registration succeeds or the slot expires.
	ReferralTTL time.Duration

	// Rate limits
	PageRateLimit  int
	PageRateWindow time.Duration
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// Load reads configuration from the environment (.env is honored when present).
func Load() *Config {
	_ = godotenv.Load()

	backendURL := os.Getenv("BACKEND_API_URL")
	if backendURL == "" {
		logger.Fatal("BACKEND_API_URL is not set")
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		logger.Fatal("SESSION_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	lang := os.Getenv("DEFAULT_LANG")
	if lang == "" {
		lang = "ru"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	referralTTL := 30 * 24 * time.Hour
	if v := os.Getenv("REFERRAL_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			referralTTL = time.Duration(n) * time.Hour
		}
	}

	return &Config{
		AppPort:        port,
		BackendAPIURL:  backendURL,
		SessionSecret:  sessionSecret,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogJSON:        os.Getenv("LOG_JSON") == "true",
		DefaultLang:    lang,
		ReferralTTL:    referralTTL,
		PageRateLimit:  envInt("PAGE_RATE_LIMIT", 120),
		PageRateWindow: envSeconds("PAGE_RATE_WINDOW_SECONDS", time.Minute),
		AuthRateLimit:  envInt("AUTH_RATE_LIMIT", 10),
		AuthRateWindow: envSeconds("AUTH_RATE_WINDOW_SECONDS", time.Minute),
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
