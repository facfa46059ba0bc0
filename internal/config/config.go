package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendFile   = "file"
	BackendGitHub = "github"
)

// Config holds application runtime configuration.
type Config struct {
	Env             string
	HTTPPort        string
	AdminPassword   string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	StoreBackend    string
	OrdersFile      string
	CacheFile       string
	ExportFile      string
	GitHubToken     string
	GitHubRepo      string
	GitHubFilePath  string
	GitHubAPIURL    string
	ZaloPhone       string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads environment variables and .env (if present).
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:             getEnv("APP_ENV", "development"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AccessTokenTTL:  getDuration("ACCESS_TOKEN_TTL", 12*time.Hour),
		StoreBackend:    getEnv("STORE_BACKEND", BackendFile),
		OrdersFile:      getEnv("ORDERS_FILE", "data/orders.json"),
		CacheFile:       getEnv("CACHE_FILE", "data/orders.cache.json"),
		ExportFile:      getEnv("EXPORT_FILE", "data/orders.xlsx"),
		GitHubToken:     os.Getenv("GITHUB_TOKEN"),
		GitHubRepo:      getEnv("GITHUB_REPO", "hoangminhduc13012000/changemoney"),
		GitHubFilePath:  getEnv("GITHUB_FILE_PATH", "public/assets/orders.json"),
		GitHubAPIURL:    getEnv("GITHUB_API_URL", "https://api.github.com"),
		ZaloPhone:       getEnv("ZALO_PHONE", "0838182780"),
		ReadTimeout:     getDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.AdminPassword == "" {
		return cfg, errors.New("ADMIN_PASSWORD is required")
	}
	if cfg.JWTSecret == "" {
		return cfg, errors.New("JWT_SECRET is required")
	}
	switch cfg.StoreBackend {
	case BackendFile:
	case BackendGitHub:
		if cfg.GitHubToken == "" {
			return cfg, errors.New("GITHUB_TOKEN is required for the github backend")
		}
	default:
		return cfg, fmt.Errorf("unknown STORE_BACKEND %q (use file or github)", cfg.StoreBackend)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		// Support seconds as integer without suffix.
		if secs, convErr := strconv.Atoi(val); convErr == nil {
			return time.Duration(secs) * time.Second
		}
		return fallback
	}
	return d
}
