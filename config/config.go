// config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultServerPort      = 3000
	DefaultLogLevel        = "info"
	DefaultGeniusBaseURL   = "https://genius.com/api"
	DefaultGeniusTimeout   = 10 * time.Second
	DefaultRateLimitWindow = 15 * time.Minute
	DefaultRateLimitMax    = 100
)

type Config struct {
	ServerPort int
	LogLevel   string

	GeniusBaseURL     string
	GeniusAccessToken string
	GeniusTimeout     time.Duration
	// GeniusRPS caps outbound requests per second; zero disables the cap.
	GeniusRPS float64

	RateLimitWindow time.Duration
	RateLimitMax    int
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	serverPort, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || serverPort <= 0 {
		serverPort = DefaultServerPort
	}

	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if _, err := zapcore.ParseLevel(logLevel); err != nil || logLevel == "" {
		logLevel = DefaultLogLevel
	}

	baseURL := strings.TrimRight(os.Getenv("GENIUS_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = DefaultGeniusBaseURL
	}

	timeout, err := time.ParseDuration(os.Getenv("GENIUS_TIMEOUT"))
	if err != nil || timeout <= 0 {
		timeout = DefaultGeniusTimeout
	}

	rps, err := strconv.ParseFloat(os.Getenv("GENIUS_RPS"), 64)
	if err != nil || rps < 0 {
		rps = 0
	}

	window, err := time.ParseDuration(os.Getenv("RATE_LIMIT_WINDOW"))
	if err != nil || window <= 0 {
		window = DefaultRateLimitWindow
	}

	maxRequests, err := strconv.Atoi(os.Getenv("RATE_LIMIT_MAX"))
	if err != nil || maxRequests <= 0 {
		maxRequests = DefaultRateLimitMax
	}

	return &Config{
		ServerPort:        serverPort,
		LogLevel:          logLevel,
		GeniusBaseURL:     baseURL,
		GeniusAccessToken: os.Getenv("GENIUS_ACCESS_TOKEN"),
		GeniusTimeout:     timeout,
		GeniusRPS:         rps,
		RateLimitWindow:   window,
		RateLimitMax:      maxRequests,
	}, nil
}
