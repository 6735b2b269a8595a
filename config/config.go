package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	APIBaseURL     string
	HTTPTimeout    time.Duration
	SearchDebounce time.Duration
	SearchMinQuery int
	SearchRate     int
	SearchBurst    int
	TeamMaxMembers int
	StubPort       string
	JwtSecret      string
	Issuer         string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	APIBaseURL = getEnv("ENGAGE_API_URL", "http://localhost:8080")
	HTTPTimeout = getEnvDuration("ENGAGE_HTTP_TIMEOUT", 10*time.Second)
	SearchDebounce = getEnvDuration("ENGAGE_SEARCH_DEBOUNCE", 300*time.Millisecond)
	SearchMinQuery = getEnvInt("ENGAGE_SEARCH_MIN_QUERY", 2)
	SearchRate = getEnvInt("ENGAGE_SEARCH_RATE", 5)
	SearchBurst = getEnvInt("ENGAGE_SEARCH_BURST", 10)
	TeamMaxMembers = getEnvInt("ENGAGE_TEAM_MAX_MEMBERS", 5)
	StubPort = getEnv("STUB_PORT", "8080")
	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "engage")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid value for %s, using default %d", key, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid value for %s, using default %s", key, fallback)
	}
	return fallback
}
