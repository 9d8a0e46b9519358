package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP              string // Host IP for the server
	RESTPort            int    // Port for the REST API
	DBHost              string // Hostname or IP address for the database
	DBPort              int    // Port number for the database
	DBUser              string // Username for the database
	DBPassword          string // Password for the database
	DBName              string // Name of the database
	RedisAddr           string // host:port of the Redis server
	RedisPassword       string // Password for Redis, empty when none
	CacheTTLSeconds     int    // Lifetime of cached mazes
	GinMode             string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret           string // Secret key for replay token signing
	JWTIssuer           string // Issuer claim for replay tokens
	ReplayTokenTTLHours int    // Lifetime of replay tokens
	MaxBatch            int    // Largest number of mazes one request may generate
}

// Envs holds the application's configuration once Load has run.
var Envs Config

// Load reads the configuration from the environment, loading a .env file
// first when one is present. Missing required variables are fatal.
func Load() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	// Populate the Config struct with required environment variables
	Envs = Config{
		DBHost:              mustGetEnv("DB_HOST"),
		DBPort:              mustGetEnvAsInt("DB_PORT"),
		DBUser:              mustGetEnv("DB_USER"),
		DBPassword:          mustGetEnv("DB_PASS"),
		DBName:              mustGetEnv("DB_NAME"),
		RedisAddr:           mustGetEnv("REDIS_ADDR"),
		RedisPassword:       getEnvWithDefault("REDIS_PASSWORD", ""),
		CacheTTLSeconds:     getEnvAsIntWithDefault("CACHE_TTL_SECONDS", 3600),
		GinMode:             getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:           mustGetEnv("JWT_SECRET"),
		JWTIssuer:           mustGetEnv("JWT_ISSUER"),
		ReplayTokenTTLHours: getEnvAsIntWithDefault("REPLAY_TOKEN_TTL_HOURS", 720),
		MaxBatch:            getEnvAsIntWithDefault("MAX_BATCH", 16),
		HostIP:              mustGetEnv("HOST_IP"),
		RESTPort:            mustGetEnvAsInt("REST_PORT"),
	}
	return Envs
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to defaultValue when it is not set.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	if _, exists := os.LookupEnv(key); !exists {
		return defaultValue
	}
	return mustGetEnvAsInt(key)
}
