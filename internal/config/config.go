package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting lists

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string   // Application port
	DBDriver        string   // Database driver: mysql, postgres or sqlite
	DatabaseURL     string   // Database connection string
	SecretKey       string   // Key for CSRF token derivation
	JWTSecret       string   // JWT signing key
	JWTCookieSecure bool     // Secure flag on auth cookies
	CORSOrigins     []string // Allowed CORS origins
	RedisAddr       string   // Redis server address, empty disables Redis
	RedisPass       string   // Redis password
	RedisDB         int      // Redis database number
	IsProd          bool     // Is production environment
	LogLevel        string   // Logrus level
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	driver := getEnv("DB_DRIVER", "mysql")
	return &Config{
		AppPort:         getEnv("APP_PORT", "5555"),                                                       // Application port
		DBDriver:        driver,                                                                           // Database driver
		DatabaseURL:     databaseURL(driver),                                                              // Database DSN
		SecretKey:       getEnv("SECRET_KEY", "dev"),                                                      // CSRF key
		JWTSecret:       getEnv("JWT_SECRET_KEY", "dev-jwt-secret"),                                       // JWT secret key
		JWTCookieSecure: os.Getenv("JWT_COOKIE_SECURE") == "true",                                         // Secure cookies
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")), // CORS origins
		RedisAddr:       os.Getenv("REDIS_ADDR"),                                                          // Redis server address
		RedisPass:       os.Getenv("REDIS_PASS"),                                                          // Redis password
		RedisDB:         redisDB,                                                                          // Redis database number
		IsProd:          os.Getenv("IS_PROD") == "true",                                                   // Is production environment
		LogLevel:        getEnv("LOG_LEVEL", "info"),                                                      // Log level
	}
}

// databaseURL prefers DATABASE_URL and falls back to the MySQL parts
func databaseURL(driver string) string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	if driver != "mysql" {
		return ""
	}
	// Build the Data Source Name (DSN) for MySQL
	return os.Getenv("DB_USER") + ":" + os.Getenv("DB_PASSWORD") + "@tcp(" + os.Getenv("DB_HOST") + ":" + os.Getenv("DB_PORT") + ")/" + os.Getenv("DB_NAME") + "?parseTime=true"
}

// getEnv returns the variable or a fallback when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList splits a comma separated list, dropping empty items
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
