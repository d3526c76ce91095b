package config

import (
	"os"
	"strconv"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration
type AuthConfig struct {
	JWTSecret       string
	TokenTTLSeconds int
}

// CORS configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Seed admin account configuration
type AdminConfig struct {
	Email    string
	Password string
}

// Logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	CORS   CORSConfig
	Admin  AdminConfig
	Log    LogConfig
}

// Default configuration values
const (
	DefaultServerPort = "5000"
	DefaultServerHost = ""
	DefaultMongoURI   = "mongodb://localhost:27017/gavel"
	DefaultMongoDB    = "gavel"
	// DefaultJWTSecret is intentionally weak and must be overridden outside
	// local development.
	DefaultJWTSecret       = "supersecretkey"
	DefaultTokenTTLSeconds = 3600
	DefaultAllowedOrigins  = "http://localhost:5173"
	DefaultAdminEmail      = "admin@gavel.local"
	DefaultAdminPassword   = "changeme"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	// Pagination defaults for candidate interview listings
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// New returns a new Config with values from the environment, falling back to
// defaults.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", getEnv("PORT", DefaultServerPort)),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", DefaultJWTSecret),
			TokenTTLSeconds: getEnvInt("TOKEN_TTL_SECONDS", DefaultTokenTTLSeconds),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", DefaultAllowedOrigins)),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", DefaultAdminEmail),
			Password: getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", DefaultLogLevel),
			Format: getEnv("LOG_FORMAT", DefaultLogFormat),
		},
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
