// Package config reads the application settings from the environment.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles are the dotenv files LoadEnvFiles tries, in order.
var DefaultEnvFiles = []string{"config/local.env", ".env"}

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	CORS     CORSConfig
	Logging  LoggingConfig
	Startup  StartupConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL      string // Full PostgreSQL URL
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// StartupConfig holds the optional work done before serving
type StartupConfig struct {
	MigrateOnStart bool
	SeedDemoData   bool
}

// Addr is the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoadEnvFiles loads the first dotenv files that exist without overriding
// variables already set. Missing files are skipped.
func LoadEnvFiles(paths ...string) {
	if len(paths) == 0 {
		paths = DefaultEnvFiles
	}
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}

// Load reads configuration from environment variables and reports every
// invalid setting at once.
func Load() (*Config, error) {
	cfg := &Config{}
	var problems []string

	problems = append(problems, cfg.loadDatabase()...)
	problems = append(problems, cfg.loadServer()...)
	problems = append(problems, cfg.loadStartup()...)
	cfg.loadCORS()
	cfg.loadLogging()

	problems = append(problems, cfg.validate()...)
	if len(problems) > 0 {
		return nil, fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}

	return cfg, nil
}

func (c *Config) loadDatabase() []string {
	var problems []string

	c.Database.URL = os.Getenv("DATABASE_URL")
	if c.Database.URL != "" {
		return nil
	}

	c.Database.Host = getEnvOrDefault("DB_HOST", "localhost")
	c.Database.User = os.Getenv("DB_USER")
	c.Database.Password = os.Getenv("DB_PASSWORD")
	c.Database.Name = os.Getenv("DB_NAME")
	c.Database.SSLMode = getEnvOrDefault("DB_SSLMODE", "disable")

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		problems = append(problems, "DB_PORT must be a number")
	}
	c.Database.Port = port

	if c.Database.User != "" && c.Database.Name != "" {
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.Database.User, c.Database.Password),
			Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
			Path:     "/" + c.Database.Name,
			RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
		}
		c.Database.URL = u.String()
	}

	return problems
}

func (c *Config) loadServer() []string {
	var problems []string

	port, err := strconv.Atoi(getEnvOrDefault("PORT", "5000"))
	if err != nil {
		problems = append(problems, "PORT must be a number")
	}
	c.Server.Port = port
	c.Server.Host = getEnvOrDefault("HOST", "0.0.0.0")

	durations := []struct {
		key      string
		fallback string
		target   *time.Duration
	}{
		{"HTTP_READ_TIMEOUT", "15s", &c.Server.ReadTimeout},
		{"HTTP_WRITE_TIMEOUT", "15s", &c.Server.WriteTimeout},
		{"HTTP_IDLE_TIMEOUT", "60s", &c.Server.IdleTimeout},
		{"SHUTDOWN_TIMEOUT", "10s", &c.Server.ShutdownTimeout},
	}
	for _, d := range durations {
		value, err := time.ParseDuration(getEnvOrDefault(d.key, d.fallback))
		if err != nil || value <= 0 {
			problems = append(problems, d.key+" must be a positive duration")
			continue
		}
		*d.target = value
	}

	return problems
}

func (c *Config) loadStartup() []string {
	var problems []string
	flags := []struct {
		key    string
		target *bool
	}{
		{"MIGRATE_ON_START", &c.Startup.MigrateOnStart},
		{"SEED_DEMO_DATA", &c.Startup.SeedDemoData},
	}
	for _, f := range flags {
		raw := os.Getenv(f.key)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			problems = append(problems, f.key+" must be true or false")
			continue
		}
		*f.target = value
	}
	return problems
}

func (c *Config) loadCORS() {
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default for local development
		c.CORS.AllowedOrigins = []string{"http://localhost:5000"}
		return
	}

	for _, origin := range strings.Split(originsEnv, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			c.CORS.AllowedOrigins = append(c.CORS.AllowedOrigins, trimmed)
		}
	}
}

func (c *Config) loadLogging() {
	c.Logging.Level = getEnvOrDefault("LOG_LEVEL", "info")
	c.Logging.Format = getEnvOrDefault("LOG_FORMAT", "json")
}

func (c *Config) validate() []string {
	var problems []string

	if c.Database.URL == "" {
		problems = append(problems, "DATABASE_URL is required (or DB_USER and DB_NAME)")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, "PORT must be between 1 and 65535")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		problems = append(problems, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		problems = append(problems, "LOG_FORMAT must be one of: json, text")
	}

	return problems
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
