package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration options for the todo service and CLI
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Validation  ValidationConfig
	Logging     LoggingConfig
	Client      ClientConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TODO_DB_DIR"`
	Filename       string        `env:"TODO_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TODO_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TODO_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TODO_DB_DIR_PERMISSIONS"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `env:"TODO_SERVER_ADDR"`
	ShutdownTimeout time.Duration `env:"TODO_SERVER_SHUTDOWN_TIMEOUT"`
	BodyLimit       string        `env:"TODO_SERVER_BODY_LIMIT"`
	AllowOrigins    []string      `env:"TODO_SERVER_ALLOW_ORIGINS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TextMaxLength     int  `env:"TODO_VALIDATION_TEXT_MAX"`
	CategoryMaxLength int  `env:"TODO_VALIDATION_CATEGORY_MAX"`
	StrictReorder     bool `env:"TODO_VALIDATION_STRICT_REORDER"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `env:"TODO_LOG_LEVEL"`
	Format string `env:"TODO_LOG_FORMAT"`
}

// ClientConfig holds settings for CLI commands talking to a running server
type ClientConfig struct {
	BaseURL string        `env:"TODO_API_URL"`
	Timeout time.Duration `env:"TODO_CLIENT_TIMEOUT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TODO_APP_TIMEOUT"`
	Verbose bool          `env:"TODO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".todo")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "todos.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Server: ServerConfig{
			Addr:            ":3001",
			ShutdownTimeout: 30 * time.Second,
			BodyLimit:       "1M",
			AllowOrigins:    []string{"*"},
		},
		Validation: ValidationConfig{
			TextMaxLength:     500,
			CategoryMaxLength: 100,
			StrictReorder:     false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:3001",
			Timeout: 10 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the previous value is kept.
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TODO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TODO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TODO_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("TODO_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Server configuration
	if addr := os.Getenv("TODO_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if timeout := os.Getenv("TODO_SERVER_SHUTDOWN_TIMEOUT"); timeout != "" {
		c.Server.ShutdownTimeout = ParseDurationWithFallback(timeout, c.Server.ShutdownTimeout)
	}
	if limit := os.Getenv("TODO_SERVER_BODY_LIMIT"); limit != "" {
		c.Server.BodyLimit = limit
	}
	if origins := os.Getenv("TODO_SERVER_ALLOW_ORIGINS"); origins != "" {
		c.Server.AllowOrigins = SplitList(origins)
	}

	// Validation configuration
	if maxLen := os.Getenv("TODO_VALIDATION_TEXT_MAX"); maxLen != "" {
		c.Validation.TextMaxLength = ParseIntWithFallback(maxLen, c.Validation.TextMaxLength)
	}
	if maxLen := os.Getenv("TODO_VALIDATION_CATEGORY_MAX"); maxLen != "" {
		c.Validation.CategoryMaxLength = ParseIntWithFallback(maxLen, c.Validation.CategoryMaxLength)
	}
	if strict := os.Getenv("TODO_VALIDATION_STRICT_REORDER"); strict != "" {
		c.Validation.StrictReorder = ParseBoolWithFallback(strict, c.Validation.StrictReorder)
	}

	// Logging configuration
	if level := os.Getenv("TODO_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("TODO_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}

	// Client configuration
	if url := os.Getenv("TODO_API_URL"); url != "" {
		c.Client.BaseURL = url
	}
	if timeout := os.Getenv("TODO_CLIENT_TIMEOUT"); timeout != "" {
		c.Client.Timeout = ParseDurationWithFallback(timeout, c.Client.Timeout)
	}

	// Application configuration
	if timeout := os.Getenv("TODO_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}
	if len(c.Server.AllowOrigins) == 0 {
		return &ConfigError{Field: "server.allow_origins", Message: "at least one allowed origin is required"}
	}

	if c.Validation.TextMaxLength < 1 {
		return &ConfigError{Field: "validation.text_max_length", Message: "text maximum length must be at least 1"}
	}
	if c.Validation.CategoryMaxLength < 0 {
		return &ConfigError{Field: "validation.category_max_length", Message: "category maximum length cannot be negative"}
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "log format must be text or json"}
	}

	if c.Client.BaseURL == "" {
		return &ConfigError{Field: "client.base_url", Message: "API base URL cannot be empty"}
	}
	if c.Client.Timeout <= 0 {
		return &ConfigError{Field: "client.timeout", Message: "client timeout must be positive"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// SplitList splits a comma separated list, dropping empty items.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
