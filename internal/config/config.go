package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	JWT      JWTConfig
	GitHub   GitHubConfig
	Deploy   DeployConfig
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string //nolint:gosec // G117: DB connection config
	DBName   string
	SSLMode  string
	MaxConns int
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string
}

// JWTConfig holds the admin-gate verification settings. Tokens are issued
// by the site's dashboard layer; this service only verifies them.
type JWTConfig struct {
	Secret string //nolint:gosec // G117: JWT verification secret config
}

// GitHubConfig holds provider endpoint settings. The defaults point at
// github.com; overrides exist for testing against a stub.
type GitHubConfig struct {
	APIBaseURL string
	GraphQLURL string
	Owner      string
}

// DeployConfig holds local deployment settings.
type DeployConfig struct {
	ProjectsDir string
	CloneDepth  int
}

// Load reads configuration from environment variables.
// Defaults are safe for local development only. In production the JWT
// secret and DB password must be set explicitly.
func Load() (*Config, error) {
	dbPort, err := getEnvInt("PROVISIONER_DB_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	dbMaxConns, err := getEnvInt("PROVISIONER_DB_MAX_CONNS", 10)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	readTimeout, err := getEnvDuration("PROVISIONER_SERVER_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	writeTimeout, err := getEnvDuration("PROVISIONER_SERVER_WRITE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	cloneDepth, err := getEnvInt("PROVISIONER_CLONE_DEPTH", 1)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	corsOrigins := getEnvList("PROVISIONER_CORS_ORIGINS", []string{"http://localhost:5173"})

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("PROVISIONER_DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("PROVISIONER_DB_USER", "provisioner"),
			Password: getEnv("PROVISIONER_DB_PASSWORD", ""),
			DBName:   getEnv("PROVISIONER_DB_NAME", "provisioner_dev"),
			SSLMode:  getEnv("PROVISIONER_DB_SSLMODE", "disable"),
			MaxConns: dbMaxConns,
		},
		Server: ServerConfig{
			Addr:         getEnv("PROVISIONER_SERVER_ADDR", ":8080"),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			CORSOrigins:  corsOrigins,
		},
		JWT: JWTConfig{
			Secret: getEnv("PROVISIONER_JWT_SECRET", ""),
		},
		GitHub: GitHubConfig{
			APIBaseURL: getEnv("PROVISIONER_GITHUB_API_URL", ""),
			GraphQLURL: getEnv("PROVISIONER_GITHUB_GRAPHQL_URL", "https://api.github.com/graphql"),
			Owner:      getEnv("PROVISIONER_GITHUB_OWNER", ""),
		},
		Deploy: DeployConfig{
			ProjectsDir: getEnv("PROVISIONER_PROJECTS_DIR", "projects"),
			CloneDepth:  cloneDepth,
		},
	}

	err = cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

// validate checks required fields and value bounds.
func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return errors.New("PROVISIONER_JWT_SECRET is required")
	}
	if len(c.JWT.Secret) < 32 {
		return errors.New("PROVISIONER_JWT_SECRET must be at least 32 characters")
	}

	if c.Database.SSLMode == "disable" {
		log.Warn().Msg("PROVISIONER_DB_SSLMODE=disable is insecure for production; set to 'require' or 'verify-full'")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("PROVISIONER_DB_PORT must be 1-65535, got %d", c.Database.Port)
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("PROVISIONER_DB_MAX_CONNS must be >= 1, got %d", c.Database.MaxConns)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("PROVISIONER_SERVER_READ_TIMEOUT must be positive, got %s", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("PROVISIONER_SERVER_WRITE_TIMEOUT must be positive, got %s", c.Server.WriteTimeout)
	}
	if c.Deploy.ProjectsDir == "" {
		return errors.New("PROVISIONER_PROJECTS_DIR must not be empty")
	}
	if c.Deploy.CloneDepth < 0 {
		return fmt.Errorf("PROVISIONER_CLONE_DEPTH must be >= 0, got %d", c.Deploy.CloneDepth)
	}

	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as int: %w", key, v, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as duration: %w", key, v, err)
	}
	return d, nil
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
