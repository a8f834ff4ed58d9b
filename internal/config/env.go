package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"codeberg.org/issuetracker/server/internal/logger"
	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return FromLookup(os.LookupEnv)
}

// builds a Config from any key lookup (os.LookupEnv in production)
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if val, ok := lookup(key); ok && strings.TrimSpace(val) != "" {
			return strings.TrimSpace(val)
		}
		return def
	}

	port := strings.TrimPrefix(get("PORT", defaultPort), ":")
	if !isPort(port) {
		return nil, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", port)
	}

	environment := strings.ToLower(get("ENVIRONMENT", EnvDevelopment))
	switch environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return nil, fmt.Errorf("ENVIRONMENT must be one of development, staging, production, got %q", environment)
	}

	logLevel := strings.ToLower(get("LOG_LEVEL", ""))
	if !logger.IsValidLevel(logLevel) {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", logLevel)
	}

	origins := splitAndTrim(get("CORS_ALLOWED_ORIGINS", "*"))
	for _, origin := range origins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must start with http:// or https://", origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	api := APIInfo{
		Title:       get("API_TITLE", defaultAPITitle),
		Version:     get("API_VERSION", defaultAPIVersion),
		Description: get("API_DESCRIPTION", defaultAPIDescription),
	}
	// the values are spliced into the api document template as json strings
	for key, val := range map[string]string{
		"API_TITLE":       api.Title,
		"API_VERSION":     api.Version,
		"API_DESCRIPTION": api.Description,
	} {
		if !isDocSafe(val) {
			return nil, fmt.Errorf("%s must not contain quotes, backslashes or control characters, got %q", key, val)
		}
	}

	return &Config{
		Port:               port,
		Environment:        environment,
		LogLevel:           logLevel,
		CORSAllowedOrigins: origins,
		RateLimit:          get("RATE_LIMIT", ""),
		RedisURL:           get("REDIS_URL", ""),
		API:                api,
	}, nil
}

// listen address for http.Server
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// true when every origin is allowed
func (c *Config) AllowAllOrigins() bool {
	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func isPort(raw string) bool {
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}

	n, err := strconv.Atoi(raw)
	return err == nil && n > 0 && n <= 65535
}

func isDocSafe(raw string) bool {
	return !strings.ContainsFunc(raw, func(r rune) bool {
		return r == '"' || r == '\\' || unicode.IsControl(r)
	})
}
