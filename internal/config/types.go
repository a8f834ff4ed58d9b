package config

type Config struct {
	Port               string
	Environment        string
	LogLevel           string
	CORSAllowedOrigins []string
	RateLimit          string // empty disables rate limiting
	RedisURL           string
	API                APIInfo
}

// metadata published in the API document
type APIInfo struct {
	Title       string
	Version     string
	Description string
}

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

const (
	defaultPort           = "8080"
	defaultAPITitle       = "Issue Tracker API"
	defaultAPIVersion     = "0.1.0"
	defaultAPIDescription = "A mini production-style API"
)
