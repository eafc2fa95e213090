package config // package config loads application configuration from environment variables

import (
	"log"     // log reports a .env file that exists but cannot be parsed
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPort is the port used when PORT is unset or not a valid TCP port.
const DefaultPort = 5000

// Config holds all runtime configuration values.  It is read once at
// startup and never changes for the lifetime of the process.
type Config struct {
	Env             string        // application environment (e.g. "development", "production")
	Port            int           // HTTP port to listen on
	LogLevel        string        // echo logger level: debug, info, warn, error, off
	ShutdownTimeout time.Duration // how long in-flight requests get on SIGTERM
	RateLimit       RateLimitConfig
}

// Addr is the listen address: all interfaces on the configured port.
func (c Config) Addr() string {
	return "0.0.0.0:" + strconv.Itoa(c.Port)
}

// Load reads an optional .env file and then the process environment.
// Unlike required settings in larger services, nothing here is fatal:
// every malformed value falls back to its default.
func Load() Config {
	loadDotEnv(envStr("DOTENV_FILE", ".env"))
	return Config{
		Env:             envStr("APP_ENV", "production"),
		Port:            parsePort(os.Getenv("PORT")),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		ShutdownTimeout: envDur("SHUTDOWN_TIMEOUT", 10*time.Second),
		RateLimit:       LoadRateLimitConfig(),
	}
}

// loadDotEnv populates missing variables from path.  Variables already set
// in the environment are left untouched.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("config: ignoring %s: %v", path, err)
	}
}

// parsePort accepts a decimal TCP port in 1..65535, ignoring surrounding
// whitespace.  Anything else, including an empty string, yields DefaultPort.
func parsePort(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 65535 {
		return DefaultPort
	}
	return n
}
