package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message;
// optional variables fall back to sensible single-device defaults.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DataDir        string // directory holding the bbolt state file and audit log
	JWTSecret      string // secret used to sign access tokens
	AccessTTLMin   int    // access token time-to-live in minutes
	DevicePassHash string // bcrypt hash of the device passphrase
	NodeID         int64  // snowflake node identifier for ID generation
	LogFile        string // optional log file path; empty disables file logging
}

// Load reads configuration from the environment, after letting godotenv
// populate it from a local .env file when one exists. The .env file is a
// convenience for development; a missing file is not an error.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Env:            optional("APP_ENV", "dev"),
		Port:           must("APP_PORT"),
		DataDir:        optional("DATA_DIR", "data"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   optionalInt("ACCESS_TOKEN_TTL_MIN", 60),
		DevicePassHash: must("DEVICE_PASS_HASH"),
		NodeID:         int64(optionalInt("NODE_ID", 1)),
		LogFile:        os.Getenv("LOG_FILE"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// optional returns the variable's value or def when unset or empty.
func optional(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// optionalInt is like optional but converts the value to an integer. An
// unparseable value is fatal rather than silently defaulted, so a typo in
// the environment does not go unnoticed.
func optionalInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
