package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"golang.org/x/crypto/bcrypt" // hashing of the shared staff password
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The zero-friction default is a file-backed
// store with auth disabled, which is how the original single-binary
// deployment ran; redis/mysql drivers and JWT auth opt in via env.
type Config struct {
	Env               string // application environment (e.g. "dev", "prod")
	Port              string // HTTP port to listen on
	StoreDriver       string // snapshot driver: file, redis, mysql or memory
	DataFile          string // snapshot path for the file driver
	DBUser            string // database username (mysql driver only)
	DBPass            string // database password (optional)
	DBHost            string // database host address
	DBPort            string // database port number
	DBName            string // database name
	JWTSecret         string // secret used to sign JWTs; empty disables auth
	AccessTTLMin      int    // access token time-to-live in minutes
	BcryptCost        int    // bcrypt cost for hashing the staff password
	StaffPasswordHash string // bcrypt hash of the shared floor password
}

// Load reads configuration values from environment variables and returns
// a Config.  Only the mysql driver has hard-required variables; everything
// else falls back to a sensible default so the binary starts with an
// empty environment.
func Load() Config {
	cfg := Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "8080"),
		StoreDriver:  getenv("STORE_DRIVER", "file"),
		DataFile:     getenv("DATA_FILE", "restaurant_data.json"),
		DBPass:       os.Getenv("DB_PASS"), // empty allowed
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AccessTTLMin: getenvInt("ACCESS_TOKEN_TTL_MIN", 480),
		BcryptCost:   getenvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
	if cfg.StoreDriver == "mysql" {
		cfg.DBUser = must("DB_USER")
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	if cfg.JWTSecret != "" {
		// Hash once at startup so login only ever compares.
		pass := getenv("STAFF_PASSWORD", "service")
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), cfg.BcryptCost)
		if err != nil {
			log.Fatalf("hashing STAFF_PASSWORD failed: %v", err)
		}
		cfg.StaffPasswordHash = string(hash)
	}
	return cfg
}

// getenv retrieves an environment variable or falls back to def when it
// is unset or empty.
func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// getenvInt is like getenv but converts the value to an integer.  A
// malformed value is fatal rather than silently defaulted.
func getenvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
