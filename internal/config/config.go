package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/vytor/lexiflash/internal/logger"
)

type Config struct {
	Addr                string
	DBPath              string
	LogLevel            string
	ImportWorkerCount   int
	ImportQueueSize     int
	PracticeDefaultSize int
	PracticeMaxSize     int
	DifficultMaxRate    int
	DefaultCollation    string
	// UploadDir holds queued import files. Empty means the OS temp dir.
	UploadDir string
	// CORSAllowedOrigins enables CORS for the listed origins. Empty disables it.
	CORSAllowedOrigins []string
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		DBPath:              envOr("DB_PATH", "file:lexiflash.db"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		ImportWorkerCount:   envIntOr("IMPORT_WORKER_COUNT", 2),
		ImportQueueSize:     envIntOr("IMPORT_QUEUE_SIZE", 16),
		PracticeDefaultSize: envIntOr("PRACTICE_DEFAULT_SIZE", 20),
		PracticeMaxSize:     envIntOr("PRACTICE_MAX_SIZE", 200),
		DifficultMaxRate:    envIntOr("DIFFICULT_MAX_RATE", 2),
		DefaultCollation:    envOr("DEFAULT_COLLATION", "en"),
		UploadDir:           os.Getenv("UPLOAD_DIR"),
		CORSAllowedOrigins:  envListOr("CORS_ALLOWED_ORIGINS", nil),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("DB_PATH cannot be empty"))
	}
	if _, ok := logger.LookupLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel))
	}
	if c.ImportWorkerCount <= 0 {
		errs = append(errs, fmt.Errorf("IMPORT_WORKER_COUNT must be positive, got %d", c.ImportWorkerCount))
	}
	if c.ImportQueueSize <= 0 {
		errs = append(errs, fmt.Errorf("IMPORT_QUEUE_SIZE must be positive, got %d", c.ImportQueueSize))
	}
	if c.PracticeDefaultSize <= 0 {
		errs = append(errs, fmt.Errorf("PRACTICE_DEFAULT_SIZE must be positive, got %d", c.PracticeDefaultSize))
	}
	if c.PracticeMaxSize < c.PracticeDefaultSize {
		errs = append(errs, fmt.Errorf("PRACTICE_MAX_SIZE (%d) must not be below PRACTICE_DEFAULT_SIZE (%d)", c.PracticeMaxSize, c.PracticeDefaultSize))
	}
	if c.DifficultMaxRate < 0 || c.DifficultMaxRate > 5 {
		errs = append(errs, fmt.Errorf("DIFFICULT_MAX_RATE must be between 0 and 5, got %d", c.DifficultMaxRate))
	}
	if _, err := language.Parse(c.DefaultCollation); err != nil {
		errs = append(errs, fmt.Errorf("DEFAULT_COLLATION %q is not a language tag: %w", c.DefaultCollation, err))
	}
	return errors.Join(errs...)
}

// Collation returns the parsed DefaultCollation, or English when it does not
// parse.
func (c Config) Collation() language.Tag {
	tag, err := language.Parse(c.DefaultCollation)
	if err != nil {
		return language.English
	}
	return tag
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

// envListOr splits a comma separated variable, dropping blank entries.
func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
