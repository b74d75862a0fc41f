package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	RecordsPath    string
	VotesPath      string
	GeoPath        string
	VocabularyPath string
	WordColumn     string
	RegionColumn   string
	AdminKeySalt   string
	CacheTTL       time.Duration
	AllowedOrigins []string
	LogLevel       string
}

// HasAdmin reports whether admin routes are enabled
func (c Config) HasAdmin() bool {
	return c.AdminKeySalt != ""
}

// LoadEnv reads KEY=VALUE files into the environment without overriding
// variables that are already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var origins string

	fs := flag.NewFlagSet("okresy", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&origins, "origins", "", "Comma separated CORS origins")

	// Data sources
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.RecordsPath, "records", "", "Raw survey answers (.csv, .tsv, .xlsx)")
	fs.StringVar(&cfg.VotesPath, "votes", "", "Precomputed votes.json")
	fs.StringVar(&cfg.GeoPath, "geo", "", "District boundaries (GeoJSON)")
	fs.StringVar(&cfg.VocabularyPath, "vocab", "", "Vocabulary YAML")
	fs.StringVar(&cfg.WordColumn, "word-column", "", "Header of the answer column")
	fs.StringVar(&cfg.RegionColumn, "region-column", "", "Header of the district column")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", 0, "Per-region stats cache TTL")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "debug, info, warn or error")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	fallback(&cfg.DatabaseURL, "DATABASE_URL")
	fallback(&cfg.DatabaseType, "DATABASE_TYPE")
	fallback(&cfg.RecordsPath, "RECORDS_PATH")
	fallback(&cfg.VotesPath, "VOTES_PATH")
	fallback(&cfg.GeoPath, "GEO_PATH")
	fallback(&cfg.VocabularyPath, "VOCABULARY_PATH")
	fallback(&cfg.WordColumn, "WORD_COLUMN")
	fallback(&cfg.RegionColumn, "REGION_COLUMN")
	fallback(&cfg.AdminKeySalt, "ADMIN_KEY_SALT")
	fallback(&cfg.LogLevel, "LOG_LEVEL")
	fallback(&origins, "ALLOWED_ORIGINS")

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = "sqlite"
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.CacheTTL == 0 {
		if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
			d, err := time.ParseDuration(ttl)
			if err != nil {
				return Config{}, errors.New("invalid CACHE_TTL env variable")
			}
			cfg.CacheTTL = d
		} else {
			cfg.CacheTTL = 10 * time.Minute
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	// Data sources - MUST be provided
	if cfg.GeoPath == "" {
		return Config{}, errors.New("boundary file required (use -geo or GEO_PATH env)")
	}
	if cfg.VotesPath == "" && cfg.RecordsPath == "" && cfg.DatabaseURL == "" {
		return Config{}, errors.New("survey data required (use -votes, -records or -d)")
	}

	return cfg, nil
}

func fallback(dst *string, env string) {
	if *dst == "" {
		*dst = os.Getenv(env)
	}
}

// ParseLevel maps debug/info/warn/error to a slog level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
