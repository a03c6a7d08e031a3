package main

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/hupe1980/veclen"
)

// Config validation errors
var (
	ErrInvalidVectors    = errors.New("vectors must not be negative")
	ErrInvalidIterations = errors.New("iterations must be positive")
	ErrInvalidAllocator  = errors.New("allocator must be 'heap' or 'arena'")
	ErrInvalidLogFormat  = errors.New("log_format must be 'json' or 'text'")
	ErrInvalidLogLevel   = errors.New("log_level must be debug, info, warn, or error")
)

// Config is read from VECLEN_* environment variables.
type Config struct {
	Vectors    int    `envconfig:"VECTORS" default:"4194304"`
	Iterations int    `envconfig:"ITERATIONS" default:"100"`
	Strategy   string `envconfig:"STRATEGY" default:"auto"`
	Seed       uint64 `envconfig:"SEED" default:"0"` // 0 seeds from the clock
	Allocator  string `envconfig:"ALLOCATOR" default:"heap"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat  string `envconfig:"LOG_FORMAT" default:"text"`
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		Vectors:    veclen.DefaultVectors,
		Iterations: veclen.DefaultIterations,
		Strategy:   "auto",
		Allocator:  "heap",
		LogLevel:   "warn",
		LogFormat:  "text",
	}
}

// LoadConfig reads an optional .env file, then the environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// A missing file is fine.
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := envconfig.Process("VECLEN", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.Vectors < 0 {
		return ErrInvalidVectors
	}
	if cfg.Iterations <= 0 {
		return ErrInvalidIterations
	}
	if _, err := veclen.ParseStrategy(cfg.Strategy); err != nil {
		return err
	}
	if cfg.Allocator != "heap" && cfg.Allocator != "arena" {
		return ErrInvalidAllocator
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return ErrInvalidLogFormat
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, ErrInvalidLogLevel
	}
}

// BuildLogger creates the logger described by cfg.
func BuildLogger(cfg *Config) *veclen.Logger {
	level, _ := ParseLogLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		return veclen.NewJSONLogger(level)
	}
	return veclen.NewTextLogger(level)
}

// BuildOptions translates cfg into benchmark options.
func BuildOptions(cfg *Config, logger *veclen.Logger) ([]veclen.Option, error) {
	s, err := veclen.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	opts := []veclen.Option{
		veclen.WithVectors(cfg.Vectors),
		veclen.WithIterations(cfg.Iterations),
		veclen.WithStrategy(s),
		veclen.WithSeed(cfg.Seed),
		veclen.WithLogger(logger),
	}

	if cfg.Allocator == "arena" && cfg.Vectors > 0 {
		arena, err := veclen.NewArena(veclen.ArenaSize(cfg.Vectors))
		if err != nil {
			return nil, err
		}
		opts = append(opts, veclen.WithAllocator(arena))
	}
	return opts, nil
}
