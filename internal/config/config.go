package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/passgenie/passgenie-go/internal/crypto"
)

// Embedded detection modes.
const (
	EmbeddedAuto  = "auto"
	EmbeddedTrue  = "true"
	EmbeddedFalse = "false"
)

var (
	ErrInvalidLength   = errors.New("PASSGENIE_LENGTH must be a positive integer")
	ErrInvalidEmbedded = errors.New("PASSGENIE_EMBEDDED must be auto, true or false")
	ErrInvalidLogLevel = errors.New("LOG_LEVEL must be debug, info, warn or error")
	ErrInsecureSource  = errors.New("production requires the crypto random source")
)

type Config struct {
	Env         string
	LogLevel    string
	LogFile     string
	Length      int
	Classes     []crypto.CharacterClass
	Random      string
	Seed        string
	AllowWeak   bool
	Embedded    string
	GenerateRPS float64
}

// Load reads the configuration from the environment. Unparseable values
// are reported by Validate.
func Load() (Config, error) {
	cfg := Config{
		Env:         getEnv("ENV", "development"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFile:     getEnv("LOG_FILE", ""),
		Random:      strings.ToLower(getEnv("PASSGENIE_RANDOM", crypto.SourceCrypto)),
		Seed:        getEnv("PASSGENIE_SEED", ""),
		AllowWeak:   getBool("PASSGENIE_ALLOW_WEAK_RANDOM", false),
		Embedded:    strings.ToLower(getEnv("PASSGENIE_EMBEDDED", EmbeddedAuto)),
		GenerateRPS: getFloat("PASSGENIE_GENERATE_RPS", 8),
	}

	length, err := strconv.Atoi(getEnv("PASSGENIE_LENGTH", "16"))
	if err != nil {
		return cfg, ErrInvalidLength
	}
	cfg.Length = length

	classes, err := crypto.ParseClasses(getEnv("PASSGENIE_CLASSES", "lower,upper,digits,symbols"))
	if err != nil {
		return cfg, fmt.Errorf("PASSGENIE_CLASSES: %w", err)
	}
	cfg.Classes = classes

	return cfg, cfg.Validate()
}

// Validate checks the configuration for values that cannot be used.
func (c Config) Validate() error {
	if c.Length < 1 {
		return ErrInvalidLength
	}
	if len(c.Classes) == 0 {
		return fmt.Errorf("PASSGENIE_CLASSES: %w", crypto.ErrNoCharacterTypes)
	}
	switch c.Embedded {
	case EmbeddedAuto, EmbeddedTrue, EmbeddedFalse:
	default:
		return ErrInvalidEmbedded
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Env == "production" && (c.Random != crypto.SourceCrypto || c.AllowWeak) {
		return ErrInsecureSource
	}
	return nil
}

// Logger builds the slog logger described by the configuration. When quiet
// is set and no log file is configured, logs are discarded so they do not
// draw over a full-screen UI.
func (c Config) Logger(quiet bool) (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return slog.New(slog.NewJSONHandler(f, opts)), f, nil
	}

	var w io.Writer = os.Stderr
	if quiet {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, opts)), io.NopCloser(nil), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, ErrInvalidLogLevel
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}
