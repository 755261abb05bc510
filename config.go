package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio-motion/motion"
)

// Config holds everything the server reads from the environment (or .env).
type Config struct {
	Port        string
	TemplateDir string
	Typewriter  motion.Timing
	TrailLength int
	SessionTTL  time.Duration
	// LogLevel turns on motion's debug logging; nil keeps it silent.
	LogLevel    *slog.Level
}

func loadConfig() *Config {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		TemplateDir: os.Getenv("TEMPLATE_DIR"),
		Typewriter: motion.Timing{
			Typing:   envMillis("TYPEWRITER_TYPING_MS", 100*time.Millisecond),
			Deleting: envMillis("TYPEWRITER_DELETING_MS", 50*time.Millisecond),
			Pause:    envMillis("TYPEWRITER_PAUSE_MS", 2*time.Second),
		},
		TrailLength: envInt("CURSOR_TRAIL_LENGTH", motion.DefaultTrailLength),
		SessionTTL:  envDuration("SESSION_TTL", 30*time.Minute),
		LogLevel:    envLevel("LOG_LEVEL"),
	}

	// Default values for development
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "templates"
	}
	return cfg
}

func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("WARNING: invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return n
}

func envMillis(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Printf("WARNING: invalid %s=%q, using %v", key, raw, def)
		return def
	}
	return time.Duration(n) * time.Millisecond
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("WARNING: invalid %s=%q, using %v", key, raw, def)
		return def
	}
	return d
}

func envLevel(key string) *slog.Level {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		log.Printf("WARNING: invalid %s=%q, motion logging stays off", key, raw)
		return nil
	}
	return &lvl
}

// motionLogger builds the logger handed to motion.SetLogger, or nil when
// logging is off.
func (cfg *Config) motionLogger(w io.Writer) *slog.Logger {
	if cfg.LogLevel == nil {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: *cfg.LogLevel}))
}
