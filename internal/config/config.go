// Package config reads the settings of the web server from the
// environment. Values in a .env file in the working directory are loaded
// first and never override variables that are already set.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Host string
	Port uint

	// BaseURL is the public origin used in share links. When empty the
	// origin of each request is used.
	BaseURL string

	LogLevel slog.Level
}

func Default() Config {
	return Config{
		Host:     "localhost",
		Port:     3000,
		LogLevel: slog.LevelInfo,
	}
}

// Load reads the configuration from the environment, optionally loading
// the given .env files first. Missing .env files are ignored.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := Default()

	if host := strings.TrimSpace(os.Getenv("HOST")); host != "" {
		cfg.Host = host
	}

	if portString := strings.TrimSpace(os.Getenv("PORT")); portString != "" {
		port, err := strconv.ParseUint(portString, 10, 16)
		if err != nil {
			return Config{}, fmt.Errorf("parsing PORT failed: %w", err)
		}
		cfg.Port = uint(port)
	}

	cfg.BaseURL = strings.TrimSuffix(strings.TrimSpace(os.Getenv("BASE_URL")), "/")

	if levelString := strings.TrimSpace(os.Getenv("LOG_LEVEL")); levelString != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(levelString)); err != nil {
			return Config{}, fmt.Errorf("parsing LOG_LEVEL failed: %w", err)
		}
	}

	return cfg, nil
}
