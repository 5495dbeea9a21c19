// Package config provides runtime configuration for the POS terminal.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the knobs for the terminal HTTP server and the ledger client.
type Config struct {
	HTTPPort        string
	LedgerBaseURL   string
	LedgerAPIToken  string // optional, enables catalog warm-up at startup
	LedgerTimeout   time.Duration
	TaxRate         float64
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load collects configuration from the environment with defaults.
func Load() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8090"),
		LedgerBaseURL:   getEnv("LEDGER_BASE_URL", "http://127.0.0.1:8000"),
		LedgerAPIToken:  getEnv("LEDGER_API_TOKEN", ""),
		LedgerTimeout:   durEnv("LEDGER_TIMEOUT_SECONDS", 30),
		TaxRate:         floatEnv("TAX_RATE", 0.05),
		RequestTimeout:  durEnv("REQUEST_TIMEOUT_SECONDS", 30),
		ShutdownTimeout: durEnv("SHUTDOWN_TIMEOUT_SECONDS", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func floatEnv(key string, defaultValue float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func durEnv(key string, defaultSeconds int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(defaultSeconds) * time.Second
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defaultSeconds) * time.Second
	}
	return time.Duration(n) * time.Second
}
