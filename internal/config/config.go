package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Transport selects how the MCP server talks to its host.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel  string
	Transport Transport
	Host      string // http mode only, default 0.0.0.0
	Port      string // http mode only, default PORT env or 8080
	API       struct {
		BaseURL string // JobJourney backend origin
		Key     string // sent as X-API-Key when set
	}
}

// Load populates config from the environment, reading a .env file first if
// one is present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:  "info",
		Transport: TransportStdio,
		Host:      "0.0.0.0",
		Port:      "8080",
	}
	cfg.API.BaseURL = "http://localhost:5200"

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_TRANSPORT"); v != "" {
		switch Transport(v) {
		case TransportStdio, TransportHTTP:
			cfg.Transport = Transport(v)
		default:
			return cfg, fmt.Errorf("invalid MCP_TRANSPORT %q: must be %q or %q", v, TransportStdio, TransportHTTP)
		}
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("JOBJOURNEY_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}

	cfg.API.Key = os.Getenv("JOBJOURNEY_API_KEY")

	return cfg, nil
}
