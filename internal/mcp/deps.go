package mcp

import (
	"github.com/jobjourney/jobjourney-mcp/internal/config"
	"github.com/jobjourney/jobjourney-mcp/pkg/jobjourney"
)

// provideClientConfig extracts backend client config from main config
func provideClientConfig(cfg config.Config) jobjourney.Config {
	return jobjourney.Config{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.Key,
	}
}
