//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/jobjourney/jobjourney-mcp/internal/config"
	"github.com/jobjourney/jobjourney-mcp/pkg/jobjourney"
	"github.com/jobjourney/jobjourney-mcp/pkg/logging"
)

// InitializeServer wires the backend client and MCP server from config
func InitializeServer(cfg config.Config, log *logging.Logger) (*Server, error) {
	wire.Build(
		provideClientConfig,
		jobjourney.NewClient,
		NewServer,
	)

	return &Server{}, nil
}
