package main

import (
	"log"
	"os"
	"syscall"
	"time"

	"github.com/jobjourney/jobjourney-mcp/internal/config"
	"github.com/jobjourney/jobjourney-mcp/internal/mcp"
	"github.com/jobjourney/jobjourney-mcp/pkg/logging"
	"github.com/jobjourney/jobjourney-mcp/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	srv, err := mcp.InitializeServer(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize MCP server", "err", err)
		os.Exit(1)
	}

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("MCP server initialized and starting",
		"transport", cfg.Transport,
		"backend", cfg.API.BaseURL,
	)

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
	} else {
		logger.Info("MCP server stopped")
	}
}
