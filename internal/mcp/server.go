package mcp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jobjourney/jobjourney-mcp/internal/config"
	"github.com/jobjourney/jobjourney-mcp/internal/mcp/tools"
	"github.com/jobjourney/jobjourney-mcp/pkg/jobjourney"
	"github.com/jobjourney/jobjourney-mcp/pkg/logging"
)

// Server wraps an MCP SDK server behind either a stdio transport or a
// streamable HTTP listener, selected by config.
type Server struct {
	logger *logging.Logger
	config config.Config

	mcp *sdkmcp.Server
	srv *http.Server // nil in stdio mode

	started atomic.Bool
	cancel  context.CancelFunc // stops the stdio run loop
}

// NewServer constructs the MCP server and registers every tool against the
// backend client.
func NewServer(log *logging.Logger, cfg config.Config, client *jobjourney.Client) *Server {
	impl := &sdkmcp.Implementation{
		Name:    "jobjourney-mcp",
		Version: "1.0.0",
	}

	mcpServer := sdkmcp.NewServer(impl, nil)

	tools.RegisterAll(mcpServer, tools.Deps{
		Client: client,
		Logger: log,
	})

	s := &Server{
		logger: log,
		config: cfg,
		mcp:    mcpServer,
	}

	if cfg.Transport == config.TransportHTTP {
		handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
			return mcpServer
		}, nil)

		mux := http.NewServeMux()
		mux.Handle("/mcp/stream", requireCredential(handler))
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		s.srv = &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return s
}

// Run starts the server on its configured transport and blocks until
// shutdown.
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	if s.srv != nil {
		s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr)

		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.logger.Info("MCP server listening on stdio")

	if err := s.mcp.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Shutdown stops the running transport.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP server")

	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
			return err
		}
	} else if s.cancel != nil {
		s.cancel()
	}

	s.logger.Info("MCP server shutdown complete")
	return nil
}

// requireCredential rejects HTTP connections that present neither a bearer
// token nor an API-key header. Credential validation itself belongs to the
// deployment in front of this process; the handshake only demands that one
// is present.
func requireCredential(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if extractCredential(r) == "" {
			http.Error(w, "missing credentials: provide Authorization: Bearer or X-API-Key", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractCredential(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return r.Header.Get("X-API-Key")
}
