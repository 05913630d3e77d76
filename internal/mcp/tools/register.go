// Package tools defines the MCP tools exposed to the assistant host.
//
// Every tool follows the same translator shape: validate and shape the typed
// arguments, issue one backend call through the jobjourney client, and render
// the decoded payload as scannable text. Transport failures (non-2xx) are
// returned as errors and surface as failed tool executions; domain failures
// reported inside a 2xx envelope are rendered as text results.
package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jobjourney/jobjourney-mcp/pkg/jobjourney"
	"github.com/jobjourney/jobjourney-mcp/pkg/logging"
)

// Deps carries the shared resources every tool handler needs.
type Deps struct {
	Client *jobjourney.Client
	Logger *logging.Logger
}

// RegisterAll installs every tool group into the MCP server.
func RegisterAll(server *sdkmcp.Server, deps Deps) {
	registerJobTools(server, deps)
	registerAITools(server, deps)
	registerCoffeeChatTools(server, deps)
	registerNotificationTools(server, deps)
	registerProfileTools(server, deps)
	registerDocumentTools(server, deps)
	registerSubscriptionTools(server, deps)
	registerCommentTools(server, deps)
	registerAnalyticsTools(server, deps)
}
