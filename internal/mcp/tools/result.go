package tools

import (
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jobjourney/jobjourney-mcp/pkg/jobjourney"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// failureResult renders a domain-level failure as a normal text result.
// These are informative output for the assistant, not crashes.
func failureResult(action string, env *jobjourney.Envelope) *sdkmcp.CallToolResult {
	return textResult(fmt.Sprintf("Could not %s: %s", action, env.FailureText()))
}
