package tools

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/jobjourney/jobjourney-mcp/pkg/jobjourney"
	"github.com/jobjourney/jobjourney-mcp/pkg/logging"
)

// newTestDeps points a real client at a fake backend for the test's lifetime.
func newTestDeps(t *testing.T, handler http.Handler) Deps {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := jobjourney.NewClient(jobjourney.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	return Deps{
		Client: client,
		Logger: logging.New("error"),
	}
}

// unreachableBackend fails the test if any HTTP call is made.
func unreachableBackend(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected HTTP call: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	})
}

func resultText(t *testing.T, result *sdkmcp.CallToolResult) string {
	t.Helper()

	require.NotNil(t, result)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

// okEnvelope wraps a data payload in the backend's success envelope.
func okEnvelope(data string) string {
	return `{"isSuccess":true,"data":` + data + `}`
}
