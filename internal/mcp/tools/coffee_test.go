package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCoffeeChatProfilesUsesPagePagination(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		// Coffee chat listing paginates with page/pageSize, unlike job
		// listing's pageNumber/pageSize. The backend is inconsistent here
		// and the difference is deliberate.
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "10", q.Get("pageSize"))
		assert.False(t, q.Has("pageNumber"))
		_, _ = w.Write([]byte(okEnvelope(`{"items":[],"totalCount":0,"page":1,"pageSize":10}`)))
	}))

	result, _, err := coffeeChatTools{deps: deps}.getProfiles(context.Background(), nil, &GetCoffeeChatProfilesParams{})
	require.NoError(t, err)
	assert.Equal(t, "No coffee chat profiles found.", resultText(t, result))
}

func TestGetCoffeeChatProfilesTruncatesBio(t *testing.T) {
	longBio := ""
	for range 40 {
		longBio += "networking "
	}

	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(okEnvelope(`{
			"items":[{"id":"p1","name":"Sam","role":"PM","company":"Acme","bio":"` + longBio + `"}],
			"totalCount":1,"page":1,"pageSize":10
		}`)))
	}))

	result, _, err := coffeeChatTools{deps: deps}.getProfiles(context.Background(), nil, &GetCoffeeChatProfilesParams{})
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "Sam - PM at Acme")
	assert.Contains(t, text, "...")
	assert.NotContains(t, text, longBio)
}

func TestGetCoffeeChatRequestsValidatesDirection(t *testing.T) {
	deps := newTestDeps(t, unreachableBackend(t))

	result, _, err := coffeeChatTools{deps: deps}.getRequests(context.Background(), nil, &GetCoffeeChatRequestsParams{Direction: "inbox"})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "sent, received")
}

func TestRespondCoffeeChatRequest(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/coffee-chats/requests/r1/respond", r.URL.Path)
		_, _ = w.Write([]byte(okEnvelope(`{}`)))
	}))

	result, _, err := coffeeChatTools{deps: deps}.respondRequest(context.Background(), nil, &RespondCoffeeChatRequestParams{
		RequestID: "r1",
		Accept:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Coffee chat request r1 accepted.", resultText(t, result))
}
