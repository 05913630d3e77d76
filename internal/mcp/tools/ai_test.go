package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJobMatchScoreRenders(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ai/match-score", r.URL.Path)
		_, _ = w.Write([]byte(okEnvelope(`{
			"score": 82,
			"summary": "Strong backend fit",
			"strengths": ["Go", "Distributed systems"],
			"gaps": ["Kubernetes"]
		}`)))
	}))

	result, _, err := aiTools{deps: deps}.getJobMatchScore(context.Background(), nil, &GetJobMatchScoreParams{JobID: "j1"})
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "Match score for job j1: 82/100")
	assert.Contains(t, text, "Strengths:\n1. Go\n2. Distributed systems")
	assert.Contains(t, text, "Gaps:\n1. Kubernetes")
}

func TestGetJobMatchScoreQuotaExceededIsTextNotError(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// 200 with a domain error code: must render, never throw.
		_, _ = w.Write([]byte(`{"isSuccess":false,"message":"AI quota exceeded","errorCode":"AI_QUOTA_EXCEEDED"}`))
	}))

	result, _, err := aiTools{deps: deps}.getJobMatchScore(context.Background(), nil, &GetJobMatchScoreParams{JobID: "j1"})
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "AI quota exceeded")
	assert.Contains(t, text, "AI_QUOTA_EXCEEDED")
}

func TestGenerateInterviewQuestionsValidatesType(t *testing.T) {
	deps := newTestDeps(t, unreachableBackend(t))

	result, _, err := aiTools{deps: deps}.generateInterviewQuestions(context.Background(), nil, &GenerateInterviewQuestionsParams{
		JobID:         "j1",
		InterviewType: "technical",
	})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "initial, final")
}

func TestGenerateInterviewQuestionsDefaultsToInitial(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai/interview-questions", r.URL.Path)
		_, _ = w.Write([]byte(okEnvelope(`{"questions":["Tell me about yourself","Why Acme?"]}`)))
	}))

	result, _, err := aiTools{deps: deps}.generateInterviewQuestions(context.Background(), nil, &GenerateInterviewQuestionsParams{JobID: "j1"})
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "Initial interview questions (2):")
	// Numbered sub-lists use single-newline separation.
	assert.Contains(t, text, "1. Tell me about yourself\n2. Why Acme?")
}

func TestGetAIUsage(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai/usage", r.URL.Path)
		_, _ = w.Write([]byte(okEnvelope(`{"used":3,"limit":10,"resetsAt":"2026-09-01T00:00:00Z"}`)))
	}))

	result, _, err := aiTools{deps: deps}.getAIUsage(context.Background(), nil, &GetAIUsageParams{})
	require.NoError(t, err)
	assert.Equal(t, "AI usage: 3 of 10 credit(s) used. Quota resets Sep 1, 2026.", resultText(t, result))
}
