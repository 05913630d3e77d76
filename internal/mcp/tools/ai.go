package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetJobMatchScoreParams defines the arguments for the get_job_match_score tool
type GetJobMatchScoreParams struct {
	JobID string `json:"job_id" jsonschema:"Job identifier to score against the user's profile"`
}

// GetJobAIEvaluationParams defines the arguments for the get_job_ai_evaluation tool
type GetJobAIEvaluationParams struct {
	JobID string `json:"job_id" jsonschema:"Job identifier whose stored AI evaluation to fetch"`
}

// GenerateInterviewQuestionsParams defines the arguments for the generate_interview_questions tool
type GenerateInterviewQuestionsParams struct {
	JobID         string `json:"job_id" jsonschema:"Job identifier to generate questions for"`
	InterviewType string `json:"interview_type,omitempty" jsonschema:"Interview round: initial or final (default initial)"`
}

// GetAIUsageParams defines the arguments for the get_ai_usage tool
type GetAIUsageParams struct{}

type matchScorePayload struct {
	Score     float64  `json:"score"`
	Summary   string   `json:"summary"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
}

type aiEvaluationPayload struct {
	Summary     string   `json:"summary"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
	GeneratedAt string   `json:"generatedAt"`
}

type aiUsagePayload struct {
	Used     int    `json:"used"`
	Limit    int    `json:"limit"`
	ResetsAt string `json:"resetsAt"`
}

var interviewTypes = map[string]bool{
	"initial": true,
	"final":   true,
}

type aiTools struct {
	deps Deps
}

func registerAITools(server *sdkmcp.Server, deps Deps) {
	t := aiTools{deps: deps}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_job_match_score",
		Description: "Score how well a tracked job matches the user's profile. Uses one AI credit.",
	}, t.getJobMatchScore)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_job_ai_evaluation",
		Description: "Fetch the stored AI evaluation for a tracked job.",
	}, t.getJobAIEvaluation)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "generate_interview_questions",
		Description: "Generate practice interview questions for a tracked job. Interview types: initial, final. Uses one AI credit.",
	}, t.generateInterviewQuestions)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_ai_usage",
		Description: "Show how many AI credits are used and when the quota resets.",
	}, t.getAIUsage)
}

func (t aiTools) getJobMatchScore(ctx context.Context, _ *sdkmcp.CallToolRequest, params *GetJobMatchScoreParams) (*sdkmcp.CallToolResult, any, error) {
	if params.JobID == "" {
		return nil, nil, errors.New("job_id is required")
	}

	env, err := t.deps.Client.Post(ctx, "/api/ai/match-score", map[string]string{"jobId": params.JobID})
	if err != nil {
		return nil, nil, err
	}
	// Quota exhaustion arrives here as a domain error, not a transport one.
	if env.Failed() {
		return failureResult("compute match score", env), nil, nil
	}

	var payload matchScorePayload
	if err := env.Decode(&payload); err != nil {
		return nil, nil, err
	}

	return textResult(renderMatchScore(params.JobID, payload)), nil, nil
}

func (t aiTools) getJobAIEvaluation(ctx context.Context, _ *sdkmcp.CallToolRequest, params *GetJobAIEvaluationParams) (*sdkmcp.CallToolResult, any, error) {
	if params.JobID == "" {
		return nil, nil, errors.New("job_id is required")
	}

	env, err := t.deps.Client.Get(ctx, "/api/ai/evaluation/"+params.JobID, nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch AI evaluation", env), nil, nil
	}

	var payload aiEvaluationPayload
	if err := env.Decode(&payload); err != nil {
		return nil, nil, err
	}

	return textResult(renderAIEvaluation(params.JobID, payload)), nil, nil
}

func (t aiTools) generateInterviewQuestions(ctx context.Context, _ *sdkmcp.CallToolRequest, params *GenerateInterviewQuestionsParams) (*sdkmcp.CallToolResult, any, error) {
	if params.JobID == "" {
		return nil, nil, errors.New("job_id is required")
	}

	interviewType := params.InterviewType
	if interviewType == "" {
		interviewType = "initial"
	}
	if !interviewTypes[interviewType] {
		return textResult(fmt.Sprintf("Unknown interview type %q. Valid options: initial, final.", params.InterviewType)), nil, nil
	}

	env, err := t.deps.Client.Post(ctx, "/api/ai/interview-questions", map[string]string{
		"jobId":         params.JobID,
		"interviewType": interviewType,
	})
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("generate interview questions", env), nil, nil
	}

	var payload struct {
		Questions []string `json:"questions"`
	}
	if err := env.Decode(&payload); err != nil {
		return nil, nil, err
	}

	if len(payload.Questions) == 0 {
		return textResult("No interview questions were generated."), nil, nil
	}

	title := strings.ToUpper(interviewType[:1]) + interviewType[1:]
	msg := fmt.Sprintf("%s interview questions (%d):\n%s",
		title, len(payload.Questions), numberedList(payload.Questions))
	return textResult(msg), nil, nil
}

func (t aiTools) getAIUsage(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *GetAIUsageParams) (*sdkmcp.CallToolResult, any, error) {
	env, err := t.deps.Client.Get(ctx, "/api/ai/usage", nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch AI usage", env), nil, nil
	}

	var payload aiUsagePayload
	if err := env.Decode(&payload); err != nil {
		return nil, nil, err
	}

	msg := fmt.Sprintf("AI usage: %d of %d credit(s) used.", payload.Used, payload.Limit)
	if payload.ResetsAt != "" {
		msg += fmt.Sprintf(" Quota resets %s.", formatDate(payload.ResetsAt))
	}
	return textResult(msg), nil, nil
}

func renderMatchScore(jobID string, payload matchScorePayload) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Match score for job %s: %.0f/100", jobID, payload.Score)
	if payload.Summary != "" {
		fmt.Fprintf(&b, "\n\n%s", truncate(payload.Summary, bioBudget))
	}
	if len(payload.Strengths) > 0 {
		fmt.Fprintf(&b, "\n\nStrengths:\n%s", numberedList(payload.Strengths))
	}
	if len(payload.Gaps) > 0 {
		fmt.Fprintf(&b, "\n\nGaps:\n%s", numberedList(payload.Gaps))
	}

	return b.String()
}

func renderAIEvaluation(jobID string, payload aiEvaluationPayload) string {
	if payload.Summary == "" && len(payload.Pros) == 0 && len(payload.Cons) == 0 {
		return fmt.Sprintf("No AI evaluation found for job %s.", jobID)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "AI evaluation for job %s", jobID)
	if payload.GeneratedAt != "" {
		fmt.Fprintf(&b, " (generated %s)", formatDate(payload.GeneratedAt))
	}
	if payload.Summary != "" {
		fmt.Fprintf(&b, "\n\n%s", truncate(payload.Summary, bioBudget))
	}
	if len(payload.Pros) > 0 {
		fmt.Fprintf(&b, "\n\nPros:\n%s", numberedList(payload.Pros))
	}
	if len(payload.Cons) > 0 {
		fmt.Fprintf(&b, "\n\nCons:\n%s", numberedList(payload.Cons))
	}

	return b.String()
}
