package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobjourney/jobjourney-mcp/pkg/jobjourney"
)

func TestGetJobsEmptyResult(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/jobs", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("pageNumber"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))
		_, _ = w.Write([]byte(okEnvelope(`{"items":[],"totalCount":0,"pageNumber":1,"pageSize":10}`)))
	}))

	result, _, err := jobTools{deps: deps}.getJobs(context.Background(), nil, &GetJobsParams{})
	require.NoError(t, err)
	assert.Equal(t, "No jobs found matching your criteria.", resultText(t, result))
}

func TestGetJobsQueryShaping(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		// Status travels as the integer code, starred only when true.
		assert.Equal(t, "2", q.Get("status"))
		assert.Equal(t, "true", q.Get("starred"))
		assert.Equal(t, "engineer", q.Get("search"))
		assert.Equal(t, "3", q.Get("pageNumber"))
		assert.Equal(t, "25", q.Get("pageSize"))
		_, _ = w.Write([]byte(okEnvelope(`{"items":[],"totalCount":0,"pageNumber":3,"pageSize":25}`)))
	}))

	_, _, err := jobTools{deps: deps}.getJobs(context.Background(), nil, &GetJobsParams{
		Status:     "applied",
		Starred:    true,
		Search:     "engineer",
		PageNumber: 3,
		PageSize:   25,
	})
	require.NoError(t, err)
}

func TestGetJobsOmitsUnsetFilters(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("status"))
		assert.False(t, q.Has("starred"))
		assert.False(t, q.Has("search"))
		_, _ = w.Write([]byte(okEnvelope(`{"items":[],"totalCount":0,"pageNumber":1,"pageSize":10}`)))
	}))

	_, _, err := jobTools{deps: deps}.getJobs(context.Background(), nil, &GetJobsParams{})
	require.NoError(t, err)
}

func TestGetJobsRendersSummaries(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(okEnvelope(`{
			"items": [
				{"id":"j1","title":"Backend Engineer","companyName":"Acme","status":2,"isStarred":true,"location":"Berlin"},
				{"id":"j2","title":"SRE","companyName":"Globex","status":1}
			],
			"totalCount": 2, "pageNumber": 1, "pageSize": 10
		}`)))
	}))

	result, _, err := jobTools{deps: deps}.getJobs(context.Background(), nil, &GetJobsParams{})
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "Found 2 job(s), page 1:")
	assert.Contains(t, text, "Backend Engineer at Acme *")
	assert.Contains(t, text, "Status: Applied | ID: j1")
	assert.Contains(t, text, "Location: Berlin")
	assert.Contains(t, text, "Status: Saved | ID: j2")
	// Blank-line separation between primary list entries.
	assert.Contains(t, text, "\n\n")
}

func TestGetJobsInvalidStatusSkipsHTTP(t *testing.T) {
	deps := newTestDeps(t, unreachableBackend(t))

	result, _, err := jobTools{deps: deps}.getJobs(context.Background(), nil, &GetJobsParams{Status: "withdrawn"})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "expired, saved, applied, initial_interview, final_interview, offered, rejected")
}

func TestUpdateJobStatusUnknownKeyListsOptionsWithoutHTTP(t *testing.T) {
	deps := newTestDeps(t, unreachableBackend(t))

	result, _, err := jobTools{deps: deps}.updateJobStatus(context.Background(), nil, &UpdateJobStatusParams{
		JobID:  "abc123",
		Status: "withdrawn",
	})
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, `"withdrawn"`)
	assert.Contains(t, text, "expired, saved, applied, initial_interview, final_interview, offered, rejected")
}

func TestUpdateJobStatusSendsIntegerCode(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/jobs/abc123/status", r.URL.Path)

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]int{"status": 5}, body)

		_, _ = w.Write([]byte(okEnvelope(`{}`)))
	}))

	result, _, err := jobTools{deps: deps}.updateJobStatus(context.Background(), nil, &UpdateJobStatusParams{
		JobID:  "abc123",
		Status: "offered",
	})
	require.NoError(t, err)
	assert.Equal(t, "Job abc123 status updated to Offered.", resultText(t, result))
}

func TestSaveJobGeneratesPlaceholderURL(t *testing.T) {
	placeholder := regexp.MustCompile(`^https://jobjourney\.me/manual/\d+$`)

	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/jobs", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Software Engineer", r.FormValue("Title"))
		assert.Equal(t, "Acme", r.FormValue("CompanyName"))
		assert.Equal(t, "1", r.FormValue("Status"))
		assert.Regexp(t, placeholder, r.FormValue("JobUrl"))

		// Unsupplied optional fields are omitted, not sent empty.
		assert.NotContains(t, r.MultipartForm.Value, "Location")
		assert.NotContains(t, r.MultipartForm.Value, "Description")

		_, _ = w.Write([]byte(okEnvelope(`{"id":"abc123"}`)))
	}))

	result, _, err := jobTools{deps: deps}.saveJob(context.Background(), nil, &SaveJobParams{
		Title:   "Software Engineer",
		Company: "Acme",
	})
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "Title: Software Engineer")
	assert.Contains(t, text, "Company: Acme")
	assert.Contains(t, text, "Status: saved")
	assert.Contains(t, text, "ID: abc123")
}

func TestSaveJobRequiresTitleAndCompany(t *testing.T) {
	deps := newTestDeps(t, unreachableBackend(t))

	_, _, err := jobTools{deps: deps}.saveJob(context.Background(), nil, &SaveJobParams{Title: "Engineer"})
	assert.EqualError(t, err, "title and company are required")
}

func TestBulkUpdateJobsProceed(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/jobs/bulk/proceed", r.URL.Path)

		var body map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"a", "b", "c"}, body["jobIds"])

		_, _ = w.Write([]byte(okEnvelope(`{}`)))
	}))

	result, _, err := jobTools{deps: deps}.bulkUpdateJobs(context.Background(), nil, &BulkUpdateJobsParams{
		Action: "proceed",
		JobIDs: []string{"a", "b", "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, "3 job(s) advanced to next stage successfully.", resultText(t, result))
}

func TestBulkUpdateJobsEndpoints(t *testing.T) {
	cases := map[string]struct {
		path    string
		message string
	}{
		"delete":  {"/api/jobs/bulk/delete", "2 job(s) deleted successfully."},
		"reject":  {"/api/jobs/bulk/reject", "2 job(s) marked as rejected successfully."},
		"proceed": {"/api/jobs/bulk/proceed", "2 job(s) advanced to next stage successfully."},
	}

	for action, want := range cases {
		t.Run(action, func(t *testing.T) {
			deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, want.path, r.URL.Path)
				_, _ = w.Write([]byte(okEnvelope(`{}`)))
			}))

			result, _, err := jobTools{deps: deps}.bulkUpdateJobs(context.Background(), nil, &BulkUpdateJobsParams{
				Action: action,
				JobIDs: []string{"x", "y"},
			})
			require.NoError(t, err)
			assert.Equal(t, want.message, resultText(t, result))
		})
	}
}

func TestBulkUpdateJobsUnknownAction(t *testing.T) {
	deps := newTestDeps(t, unreachableBackend(t))

	result, _, err := jobTools{deps: deps}.bulkUpdateJobs(context.Background(), nil, &BulkUpdateJobsParams{
		Action: "archive",
		JobIDs: []string{"a"},
	})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "delete, reject, proceed")
}

func TestUpdateJobOmitsUnsuppliedFields(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"title": "Staff Engineer"}, body)
		_, _ = w.Write([]byte(okEnvelope(`{}`)))
	}))

	result, _, err := jobTools{deps: deps}.updateJob(context.Background(), nil, &UpdateJobParams{
		JobID: "j1",
		Title: "Staff Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Job j1 updated (1 field(s) changed).", resultText(t, result))
}

func TestGetJobDetailsTruncatesDescription(t *testing.T) {
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}
	payload, err := json.Marshal(map[string]any{
		"id": "j1", "title": "Engineer", "companyName": "Acme",
		"status": 2, "description": string(long),
	})
	require.NoError(t, err)

	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(okEnvelope(string(payload))))
	}))

	result, _, handlerErr := jobTools{deps: deps}.getJobDetails(context.Background(), nil, &GetJobDetailsParams{JobID: "j1"})
	require.NoError(t, handlerErr)

	text := resultText(t, result)
	assert.Contains(t, text, "...")
	assert.NotContains(t, text, string(long))
}

func TestJobToolsTransportErrorPropagates(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "backend exploded", http.StatusBadGateway)
	}))

	_, _, err := jobTools{deps: deps}.getJobs(context.Background(), nil, &GetJobsParams{})
	require.Error(t, err)

	var apiErr *jobjourney.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "backend exploded")
}

func TestJobToolsDomainErrorRendersAsText(t *testing.T) {
	deps := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"isSuccess":false,"message":"job not found","errorCode":"JOB_NOT_FOUND"}`))
	}))

	result, _, err := jobTools{deps: deps}.deleteJob(context.Background(), nil, &DeleteJobParams{JobID: "nope"})
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "job not found")
	assert.Contains(t, text, "JOB_NOT_FOUND")
}
