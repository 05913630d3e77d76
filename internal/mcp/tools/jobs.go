package tools

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jobjourney/jobjourney-mcp/internal/status"
	"github.com/jobjourney/jobjourney-mcp/pkg/jobjourney"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

// GetJobsParams defines the arguments for the get_jobs tool
type GetJobsParams struct {
	Status     string `json:"status,omitempty" jsonschema:"Filter by status key: expired, saved, applied, initial_interview, final_interview, offered or rejected"`
	Starred    bool   `json:"starred,omitempty" jsonschema:"Only include starred jobs"`
	Search     string `json:"search,omitempty" jsonschema:"Free-text search over title and company"`
	PageNumber int    `json:"page_number,omitempty" jsonschema:"Page number starting at 1 (default 1)"`
	PageSize   int    `json:"page_size,omitempty" jsonschema:"Results per page (default 10)"`
}

// GetJobDetailsParams defines the arguments for the get_job_details tool
type GetJobDetailsParams struct {
	JobID string `json:"job_id" jsonschema:"Job identifier from get_jobs"`
}

// SaveJobParams defines the arguments for the save_job tool
type SaveJobParams struct {
	Title       string `json:"title" jsonschema:"Job title"`
	Company     string `json:"company" jsonschema:"Company name"`
	JobURL      string `json:"job_url,omitempty" jsonschema:"Posting URL; a jobjourney.me placeholder is generated when omitted"`
	Status      string `json:"status,omitempty" jsonschema:"Initial status key (default saved)"`
	Location    string `json:"location,omitempty" jsonschema:"Job location"`
	Description string `json:"description,omitempty" jsonschema:"Job description text"`
	Notes       string `json:"notes,omitempty" jsonschema:"Personal notes"`
	Salary      string `json:"salary,omitempty" jsonschema:"Salary or range as free text"`
}

// UpdateJobParams defines the arguments for the update_job tool
type UpdateJobParams struct {
	JobID       string `json:"job_id" jsonschema:"Job identifier to update"`
	Title       string `json:"title,omitempty" jsonschema:"New job title"`
	Company     string `json:"company,omitempty" jsonschema:"New company name"`
	JobURL      string `json:"job_url,omitempty" jsonschema:"New posting URL"`
	Location    string `json:"location,omitempty" jsonschema:"New location"`
	Description string `json:"description,omitempty" jsonschema:"New description"`
	Notes       string `json:"notes,omitempty" jsonschema:"New personal notes"`
	Salary      string `json:"salary,omitempty" jsonschema:"New salary text"`
}

// UpdateJobStatusParams defines the arguments for the update_job_status tool
type UpdateJobStatusParams struct {
	JobID  string `json:"job_id" jsonschema:"Job identifier to update"`
	Status string `json:"status" jsonschema:"New status key: expired, saved, applied, initial_interview, final_interview, offered or rejected"`
}

// ToggleJobStarParams defines the arguments for the toggle_job_star tool
type ToggleJobStarParams struct {
	JobID string `json:"job_id" jsonschema:"Job identifier to star or unstar"`
}

// DeleteJobParams defines the arguments for the delete_job tool
type DeleteJobParams struct {
	JobID string `json:"job_id" jsonschema:"Job identifier to delete"`
}

// BulkUpdateJobsParams defines the arguments for the bulk_update_jobs tool
type BulkUpdateJobsParams struct {
	Action string   `json:"action" jsonschema:"Bulk action: delete, reject or proceed"`
	JobIDs []string `json:"job_ids" jsonschema:"Job identifiers to apply the action to"`
}

// jobRecord mirrors the backend's job payload shape.
type jobRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	Status      int    `json:"status"`
	IsStarred   bool   `json:"isStarred"`
	JobURL      string `json:"jobUrl"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	AppliedAt   string `json:"appliedAt"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// jobPage mirrors the backend's paginated job listing payload.
type jobPage struct {
	Items      []jobRecord `json:"items"`
	TotalCount int         `json:"totalCount"`
	PageNumber int         `json:"pageNumber"`
	PageSize   int         `json:"pageSize"`
}

// Each bulk action hits its own fixed endpoint on the backend.
var bulkActions = map[string]struct {
	path    string
	message string
}{
	"delete":  {"/api/jobs/bulk/delete", "%d job(s) deleted successfully."},
	"reject":  {"/api/jobs/bulk/reject", "%d job(s) marked as rejected successfully."},
	"proceed": {"/api/jobs/bulk/proceed", "%d job(s) advanced to next stage successfully."},
}

type jobTools struct {
	deps Deps
}

func registerJobTools(server *sdkmcp.Server, deps Deps) {
	t := jobTools{deps: deps}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_jobs",
		Description: "List tracked jobs with optional status, starred and free-text filters. Status options: expired, saved, applied, initial_interview, final_interview, offered, rejected.",
	}, t.getJobs)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_job_details",
		Description: "Fetch one tracked job with full description and notes. Get IDs from get_jobs.",
	}, t.getJobDetails)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_job",
		Description: "Save a new job to the tracker. Only title and company are required; a placeholder URL is generated when none is supplied.",
	}, t.saveJob)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_job",
		Description: "Update fields of a tracked job. Only the supplied fields are changed.",
	}, t.updateJob)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_job_status",
		Description: "Move a tracked job to a new status. Options: expired, saved, applied, initial_interview, final_interview, offered, rejected.",
	}, t.updateJobStatus)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_job_star",
		Description: "Star or unstar a tracked job.",
	}, t.toggleJobStar)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_job",
		Description: "Delete a tracked job permanently.",
	}, t.deleteJob)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "bulk_update_jobs",
		Description: "Apply one action to many jobs at once. Actions: delete, reject, proceed (advance to next stage).",
	}, t.bulkUpdateJobs)
}

func (t jobTools) getJobs(ctx context.Context, _ *sdkmcp.CallToolRequest, params *GetJobsParams) (*sdkmcp.CallToolResult, any, error) {
	if params.Status != "" && !status.Valid(params.Status) {
		return textResult(invalidStatusText(params.Status)), nil, nil
	}

	pageNumber := params.PageNumber
	if pageNumber <= 0 {
		pageNumber = defaultPageNumber
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	// Job listing is the one endpoint using pageNumber/pageSize; the rest of
	// the backend paginates with page/pageSize. Do not unify.
	query := url.Values{}
	query.Set("pageNumber", strconv.Itoa(pageNumber))
	query.Set("pageSize", strconv.Itoa(pageSize))
	if params.Status != "" {
		query.Set("status", strconv.Itoa(status.Code(params.Status)))
	}
	if params.Starred {
		query.Set("starred", "true")
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	env, err := t.deps.Client.Get(ctx, "/api/jobs", query)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch jobs", env), nil, nil
	}

	var page jobPage
	if err := env.Decode(&page); err != nil {
		return nil, nil, err
	}

	return textResult(renderJobPage(page)), nil, nil
}

func (t jobTools) getJobDetails(ctx context.Context, _ *sdkmcp.CallToolRequest, params *GetJobDetailsParams) (*sdkmcp.CallToolResult, any, error) {
	if params.JobID == "" {
		return nil, nil, errors.New("job_id is required")
	}

	env, err := t.deps.Client.Get(ctx, "/api/jobs/"+params.JobID, nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch job details", env), nil, nil
	}

	var job jobRecord
	if err := env.Decode(&job); err != nil {
		return nil, nil, err
	}

	return textResult(renderJobDetails(job)), nil, nil
}

func (t jobTools) saveJob(ctx context.Context, _ *sdkmcp.CallToolRequest, params *SaveJobParams) (*sdkmcp.CallToolResult, any, error) {
	if params.Title == "" || params.Company == "" {
		return nil, nil, errors.New("title and company are required")
	}

	statusKey := params.Status
	if statusKey == "" {
		statusKey = status.DefaultKey
	}
	if !status.Valid(statusKey) {
		return textResult(invalidStatusText(params.Status)), nil, nil
	}

	env, err := t.deps.Client.SaveJob(ctx, jobjourney.SaveJobForm{
		Title:       params.Title,
		Company:     params.Company,
		JobURL:      params.JobURL,
		StatusCode:  status.Code(statusKey),
		Location:    params.Location,
		Description: params.Description,
		Notes:       params.Notes,
		Salary:      params.Salary,
	})
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("save job", env), nil, nil
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := env.Decode(&created); err != nil {
		return nil, nil, err
	}

	t.deps.Logger.Info("job saved", "job_id", created.ID, "company", params.Company)

	msg := fmt.Sprintf("Job saved successfully.\nTitle: %s\nCompany: %s\nStatus: %s\nID: %s",
		params.Title, params.Company, statusKey, created.ID)
	return textResult(msg), nil, nil
}

func (t jobTools) updateJob(ctx context.Context, _ *sdkmcp.CallToolRequest, params *UpdateJobParams) (*sdkmcp.CallToolResult, any, error) {
	if params.JobID == "" {
		return nil, nil, errors.New("job_id is required")
	}

	// Unsupplied fields are omitted entirely, never sent as empty strings.
	body := map[string]string{}
	set := func(field, value string) {
		if value != "" {
			body[field] = value
		}
	}
	set("title", params.Title)
	set("companyName", params.Company)
	set("jobUrl", params.JobURL)
	set("location", params.Location)
	set("description", params.Description)
	set("notes", params.Notes)
	set("salary", params.Salary)

	if len(body) == 0 {
		return textResult("Nothing to update: no fields were supplied."), nil, nil
	}

	env, err := t.deps.Client.Put(ctx, "/api/jobs/"+params.JobID, body)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("update job", env), nil, nil
	}

	return textResult(fmt.Sprintf("Job %s updated (%d field(s) changed).", params.JobID, len(body))), nil, nil
}

func (t jobTools) updateJobStatus(ctx context.Context, _ *sdkmcp.CallToolRequest, params *UpdateJobStatusParams) (*sdkmcp.CallToolResult, any, error) {
	if params.JobID == "" {
		return nil, nil, errors.New("job_id is required")
	}

	// Validate before touching the network: an unknown key would otherwise
	// silently map to the saved code on the wire.
	if !status.Valid(params.Status) {
		return textResult(invalidStatusText(params.Status)), nil, nil
	}

	env, err := t.deps.Client.Put(ctx, "/api/jobs/"+params.JobID+"/status", map[string]int{
		"status": status.Code(params.Status),
	})
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("update job status", env), nil, nil
	}

	return textResult(fmt.Sprintf("Job %s status updated to %s.", params.JobID, status.Label(status.Code(params.Status)))), nil, nil
}

func (t jobTools) toggleJobStar(ctx context.Context, _ *sdkmcp.CallToolRequest, params *ToggleJobStarParams) (*sdkmcp.CallToolResult, any, error) {
	if params.JobID == "" {
		return nil, nil, errors.New("job_id is required")
	}

	env, err := t.deps.Client.Put(ctx, "/api/jobs/"+params.JobID+"/star", nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("toggle job star", env), nil, nil
	}

	var toggled struct {
		IsStarred bool `json:"isStarred"`
	}
	if err := env.Decode(&toggled); err != nil {
		return nil, nil, err
	}

	if toggled.IsStarred {
		return textResult(fmt.Sprintf("Job %s starred.", params.JobID)), nil, nil
	}
	return textResult(fmt.Sprintf("Job %s unstarred.", params.JobID)), nil, nil
}

func (t jobTools) deleteJob(ctx context.Context, _ *sdkmcp.CallToolRequest, params *DeleteJobParams) (*sdkmcp.CallToolResult, any, error) {
	if params.JobID == "" {
		return nil, nil, errors.New("job_id is required")
	}

	env, err := t.deps.Client.Delete(ctx, "/api/jobs/"+params.JobID)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("delete job", env), nil, nil
	}

	return textResult(fmt.Sprintf("Job %s deleted successfully.", params.JobID)), nil, nil
}

func (t jobTools) bulkUpdateJobs(ctx context.Context, _ *sdkmcp.CallToolRequest, params *BulkUpdateJobsParams) (*sdkmcp.CallToolResult, any, error) {
	action, ok := bulkActions[params.Action]
	if !ok {
		return textResult(fmt.Sprintf("Unknown action %q. Valid options: delete, reject, proceed.", params.Action)), nil, nil
	}
	if len(params.JobIDs) == 0 {
		return textResult("No job IDs provided."), nil, nil
	}

	env, err := t.deps.Client.Post(ctx, action.path, map[string][]string{
		"jobIds": params.JobIDs,
	})
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult(params.Action+" jobs", env), nil, nil
	}

	return textResult(fmt.Sprintf(action.message, len(params.JobIDs))), nil, nil
}

func invalidStatusText(key string) string {
	return fmt.Sprintf("Unknown status %q. Valid options: %s.", key, strings.Join(status.Keys(), ", "))
}

func renderJobPage(page jobPage) string {
	if len(page.Items) == 0 {
		return "No jobs found matching your criteria."
	}

	blocks := make([]string, 0, len(page.Items)+1)
	blocks = append(blocks, fmt.Sprintf("Found %d job(s), page %d:", page.TotalCount, page.PageNumber))
	for _, job := range page.Items {
		blocks = append(blocks, renderJobSummary(job))
	}
	return joinBlocks(blocks)
}

func renderJobSummary(job jobRecord) string {
	var b strings.Builder

	star := ""
	if job.IsStarred {
		star = " *"
	}
	fmt.Fprintf(&b, "%s at %s%s\n", orNA(job.Title), orNA(job.CompanyName), star)
	fmt.Fprintf(&b, "  Status: %s | ID: %s", status.Label(job.Status), job.ID)
	if job.Location != "" {
		fmt.Fprintf(&b, "\n  Location: %s", job.Location)
	}
	if job.Salary != "" {
		fmt.Fprintf(&b, "\n  Salary: %s", job.Salary)
	}
	if job.AppliedAt != "" {
		fmt.Fprintf(&b, "\n  Applied: %s", formatDate(job.AppliedAt))
	}

	return b.String()
}

func renderJobDetails(job jobRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s at %s\n", orNA(job.Title), orNA(job.CompanyName))
	fmt.Fprintf(&b, "Status: %s\n", status.Label(job.Status))
	fmt.Fprintf(&b, "ID: %s\n", job.ID)
	fmt.Fprintf(&b, "Location: %s\n", orNA(job.Location))
	fmt.Fprintf(&b, "Salary: %s\n", orNA(job.Salary))
	fmt.Fprintf(&b, "URL: %s", orNA(job.JobURL))
	if job.IsStarred {
		b.WriteString("\nStarred: yes")
	}
	if job.AppliedAt != "" {
		fmt.Fprintf(&b, "\nApplied: %s", formatDate(job.AppliedAt))
	}
	if job.CreatedAt != "" {
		fmt.Fprintf(&b, "\nSaved: %s", formatDateTime(job.CreatedAt))
	}
	if job.Description != "" {
		fmt.Fprintf(&b, "\n\nDescription:\n%s", truncate(job.Description, descriptionBudget))
	}
	if job.Notes != "" {
		fmt.Fprintf(&b, "\n\nNotes:\n%s", truncate(job.Notes, snippetBudget))
	}

	return b.String()
}
