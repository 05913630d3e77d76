package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jobjourney/jobjourney-mcp/internal/status"
)

// GetJobStatisticsParams defines the arguments for the get_job_statistics tool
type GetJobStatisticsParams struct{}

// GetApplicationFunnelParams defines the arguments for the get_application_funnel tool
type GetApplicationFunnelParams struct{}

// GetScrapingStatsParams defines the arguments for the get_scraping_stats tool
type GetScrapingStatsParams struct{}

type jobStatistics struct {
	Total  int `json:"total"`
	Counts []struct {
		Status int `json:"status"`
		Count  int `json:"count"`
	} `json:"counts"`
}

type applicationFunnel struct {
	Saved      int `json:"saved"`
	Applied    int `json:"applied"`
	Interviews int `json:"interviews"`
	Offers     int `json:"offers"`
}

type scrapingStats struct {
	LastRunAt  string `json:"lastRunAt"`
	LastOkAt   string `json:"lastOkAt"`
	LastError  string `json:"lastError"`
	JobsAdded  int    `json:"jobsAdded"`
	Running    bool   `json:"running"`
	SiteCounts []struct {
		Site  string `json:"site"`
		Count int    `json:"count"`
	} `json:"siteCounts"`
}

type analyticsTools struct {
	deps Deps
}

func registerAnalyticsTools(server *sdkmcp.Server, deps Deps) {
	t := analyticsTools{deps: deps}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_job_statistics",
		Description: "Show tracked job counts broken down by status.",
	}, t.getJobStatistics)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_application_funnel",
		Description: "Show the application funnel: saved, applied, interviewing, offers.",
	}, t.getApplicationFunnel)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_scraping_stats",
		Description: "Show status of the backend's job scraping runs.",
	}, t.getScrapingStats)
}

func (t analyticsTools) getJobStatistics(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *GetJobStatisticsParams) (*sdkmcp.CallToolResult, any, error) {
	env, err := t.deps.Client.Get(ctx, "/api/analytics/jobs", nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch job statistics", env), nil, nil
	}

	var stats jobStatistics
	if err := env.Decode(&stats); err != nil {
		return nil, nil, err
	}

	if stats.Total == 0 {
		return textResult("No jobs tracked yet."), nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tracking %d job(s):", stats.Total)
	for _, count := range stats.Counts {
		fmt.Fprintf(&b, "\n  %s: %d", status.Label(count.Status), count.Count)
	}
	return textResult(b.String()), nil, nil
}

func (t analyticsTools) getApplicationFunnel(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *GetApplicationFunnelParams) (*sdkmcp.CallToolResult, any, error) {
	env, err := t.deps.Client.Get(ctx, "/api/analytics/funnel", nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch application funnel", env), nil, nil
	}

	var funnel applicationFunnel
	if err := env.Decode(&funnel); err != nil {
		return nil, nil, err
	}

	msg := fmt.Sprintf("Application funnel:\n  Saved: %d\n  Applied: %d\n  Interviewing: %d\n  Offers: %d",
		funnel.Saved, funnel.Applied, funnel.Interviews, funnel.Offers)
	return textResult(msg), nil, nil
}

func (t analyticsTools) getScrapingStats(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *GetScrapingStatsParams) (*sdkmcp.CallToolResult, any, error) {
	env, err := t.deps.Client.Get(ctx, "/api/scraping/stats", nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch scraping stats", env), nil, nil
	}

	var stats scrapingStats
	if err := env.Decode(&stats); err != nil {
		return nil, nil, err
	}

	var b strings.Builder
	if stats.Running {
		b.WriteString("Scraping run in progress.")
	} else {
		b.WriteString("No scraping run in progress.")
	}
	if stats.LastRunAt != "" {
		fmt.Fprintf(&b, "\nLast run: %s", formatDateTime(stats.LastRunAt))
	}
	if stats.LastOkAt != "" {
		fmt.Fprintf(&b, "\nLast successful run: %s", formatDateTime(stats.LastOkAt))
	}
	fmt.Fprintf(&b, "\nJobs added last run: %d", stats.JobsAdded)
	if stats.LastError != "" {
		fmt.Fprintf(&b, "\nLast error: %s", truncate(stats.LastError, snippetBudget))
	}
	if len(stats.SiteCounts) > 0 {
		b.WriteString("\nPer site:")
		for _, site := range stats.SiteCounts {
			fmt.Fprintf(&b, "\n  %s: %d", site.Site, site.Count)
		}
	}

	return textResult(b.String()), nil, nil
}
