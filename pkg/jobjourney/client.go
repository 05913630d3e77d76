// Package jobjourney is the HTTP client for the JobJourney backend REST API.
//
// Every call goes through one shared request path: JSON in, JSON envelope
// out, with a uniform two-tier error contract. Non-2xx responses become
// *APIError (transport failure); 2xx responses whose envelope carries an
// error code are returned to the caller to interpret as domain failures.
// The single exception to the JSON convention is SaveJob, which the backend
// only accepts as multipart/form-data.
package jobjourney

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBaseURL = "http://localhost:5200"

	// maxErrorBody caps how much of a failed response is kept for diagnostics.
	maxErrorBody = 8192
)

// NewClient instantiates a JobJourney API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("jobjourney: parse base url: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// Do performs one backend call and returns the decoded response envelope.
func (c *Client) Do(ctx context.Context, req Request) (*Envelope, error) {
	if c == nil {
		return nil, fmt.Errorf("jobjourney: client is nil")
	}

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("jobjourney: encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.endpoint(req.Path, req.Query), body)
	if err != nil {
		return nil, fmt.Errorf("jobjourney: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	// Caller-supplied headers win over the defaults.
	for key, values := range req.Header {
		httpReq.Header[http.CanonicalHeaderKey(key)] = values
	}

	return c.send(httpReq)
}

// Get issues a GET request for the given path and query.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Envelope, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path})
}

// SaveJob creates a job via the backend's multipart form endpoint. When the
// form carries no URL a placeholder is generated, since the backend rejects
// submissions without one.
func (c *Client) SaveJob(ctx context.Context, form SaveJobForm) (*Envelope, error) {
	if c == nil {
		return nil, fmt.Errorf("jobjourney: client is nil")
	}

	jobURL := form.JobURL
	if jobURL == "" {
		jobURL = PlaceholderJobURL(time.Now())
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	required := []struct {
		name, value string
	}{
		{"Title", form.Title},
		{"CompanyName", form.Company},
		{"JobUrl", jobURL},
		{"Status", strconv.Itoa(form.StatusCode)},
	}
	optional := []struct {
		name, value string
	}{
		{"Location", form.Location},
		{"Description", form.Description},
		{"Notes", form.Notes},
		{"Salary", form.Salary},
	}

	for _, f := range required {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("jobjourney: write form field %s: %w", f.name, err)
		}
	}
	for _, f := range optional {
		if f.value == "" {
			continue
		}
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("jobjourney: write form field %s: %w", f.name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("jobjourney: finalize form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/jobs", nil), &buf)
	if err != nil {
		return nil, fmt.Errorf("jobjourney: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(httpReq)
}

// PlaceholderJobURL builds the fallback URL recorded for manually saved jobs.
func PlaceholderJobURL(now time.Time) string {
	return fmt.Sprintf("https://jobjourney.me/manual/%d", now.UnixMilli())
}

func (c *Client) endpoint(path string, query url.Values) string {
	target := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

// send attaches the shared headers, performs the call, and normalizes the
// response: non-2xx -> *APIError with the raw body, 2xx -> decoded envelope.
func (c *Client) send(req *http.Request) (*Envelope, error) {
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
	if c.apiKey != "" && req.Header.Get("X-API-Key") == "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jobjourney: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("jobjourney: decode response: %w", err)
	}

	return &env, nil
}
