package jobjourney

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Config defines JobJourney API client settings
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client performs authenticated calls against the JobJourney backend
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Request describes one backend call. Body is JSON-marshaled when non-nil.
// Header entries are shallow-merged over the client defaults and win on
// conflict.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Header http.Header
}

// Envelope is the backend's standard response wrapper. A non-empty ErrorCode
// or IsSuccess=false marks a domain-level failure: the call transported fine
// but the backend declined it (quota exhausted, not found, and so on). Tools
// render those as text rather than failing the invocation.
type Envelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"errorCode"`
}

// Failed reports whether the envelope carries a domain-level failure.
func (e *Envelope) Failed() bool {
	return e.ErrorCode != "" || !e.IsSuccess
}

// FailureText renders the backend's own error code and message.
func (e *Envelope) FailureText() string {
	msg := e.Message
	if msg == "" {
		msg = "the backend reported a failure"
	}
	if e.ErrorCode != "" {
		return fmt.Sprintf("%s [%s]", msg, e.ErrorCode)
	}
	return msg
}

// Decode unmarshals the data payload into dest. A missing payload leaves
// dest untouched.
func (e *Envelope) Decode(dest any) error {
	if len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, dest); err != nil {
		return fmt.Errorf("jobjourney: decode data payload: %w", err)
	}
	return nil
}

// APIError is a transport-level failure: the backend answered with a non-2xx
// status. Body holds the raw response text verbatim for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jobjourney: API error (%d): %s", e.StatusCode, e.Body)
}

// SaveJobForm is the multipart payload for creating a job. The backend
// requires a URL, so an empty JobURL is replaced with a generated
// jobjourney.me placeholder before sending.
type SaveJobForm struct {
	Title       string
	Company     string
	JobURL      string
	StatusCode  int
	Location    string
	Description string
	Notes       string
	Salary      string
}
