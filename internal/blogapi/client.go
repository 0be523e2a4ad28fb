// Package blogapi provides a minimal client for the upstream blog-generation API.
package blogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// GeneratePath is the fixed endpoint path for blog generation on the upstream service.
const GeneratePath = "/api/v1/llm/blog/generate"

// Client is a minimal HTTP client for the blog-generation service.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// New returns a new client. A single trailing slash on baseURL is stripped.
// If httpClient is nil, a default with a 30s timeout is used.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{BaseURL: strings.TrimSuffix(baseURL, "/"), APIKey: apiKey, HTTP: httpClient}
}

// GenerateRequest is the JSON body sent to the generation endpoint. Optional
// fields that were not supplied are omitted rather than sent as null.
type GenerateRequest struct {
	Keyword              string   `json:"keyword"`
	Language             string   `json:"language"`
	TargetAudience       string   `json:"target_audience,omitempty"`
	WritingStyle         string   `json:"writing_style,omitempty"`
	SectionCount         int      `json:"section_count"`
	Provider             string   `json:"provider"`
	Model                string   `json:"model,omitempty"`
	ClarificationAnswers []string `json:"clarification_answers"`
}

// ErrorKind distinguishes the ways a generation call can fail.
type ErrorKind int

const (
	// ErrorTransport covers request construction and network failures.
	ErrorTransport ErrorKind = iota
	// ErrorStatus covers non-2xx upstream responses.
	ErrorStatus
	// ErrorParse covers 2xx responses whose body is not valid JSON.
	ErrorParse
)

// CallError describes a failed generation call. Exactly one of the kinds
// applies; Status and Detail are only set for ErrorStatus.
type CallError struct {
	Kind   ErrorKind
	Status int
	Detail string
	Err    error
}

// Message returns the underlying error text, or a generic fallback when the
// error carries no message.
func (e *CallError) Message() string {
	if e.Err == nil || strings.TrimSpace(e.Err.Error()) == "" {
		return "unknown error"
	}
	return e.Err.Error()
}

// Variant classifies a successful upstream response.
type Variant int

const (
	// VariantClarification means the generator wants answers before writing.
	VariantClarification Variant = iota
	// VariantArticle means the generator produced a completed article.
	VariantArticle
	// VariantUnrecognized means the response did not match a known shape.
	VariantUnrecognized
)

// Section is one titled block of a generated article.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Article is the completed-article payload of a generation response.
type Article struct {
	Title        string    `json:"title"`
	Outline      []string  `json:"outline"`
	FinalArticle string    `json:"final_article"`
	Sections     []Section `json:"sections"`
}

// Outcome is the classified result of a successful generation call. Raw holds
// the response body for the unrecognized case.
type Outcome struct {
	Variant   Variant
	Questions []string
	Article   Article
	Raw       json.RawMessage
}

type envelope struct {
	Success bool `json:"success"`
	Data    *struct {
		NeedClarification bool      `json:"need_clarification"`
		Questions         []string  `json:"questions"`
		Article
	} `json:"data"`
}

// Generate issues one POST to the generation endpoint and classifies the
// response. It never retries.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*Outcome, *CallError) {
	if req.ClarificationAnswers == nil {
		req.ClarificationAnswers = []string{}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &CallError{Kind: ErrorTransport, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+GeneratePath, bytes.NewReader(body))
	if err != nil {
		return nil, &CallError{Kind: ErrorTransport, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, &CallError{Kind: ErrorTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &CallError{Kind: ErrorTransport, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		callErr := &CallError{Kind: ErrorStatus, Status: resp.StatusCode}
		var errBody struct {
			Detail string `json:"detail"`
		}
		// A detail field is included when the error body parses; otherwise
		// the status alone has to do.
		if json.Unmarshal(raw, &errBody) == nil {
			callErr.Detail = errBody.Detail
		}
		return nil, callErr
	}

	return classify(raw)
}

// classify resolves the three-way branch on a 2xx response body.
func classify(raw []byte) (*Outcome, *CallError) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &CallError{Kind: ErrorParse, Err: err}
	}

	if !env.Success || env.Data == nil {
		return &Outcome{Variant: VariantUnrecognized, Raw: raw}, nil
	}
	if env.Data.NeedClarification && len(env.Data.Questions) > 0 {
		return &Outcome{Variant: VariantClarification, Questions: env.Data.Questions}, nil
	}
	return &Outcome{Variant: VariantArticle, Article: env.Data.Article}, nil
}
