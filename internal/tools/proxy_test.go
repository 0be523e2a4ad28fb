package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogsmith-mcp/internal/appconfig"
)

func TestLangchainRequestPostSuccess(t *testing.T) {
	var gotMethod, gotContentType, gotCustom string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotCustom = r.Header.Get("X-Custom")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"answer": 42})
	}))
	defer ts.Close()

	r := NewRegistry(appconfig.Config{}, ts.Client())
	res, err := r.LangchainRequest(context.Background(), callReq(LangchainRequestName, map[string]any{
		"endpoint": ts.URL,
		"payload":  map[string]any{"prompt": "hi"},
		"headers":  map[string]any{"X-Custom": "yes"},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("expected default POST, got %s", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected default content type, got %q", gotContentType)
	}
	if gotCustom != "yes" {
		t.Fatalf("expected custom header merged, got %q", gotCustom)
	}
	if gotBody["prompt"] != "hi" {
		t.Fatalf("expected payload forwarded, got %v", gotBody)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "\"answer\": 42") {
		t.Fatalf("expected pretty-printed response, got %q", text)
	}
}

func TestLangchainRequestGetOmitsBody(t *testing.T) {
	var gotMethod string
	var gotLength int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotLength = r.ContentLength
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer ts.Close()

	r := NewRegistry(appconfig.Config{}, ts.Client())
	res, err := r.LangchainRequest(context.Background(), callReq(LangchainRequestName, map[string]any{
		"endpoint": ts.URL,
		"method":   "GET",
		"payload":  map[string]any{"ignored": true},
	}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%v", err, res)
	}
	if gotMethod != http.MethodGet {
		t.Fatalf("expected GET, got %s", gotMethod)
	}
	if gotLength > 0 {
		t.Fatalf("expected no body on GET, got length %d", gotLength)
	}
}

func TestLangchainRequestNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	r := NewRegistry(appconfig.Config{}, ts.Client())
	res, err := r.LangchainRequest(context.Background(), callReq(LangchainRequestName, map[string]any{"endpoint": ts.URL}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	text := resultText(t, res)
	if !strings.Contains(text, "request failed with status 500") {
		t.Fatalf("expected status in message, got %q", text)
	}
}

func TestLangchainRequestUnreachableHost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := ts.URL
	ts.Close() // guarantee a connection error

	r := NewRegistry(appconfig.Config{}, nil)
	res, err := r.LangchainRequest(context.Background(), callReq(LangchainRequestName, map[string]any{"endpoint": endpoint}))
	if err != nil {
		t.Fatalf("transport failure must not escape the tool boundary: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	if text := resultText(t, res); strings.TrimSpace(text) == "" {
		t.Fatalf("expected the network error message in the result")
	}
}

func TestLangchainRequestInvalidURL(t *testing.T) {
	r := NewRegistry(appconfig.Config{}, nil)
	res, err := r.LangchainRequest(context.Background(), callReq(LangchainRequestName, map[string]any{"endpoint": "not a url"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result for invalid URL")
	}
	if text := resultText(t, res); !strings.Contains(text, "invalid endpoint URL") {
		t.Fatalf("expected invalid URL message, got %q", text)
	}
}

func TestLangchainRequestNonJSONResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>nope</html>"))
	}))
	defer ts.Close()

	r := NewRegistry(appconfig.Config{}, ts.Client())
	res, err := r.LangchainRequest(context.Background(), callReq(LangchainRequestName, map[string]any{"endpoint": ts.URL}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result for unparseable body")
	}
}
