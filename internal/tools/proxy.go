package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// LangchainRequestDefinition describes the generic HTTP proxy tool for
// discovery by MCP clients.
func LangchainRequestDefinition() mcp.Tool {
	tool := mcp.NewTool(LangchainRequestName,
		mcp.WithDescription("Send a request to an arbitrary LangChain FastAPI endpoint and return the JSON response."),
		mcp.WithString("endpoint",
			mcp.Required(),
			mcp.Description("Full URL of the endpoint to call"),
		),
		mcp.WithString("method",
			mcp.Description("HTTP method to use"),
			mcp.Enum("GET", "POST"),
			mcp.DefaultString("POST"),
		),
		mcp.WithObject("headers",
			mcp.Description("Extra request headers, merged over Content-Type: application/json"),
		),
	)
	// payload accepts any JSON value, so it carries no type constraint.
	tool.InputSchema.Properties["payload"] = map[string]any{
		"description": "JSON body, attached only on POST",
	}
	return tool
}

// LangchainRequest forwards one HTTP request to the given endpoint and
// returns the pretty-printed JSON response. All failures are reported as
// text; nothing retries and nothing escapes the tool boundary.
func (r *Registry) LangchainRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	endpoint, err := req.RequireString("endpoint")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	parsed, err := url.ParseRequestURI(endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return mcp.NewToolResultError(fmt.Sprintf("invalid endpoint URL: %s", endpoint)), nil
	}

	method := strings.ToUpper(req.GetString("method", http.MethodPost))
	args := req.GetArguments()

	var body io.Reader
	if payload, ok := args["payload"]; ok && method == http.MethodPost && payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return mcp.NewToolResultError(errorMessage(err)), nil
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for name, value := range headerArgs(args) {
		httpReq.Header.Set(name, value)
	}

	resp, err := r.http.Do(httpReq)
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mcp.NewToolResultError(fmt.Sprintf("request failed with status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))), nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}
	pretty, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(errorMessage(err)), nil
	}
	return mcp.NewToolResultText(string(pretty)), nil
}

// headerArgs extracts the optional headers argument as a string map,
// skipping any non-string values.
func headerArgs(args map[string]any) map[string]string {
	out := map[string]string{}
	raw, ok := args["headers"].(map[string]any)
	if !ok {
		return out
	}
	for name, value := range raw {
		if s, ok := value.(string); ok {
			out[name] = s
		}
	}
	return out
}
